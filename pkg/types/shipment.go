package types

import "time"

// Shipment statuses reported by carriers.
const (
	StatusInTransit = "in_transit"
	StatusDelivered = "delivered"
	StatusException = "exception"
)

type TrackingEvent struct {
	CheckpointTime time.Time `json:"checkpoint_time"`
	CheckpointDate string    `json:"checkpoint_date,omitempty"`
	TrackingDetail string    `json:"tracking_detail"`
	Location       string    `json:"location,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	Country        string    `json:"country,omitempty"`
	CountryName    string    `json:"country_name,omitempty"`
	Zip            string    `json:"zip,omitempty"`
}

// Shipment is the read-only view of a tracked parcel. The event sequence is
// the chain of custody: ordered by occurrence, never rewritten.
type Shipment struct {
	ID                 string          `json:"id"`
	TrackingNumber     string          `json:"tracking_number"`
	CourierCode        string          `json:"courier_code"`
	OrderID            string          `json:"order_id,omitempty"`
	OrderDate          string          `json:"order_date,omitempty"`
	Title              string          `json:"title,omitempty"`
	OriginCountry      string          `json:"origin_country,omitempty"`
	DestinationCountry string          `json:"destination_country,omitempty"`
	LastEvent          string          `json:"last_event,omitempty"`
	LastStatus         string          `json:"last_status,omitempty"`
	LastUpdateTime     time.Time       `json:"last_update_time,omitempty"`
	Events             []TrackingEvent `json:"events"`
}

func (s Shipment) Delivered() bool {
	return s.LastStatus == StatusDelivered
}

// FirstEvent returns the earliest tracking event, if any.
func (s Shipment) FirstEvent() (TrackingEvent, bool) {
	if len(s.Events) == 0 {
		return TrackingEvent{}, false
	}
	return s.Events[0], true
}

// LastTrackingEvent returns the most recent tracking event, if any.
func (s Shipment) LastTrackingEvent() (TrackingEvent, bool) {
	if len(s.Events) == 0 {
		return TrackingEvent{}, false
	}
	return s.Events[len(s.Events)-1], true
}
