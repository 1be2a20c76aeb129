package tracking

import (
	"time"

	"github.com/balasus1/chain-guard-tambo/pkg/types"
)

// NewDemoStore returns the demo shipment dataset: one clean delivery, one
// customs-delayed international shipment, one route deviation, one cold-chain
// breach, and one shipment stalled in transit.
func NewDemoStore() *MemoryStore {
	return NewMemoryStore(demoShipments())
}

func ts(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func demoShipments() []types.Shipment {
	return []types.Shipment{
		{
			ID:                 "ship-1",
			TrackingNumber:     "1Z999AA10123456784",
			CourierCode:        "ups",
			OrderID:            "ORD-2024-001",
			OrderDate:          "2024-01-14",
			Title:              "Electronics Package",
			OriginCountry:      "US",
			DestinationCountry: "US",
			LastEvent:          "Delivered",
			LastStatus:         types.StatusDelivered,
			LastUpdateTime:     ts(2024, time.January, 17, 14, 45),
			Events: []types.TrackingEvent{
				{CheckpointTime: ts(2024, time.January, 15, 8, 0), CheckpointDate: "2024-01-15", TrackingDetail: "Shipment information sent to carrier", Location: "New York Distribution Center", City: "New York", State: "NY", Country: "US", CountryName: "United States", Zip: "10001"},
				{CheckpointTime: ts(2024, time.January, 15, 10, 30), CheckpointDate: "2024-01-15", TrackingDetail: "Picked up", Location: "New York Distribution Center", City: "New York", State: "NY", Country: "US", CountryName: "United States", Zip: "10001"},
				{CheckpointTime: ts(2024, time.January, 16, 14, 20), CheckpointDate: "2024-01-16", TrackingDetail: "In transit", Location: "Philadelphia Hub", City: "Philadelphia", State: "PA", Country: "US", CountryName: "United States", Zip: "19101"},
				{CheckpointTime: ts(2024, time.January, 17, 9, 15), CheckpointDate: "2024-01-17", TrackingDetail: "Out for delivery", Location: "Los Angeles Distribution Center", City: "Los Angeles", State: "CA", Country: "US", CountryName: "United States", Zip: "90001"},
				{CheckpointTime: ts(2024, time.January, 17, 14, 45), CheckpointDate: "2024-01-17", TrackingDetail: "Delivered", Location: "Los Angeles", City: "Los Angeles", State: "CA", Country: "US", CountryName: "United States", Zip: "90001"},
			},
		},
		{
			ID:                 "ship-2",
			TrackingNumber:     "1234567890",
			CourierCode:        "dhl",
			OrderID:            "ORD-2024-002",
			OrderDate:          "2024-01-09",
			Title:              "International Shipment",
			OriginCountry:      "GB",
			DestinationCountry: "US",
			LastEvent:          "In transit to final destination",
			LastStatus:         types.StatusInTransit,
			LastUpdateTime:     ts(2024, time.January, 15, 14, 0),
			Events: []types.TrackingEvent{
				{CheckpointTime: ts(2024, time.January, 10, 9, 0), CheckpointDate: "2024-01-10", TrackingDetail: "Shipment information received", Location: "London Hub", City: "London", Country: "GB", CountryName: "United Kingdom", Zip: "SW1A 1AA"},
				{CheckpointTime: ts(2024, time.January, 10, 12, 30), CheckpointDate: "2024-01-10", TrackingDetail: "Picked up", Location: "London Hub", City: "London", Country: "GB", CountryName: "United Kingdom", Zip: "SW1A 1AA"},
				{CheckpointTime: ts(2024, time.January, 11, 8, 0), CheckpointDate: "2024-01-11", TrackingDetail: "In transit to destination country", Location: "London Airport", City: "London", Country: "GB", CountryName: "United Kingdom", Zip: "SW1A 1AA"},
				{CheckpointTime: ts(2024, time.January, 12, 10, 0), CheckpointDate: "2024-01-12", TrackingDetail: "Arrived at destination country", Location: "New York JFK Airport", City: "New York", State: "NY", Country: "US", CountryName: "United States", Zip: "11430"},
				{CheckpointTime: ts(2024, time.January, 13, 8, 0), CheckpointDate: "2024-01-13", TrackingDetail: "Customs clearance delay", Location: "New York Customs", City: "New York", State: "NY", Country: "US", CountryName: "United States", Zip: "11430"},
				{CheckpointTime: ts(2024, time.January, 15, 11, 0), CheckpointDate: "2024-01-15", TrackingDetail: "Customs clearance completed", Location: "New York Customs", City: "New York", State: "NY", Country: "US", CountryName: "United States", Zip: "11430"},
				{CheckpointTime: ts(2024, time.January, 15, 14, 0), CheckpointDate: "2024-01-15", TrackingDetail: "In transit to final destination", Location: "New York Distribution Center", City: "New York", State: "NY", Country: "US", CountryName: "United States", Zip: "10001"},
			},
		},
		{
			ID:                 "ship-3",
			TrackingNumber:     "FX9876543210",
			CourierCode:        "fedex",
			OrderID:            "ORD-2024-003",
			OrderDate:          "2024-01-19",
			Title:              "Express Delivery",
			OriginCountry:      "US",
			DestinationCountry: "US",
			LastEvent:          "Back on route",
			LastStatus:         types.StatusInTransit,
			LastUpdateTime:     ts(2024, time.January, 23, 8, 0),
			Events: []types.TrackingEvent{
				{CheckpointTime: ts(2024, time.January, 20, 8, 0), CheckpointDate: "2024-01-20", TrackingDetail: "Shipment information sent to carrier", Location: "Chicago Distribution Center", City: "Chicago", State: "IL", Country: "US", CountryName: "United States", Zip: "60601"},
				{CheckpointTime: ts(2024, time.January, 20, 10, 0), CheckpointDate: "2024-01-20", TrackingDetail: "Picked up", Location: "Chicago Distribution Center", City: "Chicago", State: "IL", Country: "US", CountryName: "United States", Zip: "60601"},
				{CheckpointTime: ts(2024, time.January, 21, 9, 0), CheckpointDate: "2024-01-21", TrackingDetail: "In transit", Location: "Detroit Hub", City: "Detroit", State: "MI", Country: "US", CountryName: "United States", Zip: "48201"},
				{CheckpointTime: ts(2024, time.January, 22, 11, 0), CheckpointDate: "2024-01-22", TrackingDetail: "Unexpected route deviation - Package rerouted", Location: "Atlanta Hub", City: "Atlanta", State: "GA", Country: "US", CountryName: "United States", Zip: "30301"},
				{CheckpointTime: ts(2024, time.January, 23, 8, 0), CheckpointDate: "2024-01-23", TrackingDetail: "Back on route", Location: "Miami Distribution Center", City: "Miami", State: "FL", Country: "US", CountryName: "United States", Zip: "33101"},
			},
		},
		{
			ID:                 "ship-4",
			TrackingNumber:     "9405511899223197428490",
			CourierCode:        "usps",
			OrderID:            "ORD-2024-004",
			OrderDate:          "2024-01-17",
			Title:              "Temperature-Sensitive Package",
			OriginCountry:      "US",
			DestinationCountry: "US",
			LastEvent:          "In transit to destination",
			LastStatus:         types.StatusInTransit,
			LastUpdateTime:     ts(2024, time.January, 20, 9, 0),
			Events: []types.TrackingEvent{
				{CheckpointTime: ts(2024, time.January, 18, 7, 0), CheckpointDate: "2024-01-18", TrackingDetail: "Pre-shipment info sent to carrier", Location: "Phoenix Processing Center", City: "Phoenix", State: "AZ", Country: "US", CountryName: "United States", Zip: "85001"},
				{CheckpointTime: ts(2024, time.January, 18, 10, 0), CheckpointDate: "2024-01-18", TrackingDetail: "Accepted at origin facility", Location: "Phoenix Processing Center", City: "Phoenix", State: "AZ", Country: "US", CountryName: "United States", Zip: "85001"},
				{CheckpointTime: ts(2024, time.January, 19, 14, 0), CheckpointDate: "2024-01-19", TrackingDetail: "Temperature threshold exceeded - Cold chain breach detected", Location: "Las Vegas Processing Center", City: "Las Vegas", State: "NV", Country: "US", CountryName: "United States", Zip: "89101"},
				{CheckpointTime: ts(2024, time.January, 19, 16, 0), CheckpointDate: "2024-01-19", TrackingDetail: "Package moved to temperature-controlled storage", Location: "Las Vegas Processing Center", City: "Las Vegas", State: "NV", Country: "US", CountryName: "United States", Zip: "89101"},
				{CheckpointTime: ts(2024, time.January, 20, 9, 0), CheckpointDate: "2024-01-20", TrackingDetail: "In transit to destination", Location: "Las Vegas Processing Center", City: "Las Vegas", State: "NV", Country: "US", CountryName: "United States", Zip: "89101"},
			},
		},
		{
			ID:                 "ship-5",
			TrackingNumber:     "TNT123456789",
			CourierCode:        "tnt",
			OrderID:            "ORD-2024-005",
			OrderDate:          "2024-01-04",
			Title:              "European Shipment",
			OriginCountry:      "NL",
			DestinationCountry: "FR",
			LastEvent:          "In transit - No update for 48+ hours",
			LastStatus:         types.StatusException,
			LastUpdateTime:     ts(2024, time.January, 10, 9, 0),
			Events: []types.TrackingEvent{
				{CheckpointTime: ts(2024, time.January, 5, 8, 0), CheckpointDate: "2024-01-05", TrackingDetail: "Shipment collected", Location: "Amsterdam Hub", City: "Amsterdam", Country: "NL", CountryName: "Netherlands", Zip: "1012 AB"},
				{CheckpointTime: ts(2024, time.January, 6, 10, 0), CheckpointDate: "2024-01-06", TrackingDetail: "In transit", Location: "Amsterdam Hub", City: "Amsterdam", Country: "NL", CountryName: "Netherlands", Zip: "1012 AB"},
				{CheckpointTime: ts(2024, time.January, 8, 14, 0), CheckpointDate: "2024-01-08", TrackingDetail: "Arrived at transit facility", Location: "Paris Hub", City: "Paris", Country: "FR", CountryName: "France", Zip: "75001"},
				{CheckpointTime: ts(2024, time.January, 10, 9, 0), CheckpointDate: "2024-01-10", TrackingDetail: "In transit - No update for 48+ hours", Location: "Paris Hub", City: "Paris", Country: "FR", CountryName: "France", Zip: "75001"},
			},
		},
	}
}
