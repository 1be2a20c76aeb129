package types

import "time"

type SlaStatus string

const (
	SlaOnTrack SlaStatus = "on_track"
	SlaWarning SlaStatus = "warning"
	SlaFailed  SlaStatus = "failed"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type Verdict string

const (
	VerdictOK      Verdict = "OK"
	VerdictWarning Verdict = "Warning"
	VerdictFailed  Verdict = "Failed"
)

type AnomalyType string

const (
	AnomalyDelay          AnomalyType = "delay"
	AnomalyRouteDeviation AnomalyType = "route_deviation"
	AnomalyTemperature    AnomalyType = "temperature"
	AnomalyCustomsDelay   AnomalyType = "customs_delay"
)

// AnomalyTypes lists every anomaly kind the detector can produce.
func AnomalyTypes() []AnomalyType {
	return []AnomalyType{AnomalyDelay, AnomalyRouteDeviation, AnomalyTemperature, AnomalyCustomsDelay}
}

type AnomalySeverity string

const (
	SeverityLow    AnomalySeverity = "low"
	SeverityMedium AnomalySeverity = "medium"
	SeverityHigh   AnomalySeverity = "high"
)

type DetectedAnomaly struct {
	Type        AnomalyType     `json:"type"`
	Severity    AnomalySeverity `json:"severity"`
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp"`
}

// SuggestedAction is what the audit agent recommends. It is a superset of
// ActionType: "monitor" is advisory only and never reaches the executor.
type SuggestedAction string

const (
	SuggestCreateTicket   SuggestedAction = "create_ticket"
	SuggestNotifyCustomer SuggestedAction = "notify_customer"
	SuggestNotifyVendor   SuggestedAction = "notify_vendor"
	SuggestMonitor        SuggestedAction = "monitor"
)

// AuditResult is built per call and never stored directly; the decision log
// keeps only a condensed summary.
type AuditResult struct {
	TrackingNumber   string            `json:"tracking_number"`
	CourierCode      string            `json:"courier_code"`
	Verdict          Verdict           `json:"verdict"`
	SlaStatus        SlaStatus         `json:"sla_status"`
	RiskLevel        RiskLevel         `json:"risk_level"`
	AnomalyScore     int               `json:"anomaly_score"`
	Anomalies        []DetectedAnomaly `json:"anomalies"`
	Explanation      string            `json:"explanation"`
	SuggestedActions []SuggestedAction `json:"suggested_actions"`
	SlaConfigVersion string            `json:"sla_config_version"`
	SlaConfigHash    string            `json:"sla_config_hash,omitempty"`
	// DelayHours is hours since the last tracking update; zero for
	// delivered shipments.
	DelayHours float64 `json:"delay_hours,omitempty"`
}

// HasAnomaly reports whether any detected anomaly has the given type.
func (r AuditResult) HasAnomaly(t AnomalyType) bool {
	for _, a := range r.Anomalies {
		if a.Type == t {
			return true
		}
	}
	return false
}

// AnomalyKinds returns the anomaly types present, in detection order.
func (r AuditResult) AnomalyKinds() []AnomalyType {
	kinds := make([]AnomalyType, 0, len(r.Anomalies))
	for _, a := range r.Anomalies {
		kinds = append(kinds, a.Type)
	}
	return kinds
}
