package types

import "time"

// AuditSummary is the condensed audit result kept in the decision log.
type AuditSummary struct {
	Verdict      Verdict       `json:"verdict"`
	SlaStatus    SlaStatus     `json:"sla_status"`
	RiskLevel    RiskLevel     `json:"risk_level"`
	AnomalyScore int           `json:"anomaly_score"`
	AnomalyTypes []AnomalyType `json:"anomaly_types"`
	DelayHours   float64       `json:"delay_hours,omitempty"`
}

// Summary condenses an audit result for logging.
func (r AuditResult) Summary() AuditSummary {
	return AuditSummary{
		Verdict:      r.Verdict,
		SlaStatus:    r.SlaStatus,
		RiskLevel:    r.RiskLevel,
		AnomalyScore: r.AnomalyScore,
		AnomalyTypes: r.AnomalyKinds(),
		DelayHours:   r.DelayHours,
	}
}

// DecisionLogEntry is owned by the decision log: created only through
// Append, immutable afterwards.
type DecisionLogEntry struct {
	ID                   string          `json:"id"`
	Timestamp            time.Time       `json:"timestamp"`
	TrackingNumber       string          `json:"tracking_number"`
	CourierCode          string          `json:"courier_code"`
	AuditResult          AuditSummary    `json:"audit_result"`
	RequestedActions     []ActionType    `json:"requested_actions"`
	Outcomes             []ActionOutcome `json:"outcomes"`
	PolicyRulesEvaluated []string        `json:"policy_rules_evaluated"`
}
