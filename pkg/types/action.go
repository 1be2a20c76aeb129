package types

import "time"

// ActionType is the closed set of executable remedial actions. The policy
// engine switches exhaustively over it; adding a kind means touching both
// the engine and the executor.
type ActionType string

const (
	ActionCreateTicket   ActionType = "create_ticket"
	ActionNotifyCustomer ActionType = "notify_customer"
	ActionNotifyVendor   ActionType = "notify_vendor"
)

// ActionTypes lists every executable action kind.
func ActionTypes() []ActionType {
	return []ActionType{ActionCreateTicket, ActionNotifyCustomer, ActionNotifyVendor}
}

// ExecutableAction maps a suggested action onto the executable set.
// Returns false for advisory suggestions such as "monitor".
func ExecutableAction(s SuggestedAction) (ActionType, bool) {
	switch s {
	case SuggestCreateTicket:
		return ActionCreateTicket, true
	case SuggestNotifyCustomer:
		return ActionNotifyCustomer, true
	case SuggestNotifyVendor:
		return ActionNotifyVendor, true
	}
	return "", false
}

// PolicyCheckResult records the outcome of a single policy evaluation.
// RuleEvaluated names the branch that fired and is populated on denials too.
type PolicyCheckResult struct {
	Allowed       bool   `json:"allowed"`
	Reason        string `json:"reason"`
	RuleEvaluated string `json:"rule_evaluated"`
}

type ActionOutcome struct {
	Action       ActionType        `json:"action"`
	Requested    bool              `json:"requested"`
	Executed     bool              `json:"executed"`
	Denied       bool              `json:"denied"`
	DenialReason string            `json:"denial_reason,omitempty"`
	PolicyCheck  PolicyCheckResult `json:"policy_check"`
	Timestamp    time.Time         `json:"timestamp"`
}
