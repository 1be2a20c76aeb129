// Package policy is the deterministic gate in front of the safe-action
// executor. A suggested action is never auto-trusted: each candidate is
// re-derived from these predicates alone, and every branch is tagged with a
// rule identifier so denials are as auditable as approvals.
package policy

import (
	"fmt"
	"math"

	"github.com/balasus1/chain-guard-tambo/internal/sla"
	"github.com/balasus1/chain-guard-tambo/pkg/types"
)

// Context carries everything policy evaluation may consult. Evaluation is
// side-effect free: same context, same result.
type Context struct {
	Audit types.AuditResult
	// VendorDelayCount is how many shipments from the same courier
	// currently exhibit a delay anomaly, for repeat-offense escalation.
	VendorDelayCount int
}

// Engine evaluates action policies against the loaded SLA thresholds.
type Engine struct {
	thresholds sla.DelayThresholds
}

func NewEngine(config sla.Config) *Engine {
	return &Engine{thresholds: config.DelayThresholds()}
}

// Evaluate authorizes or denies a single action. An action kind outside the
// closed set is a programming error and panics.
func (e *Engine) Evaluate(action types.ActionType, ctx Context) types.PolicyCheckResult {
	switch action {
	case types.ActionCreateTicket:
		return e.evaluateCreateTicket(ctx)
	case types.ActionNotifyCustomer:
		return e.evaluateNotifyCustomer(ctx)
	case types.ActionNotifyVendor:
		return e.evaluateNotifyVendor(ctx)
	}
	panic(fmt.Sprintf("policy: unknown action %q", action))
}

// create_ticket: allowed for high risk, or for an SLA breach combined with a
// delay or temperature anomaly.
func (e *Engine) evaluateCreateTicket(ctx Context) types.PolicyCheckResult {
	audit := ctx.Audit
	delayHours := audit.DelayHours
	hasDelayOrTemp := audit.HasAnomaly(types.AnomalyDelay) || audit.HasAnomaly(types.AnomalyTemperature)
	slaBreach := delayHours >= float64(e.thresholds.BreachHours)

	if audit.RiskLevel == types.RiskHigh {
		return types.PolicyCheckResult{
			Allowed:       true,
			Reason:        "Risk level is high",
			RuleEvaluated: "create_ticket: risk_level=high",
		}
	}

	if slaBreach && hasDelayOrTemp {
		return types.PolicyCheckResult{
			Allowed:       true,
			Reason:        fmt.Sprintf("SLA breach (%dh >= %dh) and delay/temperature anomaly", roundHours(delayHours), e.thresholds.BreachHours),
			RuleEvaluated: "create_ticket: sla_breach_and_delay_or_temperature",
		}
	}

	return types.PolicyCheckResult{
		Allowed:       false,
		Reason:        "Ticket creation requires risk_level=high OR (SLA breach AND delay/temperature anomaly). Agent may recommend but cannot execute.",
		RuleEvaluated: "create_ticket: policy_not_met",
	}
}

// notify_customer: denied for low-risk non-delay noise; allowed once the
// delay crosses the customer-visible threshold, or for a delay anomaly at
// medium or high risk.
func (e *Engine) evaluateNotifyCustomer(ctx Context) types.PolicyCheckResult {
	audit := ctx.Audit
	delayHours := audit.DelayHours
	hasDelay := audit.HasAnomaly(types.AnomalyDelay)

	if !hasDelay && audit.RiskLevel == types.RiskLow {
		return types.PolicyCheckResult{
			Allowed:       false,
			Reason:        "Low-risk anomaly (e.g. route deviation) with no delay. No customer notification needed.",
			RuleEvaluated: "notify_customer: low_risk_no_delay",
		}
	}

	if delayHours >= float64(e.thresholds.CustomerVisibleHours) {
		return types.PolicyCheckResult{
			Allowed:       true,
			Reason:        fmt.Sprintf("SLA breach exceeds customer-visible threshold (%dh >= %dh)", roundHours(delayHours), e.thresholds.CustomerVisibleHours),
			RuleEvaluated: "notify_customer: customer_visible_breach",
		}
	}

	if hasDelay && (audit.RiskLevel == types.RiskMedium || audit.RiskLevel == types.RiskHigh) {
		return types.PolicyCheckResult{
			Allowed:       true,
			Reason:        "Delay anomaly with medium/high risk",
			RuleEvaluated: "notify_customer: delay_with_risk",
		}
	}

	return types.PolicyCheckResult{
		Allowed:       false,
		Reason:        "Customer notification requires delay beyond customer-visible threshold or delay with medium+ risk",
		RuleEvaluated: "notify_customer: policy_not_met",
	}
}

// notify_vendor: allowed for route deviations, temperature issues, customs
// delays, and plain delays; repeated delays from the same vendor escalate.
func (e *Engine) evaluateNotifyVendor(ctx Context) types.PolicyCheckResult {
	audit := ctx.Audit

	if audit.HasAnomaly(types.AnomalyRouteDeviation) {
		return types.PolicyCheckResult{
			Allowed:       true,
			Reason:        "Route deviation detected",
			RuleEvaluated: "notify_vendor: route_deviation",
		}
	}

	if audit.HasAnomaly(types.AnomalyTemperature) {
		return types.PolicyCheckResult{
			Allowed:       true,
			Reason:        "Temperature/cold chain issue",
			RuleEvaluated: "notify_vendor: temperature",
		}
	}

	if audit.HasAnomaly(types.AnomalyCustomsDelay) {
		return types.PolicyCheckResult{
			Allowed:       true,
			Reason:        "Customs delay",
			RuleEvaluated: "notify_vendor: customs_delay",
		}
	}

	if audit.HasAnomaly(types.AnomalyDelay) {
		if ctx.VendorDelayCount >= 2 {
			return types.PolicyCheckResult{
				Allowed:       true,
				Reason:        fmt.Sprintf("Repeated delays from vendor (%d shipments with delay)", ctx.VendorDelayCount),
				RuleEvaluated: "notify_vendor: repeated_delays",
			}
		}
		return types.PolicyCheckResult{
			Allowed:       true,
			Reason:        "Delay anomaly - vendor should be notified",
			RuleEvaluated: "notify_vendor: delay",
		}
	}

	return types.PolicyCheckResult{
		Allowed:       false,
		Reason:        "Vendor notification allowed for route_deviation, temperature, customs_delay, or delays",
		RuleEvaluated: "notify_vendor: policy_not_met",
	}
}

func roundHours(h float64) int {
	return int(math.Round(h))
}
