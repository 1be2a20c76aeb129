// Package action executes remedial actions behind the policy gate. Denial
// is a normal, recorded outcome, never an error; the only failure an
// incident can surface is an unresolved tracking number.
package action

import (
	"time"

	"go.uber.org/zap"

	"github.com/balasus1/chain-guard-tambo/internal/anomaly"
	"github.com/balasus1/chain-guard-tambo/internal/audit"
	"github.com/balasus1/chain-guard-tambo/internal/decisionlog"
	"github.com/balasus1/chain-guard-tambo/internal/metrics"
	"github.com/balasus1/chain-guard-tambo/internal/policy"
	"github.com/balasus1/chain-guard-tambo/internal/sla"
	"github.com/balasus1/chain-guard-tambo/internal/tracking"
	"github.com/balasus1/chain-guard-tambo/pkg/types"
)

type Executor struct {
	agent      *audit.Agent
	engine     *policy.Engine
	resolver   tracking.Resolver
	log        *decisionlog.Log
	thresholds sla.DelayThresholds
	logger     *zap.Logger
	metrics    *metrics.Collector
}

// NewExecutor wires the audit agent, policy engine and decision log
// together. Logger may not be nil; metrics may be nil.
func NewExecutor(agent *audit.Agent, engine *policy.Engine, resolver tracking.Resolver, log *decisionlog.Log, config sla.Config, logger *zap.Logger, collector *metrics.Collector) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		agent:      agent,
		engine:     engine,
		resolver:   resolver,
		log:        log,
		thresholds: config.DelayThresholds(),
		logger:     logger,
		metrics:    collector,
	}
}

// IncidentResult is what one end-to-end incident-handling call produces.
type IncidentResult struct {
	AuditResult   types.AuditResult     `json:"audit_result"`
	Outcomes      []types.ActionOutcome `json:"outcomes"`
	DecisionLogID string                `json:"decision_log_id"`
}

// Execute consults the policy engine and runs the action's mock side effect
// only if allowed. It always returns an outcome record.
func (e *Executor) Execute(action types.ActionType, auditResult types.AuditResult, ctx policy.Context) types.ActionOutcome {
	check := e.engine.Evaluate(action, ctx)

	outcome := types.ActionOutcome{
		Action:      action,
		Requested:   true,
		Executed:    check.Allowed,
		Denied:      !check.Allowed,
		PolicyCheck: check,
		Timestamp:   time.Now().UTC(),
	}
	if !check.Allowed {
		outcome.DenialReason = check.Reason
		e.logger.Info("action denied by policy",
			zap.String("action", string(action)),
			zap.String("tracking_number", auditResult.TrackingNumber),
			zap.String("rule", check.RuleEvaluated),
			zap.String("reason", check.Reason))
		e.metrics.ObserveOutcome(outcome)
		return outcome
	}

	e.run(action, auditResult)
	e.metrics.ObserveOutcome(outcome)
	return outcome
}

// HandleIncident audits the shipment, gates each suggested executable action
// through policy, and appends one decision log entry covering the whole
// call. A NotFound failure propagates before any policy evaluation and
// appends nothing.
func (e *Executor) HandleIncident(trackingNumber string, referenceTime time.Time) (IncidentResult, error) {
	auditResult, err := e.agent.Audit(trackingNumber, referenceTime)
	if err != nil {
		return IncidentResult{}, err
	}

	if referenceTime.IsZero() {
		referenceTime = time.Now().UTC()
	}

	var candidates []types.ActionType
	seen := make(map[types.ActionType]bool)
	for _, suggestion := range auditResult.SuggestedActions {
		if action, ok := types.ExecutableAction(suggestion); ok && !seen[action] {
			seen[action] = true
			candidates = append(candidates, action)
		}
	}

	// Repeat-offense counting uses the incident's reference time, not the
	// wall clock, so the whole call stays reproducible.
	ctx := policy.Context{
		Audit:            auditResult,
		VendorDelayCount: e.vendorDelayCount(auditResult.CourierCode, referenceTime),
	}

	outcomes := make([]types.ActionOutcome, 0, len(candidates))
	var rules []string
	seenRules := make(map[string]bool)
	for _, action := range candidates {
		outcome := e.Execute(action, auditResult, ctx)
		outcomes = append(outcomes, outcome)
		if !seenRules[outcome.PolicyCheck.RuleEvaluated] {
			seenRules[outcome.PolicyCheck.RuleEvaluated] = true
			rules = append(rules, outcome.PolicyCheck.RuleEvaluated)
		}
	}

	entry := e.log.Append(decisionlog.Draft{
		TrackingNumber:       auditResult.TrackingNumber,
		CourierCode:          auditResult.CourierCode,
		AuditResult:          auditResult.Summary(),
		RequestedActions:     candidates,
		Outcomes:             outcomes,
		PolicyRulesEvaluated: rules,
	})

	e.metrics.ObserveAudit(auditResult)
	e.metrics.ObserveIncident()
	e.metrics.SetDecisionLogDepth(e.log.Len())

	return IncidentResult{
		AuditResult:   auditResult,
		Outcomes:      outcomes,
		DecisionLogID: entry.ID,
	}, nil
}

// LastDecisions exposes the decision log to callers, most recent first.
func (e *Executor) LastDecisions(limit int) []types.DecisionLogEntry {
	return e.log.LastN(limit)
}

// vendorDelayCount counts how many of the courier's shipments exhibit a
// delay anomaly at the given reference time.
func (e *Executor) vendorDelayCount(courierCode string, referenceTime time.Time) int {
	count := 0
	for _, shipment := range e.resolver.ListShipmentsByCourier(courierCode) {
		anomalies := anomaly.Detect(shipment, referenceTime, e.thresholds.BreachHours, e.thresholds.WarningHours)
		for _, a := range anomalies {
			if a.Type == types.AnomalyDelay {
				count++
				break
			}
		}
	}
	return count
}
