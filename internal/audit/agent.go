// Package audit combines SLA configuration and anomaly detection into a
// scored health verdict for a shipment, with suggested remedial actions.
package audit

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/balasus1/chain-guard-tambo/internal/anomaly"
	"github.com/balasus1/chain-guard-tambo/internal/sla"
	"github.com/balasus1/chain-guard-tambo/internal/tracking"
	"github.com/balasus1/chain-guard-tambo/pkg/types"
)

// Delivered shipments get a grace window on top of the transit budget before
// the SLA flips from warning to failed. Fixed constant, no config knob.
const slaWarningMultiplier = 1.25

const hoursPerDay = 24

var severityWeights = map[types.AnomalySeverity]float64{
	types.SeverityLow:    20,
	types.SeverityMedium: 50,
	types.SeverityHigh:   80,
}

var typeWeights = map[types.AnomalyType]float64{
	types.AnomalyDelay:          1.0,
	types.AnomalyCustomsDelay:   1.1,
	types.AnomalyRouteDeviation: 1.2,
	types.AnomalyTemperature:    1.5,
}

type Agent struct {
	resolver tracking.Resolver
	config   sla.Config
}

func NewAgent(resolver tracking.Resolver, config sla.Config) *Agent {
	return &Agent{resolver: resolver, config: config}
}

// Audit resolves the shipment and produces a full audit result. A zero
// referenceTime means "now"; callers wanting reproducible output pass a
// fixed time. The same tracking number and reference time always yield the
// same result.
func (a *Agent) Audit(trackingNumber string, referenceTime time.Time) (types.AuditResult, error) {
	shipment, err := a.resolver.ResolveShipment(strings.TrimSpace(trackingNumber))
	if err != nil {
		return types.AuditResult{}, err
	}

	if referenceTime.IsZero() {
		referenceTime = time.Now().UTC()
	}

	thresholds := a.config.DelayThresholds()
	temperatureSensitive := anomaly.TemperatureSensitive(shipment)
	maxTransitDays := a.config.MaxTransitDays(shipment.CourierCode, shipment.OriginCountry, shipment.DestinationCountry, temperatureSensitive)

	anomalies := anomaly.Detect(shipment, referenceTime, thresholds.BreachHours, thresholds.WarningHours)

	delayHours := 0.0
	if last, ok := shipment.LastTrackingEvent(); ok && !shipment.Delivered() {
		delayHours = referenceTime.Sub(last.CheckpointTime).Hours()
	}

	slaStatus := slaStatus(shipment, maxTransitDays, delayHours, thresholds)
	score := Score(anomalies)
	risk := RiskLevel(anomalies, score)
	verdict := verdict(slaStatus, risk, score, len(anomalies))
	suggested := suggestActions(verdict, risk, anomalies)

	result := types.AuditResult{
		TrackingNumber:   shipment.TrackingNumber,
		CourierCode:      shipment.CourierCode,
		Verdict:          verdict,
		SlaStatus:        slaStatus,
		RiskLevel:        risk,
		AnomalyScore:     score,
		Anomalies:        anomalies,
		Explanation:      explanation(verdict, slaStatus, risk, anomalies),
		SuggestedActions: suggested,
		SlaConfigVersion: "v" + a.config.Version,
		SlaConfigHash:    a.config.Hash,
	}
	if !shipment.Delivered() {
		result.DelayHours = delayHours
	}
	return result, nil
}

// Score computes the anomaly score in [0,100]: the mean of per-anomaly
// contributions (severity weight times type multiplier), rounded, capped.
func Score(anomalies []types.DetectedAnomaly) int {
	if len(anomalies) == 0 {
		return 0
	}
	sum := 0.0
	for _, a := range anomalies {
		mult, ok := typeWeights[a.Type]
		if !ok {
			mult = 1.0
		}
		sum += severityWeights[a.Severity] * mult
	}
	score := int(math.Round(sum / float64(len(anomalies))))
	if score > 100 {
		return 100
	}
	return score
}

// RiskLevel classifies overall risk from the anomaly set and score.
// Temperature anomalies are always high risk: a cold-chain breach spoils
// cargo regardless of how the score arithmetic works out.
func RiskLevel(anomalies []types.DetectedAnomaly, score int) types.RiskLevel {
	if len(anomalies) == 0 {
		return types.RiskLow
	}
	for _, a := range anomalies {
		if a.Severity == types.SeverityHigh || a.Type == types.AnomalyTemperature {
			return types.RiskHigh
		}
	}
	if score >= 70 {
		return types.RiskHigh
	}
	if len(anomalies) >= 2 || score >= 40 {
		return types.RiskMedium
	}
	return types.RiskLow
}

func slaStatus(shipment types.Shipment, maxTransitDays int, delayHours float64, thresholds sla.DelayThresholds) types.SlaStatus {
	if shipment.Delivered() {
		first, okFirst := shipment.FirstEvent()
		last, okLast := shipment.LastTrackingEvent()
		if !okFirst || !okLast {
			return types.SlaOnTrack
		}
		transitDays := last.CheckpointTime.Sub(first.CheckpointTime).Hours() / hoursPerDay
		switch {
		case transitDays <= float64(maxTransitDays):
			return types.SlaOnTrack
		case transitDays <= float64(maxTransitDays)*slaWarningMultiplier:
			return types.SlaWarning
		default:
			return types.SlaFailed
		}
	}

	switch {
	case delayHours >= float64(thresholds.BreachHours):
		return types.SlaFailed
	case delayHours >= float64(thresholds.WarningHours):
		return types.SlaWarning
	default:
		return types.SlaOnTrack
	}
}

func verdict(slaStatus types.SlaStatus, risk types.RiskLevel, score, anomalyCount int) types.Verdict {
	switch {
	case slaStatus == types.SlaFailed || risk == types.RiskHigh || score >= 70:
		return types.VerdictFailed
	case slaStatus == types.SlaWarning || risk == types.RiskMedium || anomalyCount > 0:
		return types.VerdictWarning
	default:
		return types.VerdictOK
	}
}

func suggestActions(verdict types.Verdict, risk types.RiskLevel, anomalies []types.DetectedAnomaly) []types.SuggestedAction {
	if verdict == types.VerdictOK && len(anomalies) == 0 {
		return []types.SuggestedAction{types.SuggestMonitor}
	}

	has := make(map[types.AnomalyType]bool, len(anomalies))
	for _, a := range anomalies {
		has[a.Type] = true
	}

	var actions []types.SuggestedAction
	seen := make(map[types.SuggestedAction]bool)
	add := func(a types.SuggestedAction) {
		if !seen[a] {
			seen[a] = true
			actions = append(actions, a)
		}
	}

	if risk == types.RiskHigh || has[types.AnomalyTemperature] {
		add(types.SuggestCreateTicket)
	}
	if has[types.AnomalyDelay] && (risk == types.RiskMedium || risk == types.RiskHigh) {
		add(types.SuggestNotifyCustomer)
	}
	if has[types.AnomalyRouteDeviation] || has[types.AnomalyTemperature] || has[types.AnomalyCustomsDelay] {
		add(types.SuggestNotifyVendor)
	}
	if len(actions) == 0 {
		add(types.SuggestMonitor)
	}
	return actions
}

func explanation(verdict types.Verdict, slaStatus types.SlaStatus, risk types.RiskLevel, anomalies []types.DetectedAnomaly) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Verdict: %s. SLA status is %s, risk level is %s.",
		verdict, strings.ReplaceAll(string(slaStatus), "_", " "), risk)

	if len(anomalies) == 0 {
		b.WriteString(" No anomalies detected. Shipment appears to be on track.")
		return b.String()
	}

	parts := make([]string, 0, len(anomalies))
	for _, a := range anomalies {
		parts = append(parts, fmt.Sprintf("%s (%s)", a.Type, a.Severity))
	}
	fmt.Fprintf(&b, " Detected %d anomaly(ies): %s.", len(anomalies), strings.Join(parts, ", "))
	return b.String()
}
