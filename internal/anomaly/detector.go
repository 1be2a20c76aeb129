// Package anomaly scans a shipment's event timeline for delay,
// route-deviation, temperature-breach and customs-delay signals.
//
// Detection is a pure function of its inputs: the reference time is always
// injected, never read from the clock, so the same call yields the same
// anomalies every time.
package anomaly

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/balasus1/chain-guard-tambo/pkg/types"
)

var fold = cases.Fold()

// normalize case-folds carrier free text so keyword matching works on
// whatever casing and Unicode form the upstream API emits.
func normalize(s string) string {
	return fold.String(norm.NFC.String(s))
}

func containsAny(detail string, keywords ...string) bool {
	normalized := normalize(detail)
	for _, kw := range keywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// Detect evaluates every anomaly rule independently against the shipment's
// timeline. Each category contributes at most one anomaly no matter how many
// events match it.
func Detect(shipment types.Shipment, referenceTime time.Time, breachHours, warningHours int) []types.DetectedAnomaly {
	var anomalies []types.DetectedAnomaly

	if last, ok := shipment.LastTrackingEvent(); ok && !shipment.Delivered() {
		delayHours := referenceTime.Sub(last.CheckpointTime).Hours()
		if delayHours > float64(warningHours) {
			severity := types.SeverityMedium
			if delayHours >= float64(breachHours) {
				severity = types.SeverityHigh
			}
			anomalies = append(anomalies, types.DetectedAnomaly{
				Type:        types.AnomalyDelay,
				Severity:    severity,
				Description: fmt.Sprintf("No tracking update for %d hours", int(math.Round(delayHours))),
				Timestamp:   last.CheckpointTime,
			})
		}
	}

	if ev, ok := firstMatch(shipment.Events, "deviation", "rerouted"); ok {
		anomalies = append(anomalies, types.DetectedAnomaly{
			Type:        types.AnomalyRouteDeviation,
			Severity:    types.SeverityMedium,
			Description: "Unexpected route deviation detected",
			Timestamp:   ev.CheckpointTime,
		})
	}

	if ev, ok := firstMatch(shipment.Events, "temperature", "cold chain"); ok {
		anomalies = append(anomalies, types.DetectedAnomaly{
			Type:        types.AnomalyTemperature,
			Severity:    types.SeverityHigh,
			Description: "Temperature/cold chain breach detected",
			Timestamp:   ev.CheckpointTime,
		})
	}

	for _, ev := range shipment.Events {
		if containsAny(ev.TrackingDetail, "customs") && containsAny(ev.TrackingDetail, "delay") {
			anomalies = append(anomalies, types.DetectedAnomaly{
				Type:        types.AnomalyCustomsDelay,
				Severity:    types.SeverityMedium,
				Description: "Customs clearance delay",
				Timestamp:   ev.CheckpointTime,
			})
			break
		}
	}

	return anomalies
}

// TemperatureSensitive reports whether the shipment carries cold-chain cargo,
// judged from its title or any event detail.
func TemperatureSensitive(shipment types.Shipment) bool {
	if containsAny(shipment.Title, "temperature", "cold chain") {
		return true
	}
	for _, ev := range shipment.Events {
		if containsAny(ev.TrackingDetail, "temperature", "cold chain") {
			return true
		}
	}
	return false
}

func firstMatch(events []types.TrackingEvent, keywords ...string) (types.TrackingEvent, bool) {
	for _, ev := range events {
		if containsAny(ev.TrackingDetail, keywords...) {
			return ev, true
		}
	}
	return types.TrackingEvent{}, false
}
