package audit

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balasus1/chain-guard-tambo/internal/sla"
	"github.com/balasus1/chain-guard-tambo/internal/tracking"
	"github.com/balasus1/chain-guard-tambo/pkg/types"
)

func newTestAgent() *Agent {
	return NewAgent(tracking.NewDemoStore(), sla.Default())
}

func refTime(day, hour int) time.Time {
	return time.Date(2024, time.January, day, hour, 0, 0, 0, time.UTC)
}

func TestAuditDeliveredOnTrack(t *testing.T) {
	agent := newTestAgent()

	result, err := agent.Audit("1Z999AA10123456784", refTime(25, 0))
	require.NoError(t, err)

	assert.Equal(t, types.VerdictOK, result.Verdict)
	assert.Equal(t, types.SlaOnTrack, result.SlaStatus)
	assert.Equal(t, types.RiskLow, result.RiskLevel)
	assert.Zero(t, result.AnomalyScore)
	assert.Empty(t, result.Anomalies)
	assert.Equal(t, []types.SuggestedAction{types.SuggestMonitor}, result.SuggestedActions)
	assert.Zero(t, result.DelayHours)
	assert.Equal(t, "v1.0", result.SlaConfigVersion)
}

func TestAuditRouteDeviationScenario(t *testing.T) {
	agent := newTestAgent()

	result, err := agent.Audit("FX9876543210", refTime(25, 0))
	require.NoError(t, err)

	routeCount := 0
	for _, a := range result.Anomalies {
		if a.Type == types.AnomalyRouteDeviation {
			routeCount++
			assert.Equal(t, types.SeverityMedium, a.Severity)
		}
	}
	assert.Equal(t, 1, routeCount)
	assert.Contains(t, result.SuggestedActions, types.SuggestNotifyVendor)

	// 40h since the last event: delay anomaly, warning SLA, medium risk.
	assert.True(t, result.HasAnomaly(types.AnomalyDelay))
	assert.InDelta(t, 40.0, result.DelayHours, 0.01)
	assert.Equal(t, types.SlaWarning, result.SlaStatus)
	assert.Equal(t, types.RiskMedium, result.RiskLevel)
	assert.Equal(t, types.VerdictWarning, result.Verdict)
	assert.Equal(t, 55, result.AnomalyScore)
}

func TestAuditTemperatureScenario(t *testing.T) {
	agent := newTestAgent()

	// Reference inside the warning window so only the cold-chain breach
	// fires; risk must be high regardless of score arithmetic.
	result, err := agent.Audit("9405511899223197428490", refTime(21, 0))
	require.NoError(t, err)

	require.Len(t, result.Anomalies, 1)
	assert.Equal(t, types.AnomalyTemperature, result.Anomalies[0].Type)
	assert.Equal(t, types.RiskHigh, result.RiskLevel)
	assert.Equal(t, types.VerdictFailed, result.Verdict)
	assert.Equal(t, 100, result.AnomalyScore)
	assert.Contains(t, result.SuggestedActions, types.SuggestCreateTicket)
	assert.Contains(t, result.SuggestedActions, types.SuggestNotifyVendor)
}

func TestAuditStalledShipment(t *testing.T) {
	agent := newTestAgent()

	result, err := agent.Audit("TNT123456789", refTime(25, 0))
	require.NoError(t, err)

	assert.Equal(t, types.SlaFailed, result.SlaStatus)
	assert.Equal(t, types.RiskHigh, result.RiskLevel)
	assert.Equal(t, types.VerdictFailed, result.Verdict)
	require.Len(t, result.Anomalies, 1)
	assert.Equal(t, types.AnomalyDelay, result.Anomalies[0].Type)
	assert.Equal(t, types.SeverityHigh, result.Anomalies[0].Severity)
	assert.ElementsMatch(t, []types.SuggestedAction{types.SuggestCreateTicket, types.SuggestNotifyCustomer}, result.SuggestedActions)
}

func TestAuditCustomsDelayScenario(t *testing.T) {
	agent := newTestAgent()

	// One day after the last update: no delay anomaly yet, but the customs
	// delay event is in the timeline.
	result, err := agent.Audit("1234567890", refTime(16, 2))
	require.NoError(t, err)

	assert.True(t, result.HasAnomaly(types.AnomalyCustomsDelay))
	assert.False(t, result.HasAnomaly(types.AnomalyDelay))
	assert.Contains(t, result.SuggestedActions, types.SuggestNotifyVendor)
	assert.Equal(t, types.VerdictWarning, result.Verdict)
}

func TestAuditNotFound(t *testing.T) {
	agent := newTestAgent()

	_, err := agent.Audit("DOES-NOT-EXIST", refTime(25, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, tracking.ErrShipmentNotFound)

	var notFound *tracking.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "DOES-NOT-EXIST", notFound.TrackingNumber)
	assert.Contains(t, notFound.Examples, "FX9876543210")
}

func TestAuditCaseInsensitiveLookup(t *testing.T) {
	agent := newTestAgent()

	result, err := agent.Audit("  fx9876543210 ", refTime(25, 0))
	require.NoError(t, err)
	assert.Equal(t, "FX9876543210", result.TrackingNumber)
}

func TestAuditIdempotent(t *testing.T) {
	agent := newTestAgent()
	reference := refTime(25, 0)

	first, err := agent.Audit("FX9876543210", reference)
	require.NoError(t, err)
	second, err := agent.Audit("FX9876543210", reference)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAuditExplanation(t *testing.T) {
	agent := newTestAgent()

	result, err := agent.Audit("FX9876543210", refTime(25, 0))
	require.NoError(t, err)
	assert.Contains(t, result.Explanation, "Verdict: Warning.")
	assert.Contains(t, result.Explanation, "risk level is medium")
	assert.Contains(t, result.Explanation, "route_deviation (medium)")

	clean, err := agent.Audit("1Z999AA10123456784", refTime(25, 0))
	require.NoError(t, err)
	assert.Contains(t, clean.Explanation, "No anomalies detected.")
}

func TestScore(t *testing.T) {
	t.Run("empty is zero", func(t *testing.T) {
		assert.Zero(t, Score(nil))
	})

	t.Run("single high temperature caps at 100", func(t *testing.T) {
		score := Score([]types.DetectedAnomaly{{Type: types.AnomalyTemperature, Severity: types.SeverityHigh}})
		assert.Equal(t, 100, score)
	})

	t.Run("mean of contributions", func(t *testing.T) {
		score := Score([]types.DetectedAnomaly{
			{Type: types.AnomalyDelay, Severity: types.SeverityMedium},          // 50
			{Type: types.AnomalyRouteDeviation, Severity: types.SeverityMedium}, // 60
		})
		assert.Equal(t, 55, score)
	})
}

func TestRiskLevel(t *testing.T) {
	t.Run("no anomalies is low", func(t *testing.T) {
		assert.Equal(t, types.RiskLow, RiskLevel(nil, 0))
	})

	t.Run("temperature always high", func(t *testing.T) {
		anomalies := []types.DetectedAnomaly{{Type: types.AnomalyTemperature, Severity: types.SeverityLow}}
		assert.Equal(t, types.RiskHigh, RiskLevel(anomalies, 10))
	})

	t.Run("two anomalies at least medium", func(t *testing.T) {
		anomalies := []types.DetectedAnomaly{
			{Type: types.AnomalyDelay, Severity: types.SeverityLow},
			{Type: types.AnomalyCustomsDelay, Severity: types.SeverityLow},
		}
		assert.Equal(t, types.RiskMedium, RiskLevel(anomalies, 0))
	})

	t.Run("single low anomaly stays low", func(t *testing.T) {
		anomalies := []types.DetectedAnomaly{{Type: types.AnomalyDelay, Severity: types.SeverityLow}}
		assert.Equal(t, types.RiskLow, RiskLevel(anomalies, 20))
	})
}
