package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRunUsage(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"chainguard"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected code 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "usage: chainguard") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestRunUnknownSubcommand(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"chainguard", "frobnicate"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected code 2, got %d", code)
	}
}

func TestAuditSuccess(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"chainguard", "audit", "-reference", "2024-01-25T00:00:00Z", "FX9876543210"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected code 0, got %d: %s", code, stderr.String())
	}

	var result map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout.String())
	}
	if result["verdict"] != "Warning" {
		t.Fatalf("expected Warning verdict, got %v", result["verdict"])
	}
	if result["tracking_number"] != "FX9876543210" {
		t.Fatalf("unexpected tracking number: %v", result["tracking_number"])
	}
}

func TestAuditUnknownShipment(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"chainguard", "audit", "NO-SUCH-SHIPMENT"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "NO-SUCH-SHIPMENT") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestAuditMissingArgument(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"chainguard", "audit"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected code 2, got %d", code)
	}
}

func TestAuditBadReference(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"chainguard", "audit", "-reference", "not-a-time", "FX9876543210"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected code 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "invalid -reference") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestIncidentSuccess(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"chainguard", "incident", "-reference", "2024-01-21T00:00:00Z", "9405511899223197428490"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected code 0, got %d: %s", code, stderr.String())
	}

	var result struct {
		DecisionLogID string `json:"decision_log_id"`
		Outcomes      []struct {
			Action   string `json:"action"`
			Executed bool   `json:"executed"`
		} `json:"outcomes"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout.String())
	}
	if !strings.HasPrefix(result.DecisionLogID, "dec-") {
		t.Fatalf("unexpected decision log id: %q", result.DecisionLogID)
	}
	if len(result.Outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(result.Outcomes))
	}
	for _, o := range result.Outcomes {
		if !o.Executed {
			t.Fatalf("expected %s to be executed", o.Action)
		}
	}
}

func TestDecisionsSeedsLog(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"chainguard", "decisions", "-reference", "2024-01-25T00:00:00Z", "FX9876543210", "TNT123456789"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected code 0, got %d: %s", code, stderr.String())
	}

	var entries []map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &entries); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout.String())
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Most recent first.
	if entries[0]["tracking_number"] != "TNT123456789" {
		t.Fatalf("unexpected first entry: %v", entries[0]["tracking_number"])
	}
}

func TestSlaSummary(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	code := run([]string{"chainguard", "sla"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected code 0, got %d: %s", code, stderr.String())
	}

	var summary struct {
		Version string `json:"version"`
		Hash    string `json:"hash"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &summary); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout.String())
	}
	if summary.Version == "" {
		t.Fatal("expected a config version")
	}
	if !strings.HasPrefix(summary.Hash, "sha256:") {
		t.Fatalf("unexpected hash: %q", summary.Hash)
	}
}
