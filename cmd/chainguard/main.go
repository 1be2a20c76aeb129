// Command chainguard drives the audit-and-policy core against the demo
// shipment dataset: audit a shipment, run the gated incident flow, or read
// the decision log.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/balasus1/chain-guard-tambo/internal/action"
	"github.com/balasus1/chain-guard-tambo/internal/audit"
	"github.com/balasus1/chain-guard-tambo/internal/config"
	"github.com/balasus1/chain-guard-tambo/internal/decisionlog"
	"github.com/balasus1/chain-guard-tambo/internal/policy"
	"github.com/balasus1/chain-guard-tambo/internal/sla"
	"github.com/balasus1/chain-guard-tambo/internal/tracking"
)

const maxDecisionLimit = 50

func main() {
	exitFn(run(os.Args, os.Stdout, os.Stderr))
}

var exitFn = os.Exit

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	if len(args) < 2 {
		usage(stderr)
		return 2
	}

	switch args[1] {
	case "audit":
		return handleAudit(args[2:], stdout, stderr)
	case "incident":
		return handleIncident(args[2:], stdout, stderr)
	case "decisions":
		return handleDecisions(args[2:], stdout, stderr)
	case "sla":
		return handleSla(args[2:], stdout, stderr)
	default:
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: chainguard <audit|incident|decisions|sla> [flags]")
	fmt.Fprintln(w, "  audit <tracking_number>      audit a shipment")
	fmt.Fprintln(w, "  incident <tracking_number>   audit, gate and execute actions, log the decision")
	fmt.Fprintln(w, "  decisions [tracking...]      handle incidents, then print the decision log")
	fmt.Fprintln(w, "  sla                          print the loaded SLA config summary")
}

type app struct {
	config   sla.Config
	store    *tracking.MemoryStore
	agent    *audit.Agent
	executor *action.Executor
	log      *decisionlog.Log
}

func commonFlags(fs *flag.FlagSet) (configPath *string, slaPath *string, reference *string) {
	configPath = fs.String("config", os.Getenv("CHAINGUARD_CONFIG"), "path to chainguard config file")
	slaPath = fs.String("sla-config", "", "path to SLA config file (default: embedded demo config)")
	reference = fs.String("reference", "", "reference time, RFC3339 (default: now)")
	return
}

func buildApp(configPath, slaPath string) (*app, error) {
	capacity := decisionlog.DefaultCapacity
	logLevel := "info"

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if cfg.SlaConfigPath != "" && slaPath == "" {
			slaPath = cfg.SlaConfigPath
		}
		if cfg.DecisionLogCapacity > 0 {
			capacity = cfg.DecisionLogCapacity
		}
		if cfg.LogLevel != "" {
			logLevel = cfg.LogLevel
		}
	}

	slaConfig := sla.Default()
	if slaPath != "" {
		loaded, err := sla.Load(slaPath)
		if err != nil {
			return nil, err
		}
		slaConfig = loaded
	}

	logger, err := buildLogger(logLevel)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	store := tracking.NewDemoStore()
	agent := audit.NewAgent(store, slaConfig)
	engine := policy.NewEngine(slaConfig)
	decisionLog := decisionlog.New(capacity)
	executor := action.NewExecutor(agent, engine, store, decisionLog, slaConfig, logger, nil)

	return &app{
		config:   slaConfig,
		store:    store,
		agent:    agent,
		executor: executor,
		log:      decisionLog,
	}, nil
}

func buildLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if level == "debug" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func parseReference(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid -reference %q: %w", raw, err)
	}
	return t.UTC(), nil
}

func handleAudit(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("audit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath, slaPath, reference := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "audit requires <tracking_number>")
		return 2
	}

	a, err := buildApp(*configPath, *slaPath)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	referenceTime, err := parseReference(*reference)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}

	result, err := a.agent.Audit(fs.Arg(0), referenceTime)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	return printJSON(stdout, stderr, result)
}

func handleIncident(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("incident", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath, slaPath, reference := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "incident requires <tracking_number>")
		return 2
	}

	a, err := buildApp(*configPath, *slaPath)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	referenceTime, err := parseReference(*reference)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}

	result, err := a.executor.HandleIncident(fs.Arg(0), referenceTime)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	return printJSON(stdout, stderr, result)
}

// handleDecisions runs the incident flow for the named shipments (all demo
// shipments when none are named) and prints the resulting log. The decision
// log is process-lifetime state, so a one-shot CLI has to produce the
// entries it reports.
func handleDecisions(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("decisions", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath, slaPath, reference := commonFlags(fs)
	limit := fs.Int("limit", 10, "number of entries to print")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	a, err := buildApp(*configPath, *slaPath)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	referenceTime, err := parseReference(*reference)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}

	trackingNumbers := fs.Args()
	if len(trackingNumbers) == 0 {
		trackingNumbers = a.store.TrackingNumbers()
	}
	for _, tn := range trackingNumbers {
		if _, err := a.executor.HandleIncident(tn, referenceTime); err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
	}

	n := *limit
	if n < 1 {
		n = 1
	}
	if n > maxDecisionLimit {
		n = maxDecisionLimit
	}
	return printJSON(stdout, stderr, a.log.LastN(n))
}

func handleSla(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("sla", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath, slaPath, _ := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	a, err := buildApp(*configPath, *slaPath)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	summary := struct {
		Version        string              `json:"version"`
		Description    string              `json:"description,omitempty"`
		Hash           string              `json:"hash"`
		Thresholds     sla.DelayThresholds `json:"thresholds"`
		VendorCount    int                 `json:"vendor_count"`
		RouteRuleCount int                 `json:"route_rule_count"`
	}{
		Version:        a.config.Version,
		Description:    a.config.Description,
		Hash:           a.config.Hash,
		Thresholds:     a.config.DelayThresholds(),
		VendorCount:    len(a.config.VendorOverrides),
		RouteRuleCount: len(a.config.RouteRules),
	}
	return printJSON(stdout, stderr, summary)
}

func printJSON(stdout, stderr io.Writer, v any) int {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	return 0
}
