package sla

import (
	"fmt"
	"strings"

	"github.com/balasus1/chain-guard-tambo/pkg/types"
)

// Config is the versioned SLA document. Immutable once loaded: every lookup
// is a pure function of the loaded value.
type Config struct {
	Version                   string                        `yaml:"version"`
	Description               string                        `yaml:"description,omitempty"`
	GlobalDefaults            GlobalDefaults                `yaml:"global_defaults"`
	VendorOverrides           map[string]VendorOverride     `yaml:"vendor_overrides"`
	RouteRules                []RouteRule                   `yaml:"route_rules"`
	AllowedDelaysBySeverity   map[types.AnomalySeverity]int `yaml:"allowed_delays_by_severity"`
	TemperatureSensitiveRules TemperatureRules              `yaml:"temperature_sensitive_rules"`

	// Hash of the raw config document, sha256 with prefix.
	Hash string `yaml:"-"`
}

type GlobalDefaults struct {
	MaxTransitDaysDomestic      int `yaml:"max_transit_days_domestic"`
	MaxTransitDaysInternational int `yaml:"max_transit_days_international"`
	WarningDelayHours           int `yaml:"warning_delay_hours"`
	BreachDelayHours            int `yaml:"breach_delay_hours"`
	CustomerVisibleDelayHours   int `yaml:"customer_visible_delay_hours"`
}

type VendorOverride struct {
	MaxTransitDaysDomestic      *int `yaml:"max_transit_days_domestic,omitempty"`
	MaxTransitDaysInternational *int `yaml:"max_transit_days_international,omitempty"`
}

type RouteRule struct {
	Origin         string `yaml:"origin"`
	Destination    string `yaml:"destination"`
	MaxTransitDays int    `yaml:"max_transit_days"`
	Label          string `yaml:"label,omitempty"`
}

type TemperatureRules struct {
	MaxTransitDays          int  `yaml:"max_transit_days"`
	StrictTemperatureBreach bool `yaml:"strict_temperature_breach"`
	AutoFailOnBreach        bool `yaml:"auto_fail_on_breach"`
}

// DelayThresholds is the projection of the global delay thresholds, in hours.
type DelayThresholds struct {
	WarningHours         int `json:"warning_hours"`
	BreachHours          int `json:"breach_hours"`
	CustomerVisibleHours int `json:"customer_visible_hours"`
}

func (c Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("version is required")
	}
	if c.GlobalDefaults.MaxTransitDaysDomestic <= 0 {
		return fmt.Errorf("global_defaults.max_transit_days_domestic must be positive")
	}
	if c.GlobalDefaults.MaxTransitDaysInternational <= 0 {
		return fmt.Errorf("global_defaults.max_transit_days_international must be positive")
	}
	if c.GlobalDefaults.BreachDelayHours < c.GlobalDefaults.WarningDelayHours {
		return fmt.Errorf("global_defaults.breach_delay_hours must be >= warning_delay_hours")
	}
	for i, r := range c.RouteRules {
		if r.Origin == "" || r.Destination == "" {
			return fmt.Errorf("route_rules[%d]: origin and destination are required", i)
		}
		if r.MaxTransitDays <= 0 {
			return fmt.Errorf("route_rules[%d]: max_transit_days must be positive", i)
		}
	}
	return nil
}

// MaxTransitDays resolves the transit budget for a shipment. Precedence:
// temperature-sensitive rule, then route rule (exact origin+destination
// pair, case-insensitive), then vendor override, then global default.
func (c Config) MaxTransitDays(vendor, originCountry, destinationCountry string, temperatureSensitive bool) int {
	if temperatureSensitive && c.TemperatureSensitiveRules.MaxTransitDays > 0 {
		return c.TemperatureSensitiveRules.MaxTransitDays
	}

	international := originCountry != "" && destinationCountry != "" &&
		!strings.EqualFold(originCountry, destinationCountry)

	if originCountry != "" && destinationCountry != "" {
		for _, rule := range c.RouteRules {
			if strings.EqualFold(rule.Origin, originCountry) && strings.EqualFold(rule.Destination, destinationCountry) {
				return rule.MaxTransitDays
			}
		}
	}

	if override, ok := c.VendorOverrides[strings.ToLower(vendor)]; ok {
		if international {
			if override.MaxTransitDaysInternational != nil {
				return *override.MaxTransitDaysInternational
			}
			return c.GlobalDefaults.MaxTransitDaysInternational
		}
		if override.MaxTransitDaysDomestic != nil {
			return *override.MaxTransitDaysDomestic
		}
		return c.GlobalDefaults.MaxTransitDaysDomestic
	}

	if international {
		return c.GlobalDefaults.MaxTransitDaysInternational
	}
	return c.GlobalDefaults.MaxTransitDaysDomestic
}

func (c Config) DelayThresholds() DelayThresholds {
	return DelayThresholds{
		WarningHours:         c.GlobalDefaults.WarningDelayHours,
		BreachHours:          c.GlobalDefaults.BreachDelayHours,
		CustomerVisibleHours: c.GlobalDefaults.CustomerVisibleDelayHours,
	}
}
