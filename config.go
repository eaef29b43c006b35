package flexlay

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/tobyns/go-flexlay/pkg/layout"
)

// RulesConfig is the TOML shape for container rules, so hosts can keep
// layout presets in files instead of code:
//
//	direction = "row"
//	justify   = "space-between"
//	align     = "stretch"
//	gap       = 4.0
//	main_size = 800.0
//
// Omitted fields keep their defaults from layout.DefaultRules.
type RulesConfig struct {
	Direction string  `toml:"direction"`
	Wrap      bool    `toml:"wrap"`
	Justify   string  `toml:"justify"`
	Align     string  `toml:"align"`
	Gap       float64 `toml:"gap"`
	MainSize  float64 `toml:"main_size"`
	CrossSize float64 `toml:"cross_size"`
}

var directionNames = map[string]layout.Direction{
	"row":    layout.Row,
	"column": layout.Column,
}

var justifyNames = map[string]layout.Justify{
	"start":         layout.JustifyStart,
	"end":           layout.JustifyEnd,
	"center":        layout.JustifyCenter,
	"space-between": layout.JustifySpaceBetween,
	"space-around":  layout.JustifySpaceAround,
	"space-evenly":  layout.JustifySpaceEvenly,
}

var alignNames = map[string]layout.Align{
	"start":     layout.AlignStart,
	"end":       layout.AlignEnd,
	"center":    layout.AlignCenter,
	"stretch":   layout.AlignStretch,
	"fit-start": layout.AlignFitStart,
	"fit-end":   layout.AlignFitEnd,
}

// Rules resolves the config into container rules, validating the enum
// names.
func (c RulesConfig) Rules() (layout.Rules, error) {
	rules := layout.DefaultRules()

	if c.Direction != "" {
		dir, ok := directionNames[c.Direction]
		if !ok {
			return layout.Rules{}, errors.Errorf("unknown direction %q", c.Direction)
		}
		rules.Direction = dir
	}
	if c.Justify != "" {
		justify, ok := justifyNames[c.Justify]
		if !ok {
			return layout.Rules{}, errors.Errorf("unknown justify %q", c.Justify)
		}
		rules.Justify = justify
	}
	if c.Align != "" {
		align, ok := alignNames[c.Align]
		if !ok {
			return layout.Rules{}, errors.Errorf("unknown align %q", c.Align)
		}
		rules.Align = align
	}

	rules.Wrap = c.Wrap
	rules.Gap = c.Gap
	rules.MainSize = c.MainSize
	rules.CrossSize = c.CrossSize
	return rules, nil
}

// ParseRules decodes TOML into container rules.
func ParseRules(data []byte) (layout.Rules, error) {
	var cfg RulesConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return layout.Rules{}, errors.Wrap(err, "failed to parse rules config")
	}
	return cfg.Rules()
}

// LoadRules reads a TOML preset from disk.
func LoadRules(path string) (layout.Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return layout.Rules{}, errors.Wrapf(err, "failed to read rules config %q", path)
	}
	rules, err := ParseRules(data)
	if err != nil {
		return layout.Rules{}, errors.Wrapf(err, "invalid rules config %q", path)
	}
	return rules, nil
}
