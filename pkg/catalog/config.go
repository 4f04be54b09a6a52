package catalog

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the catalog section of indicatorlab.yaml:
//
//	customs:
//	- id: fast-rsi
//	  base: rsi
//	  name: Fast RSI
//	  defaults:
//	    period: 7
//
//	presets:
//	  tight-bands:
//	    indicator: bb
//	    params:
//	      deviation: 1.5
type Config struct {
	Customs []CustomConfig     `yaml:"customs,omitempty"`
	Presets map[string]*Preset `yaml:"presets,omitempty"`
}

// CustomConfig declares a custom indicator that reuses the compute function
// of a built-in one under its own id, metadata and defaults.
type CustomConfig struct {
	ID          string             `yaml:"id"`
	Base        string             `yaml:"base"`
	Name        string             `yaml:"name,omitempty"`
	Description string             `yaml:"description,omitempty"`
	Category    Category           `yaml:"category,omitempty"`
	Defaults    map[string]float64 `yaml:"defaults,omitempty"`
}

// Preset is a named set of parameters for an indicator.
type Preset struct {
	Indicator string             `yaml:"indicator"`
	Params    map[string]float64 `yaml:"params,omitempty"`
}

func LoadConfig(configFile string) (*Config, error) {
	var config Config

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, errors.Wrapf(err, "unable to parse config %s", configFile)
	}

	return &config, nil
}

// Definition builds the custom definition from its built-in base.
func (cc CustomConfig) Definition(c *Catalog) (*Definition, error) {
	if cc.ID == "" {
		return nil, errors.New("custom indicator requires an id")
	}

	base, ok := c.Get(cc.Base)
	if !ok {
		return nil, errors.Wrapf(ErrIndicatorNotFound, "custom indicator %s: base %q", cc.ID, cc.Base)
	}

	defaults, err := base.ResolveParams(cc.Defaults)
	if err != nil {
		return nil, errors.Wrapf(err, "custom indicator %s: invalid defaults", cc.ID)
	}

	def := base.derive(cc.ID)
	for i := range def.Params {
		def.Params[i].Default = defaults[i]
	}

	if cc.Name != "" {
		def.Name = cc.Name
	}

	if cc.Description != "" {
		def.Description = cc.Description
	}

	if cc.Category != "" && cc.Category != CategoryAll {
		def.Category = cc.Category
	}

	return def, nil
}

// Apply registers the custom definitions in order and checks that every
// preset points to a known indicator.
func (config *Config) Apply(c *Catalog) error {
	for _, cc := range config.Customs {
		def, err := cc.Definition(c)
		if err != nil {
			return err
		}

		if err := c.AddCustom(def); err != nil {
			return err
		}
	}

	for name, preset := range config.Presets {
		if preset == nil {
			return errors.Errorf("preset %s is empty", name)
		}

		def, err := c.Lookup(preset.Indicator)
		if err != nil {
			return errors.Wrapf(err, "preset %s", name)
		}

		if _, err := def.ResolveParams(preset.Params); err != nil {
			return errors.Wrapf(err, "preset %s", name)
		}
	}

	return nil
}

func (config *Config) Preset(name string) (*Preset, bool) {
	if config == nil {
		return nil, false
	}

	p, ok := config.Presets[name]
	return p, ok && p != nil
}
