package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/tradeacademy/indicatorlab/pkg/types"
)

type Category string

const (
	CategoryTrend      Category = "trend"
	CategoryMomentum   Category = "momentum"
	CategoryVolatility Category = "volatility"
	CategoryVolume     Category = "volume"
	CategoryOscillator Category = "oscillator"

	// CategoryAll selects every built-in definition.
	CategoryAll Category = "all"
)

// Categories lists the concrete categories in catalog order.
var Categories = []Category{
	CategoryTrend,
	CategoryMomentum,
	CategoryVolatility,
	CategoryVolume,
	CategoryOscillator,
}

var ErrUnknownCategory = errors.New("unknown indicator category")

// ParseCategory accepts the category names case-insensitively, "all", and the
// plural group key "oscillators".
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryTrend, CategoryMomentum, CategoryVolatility, CategoryVolume, CategoryOscillator, CategoryAll:
		return c, nil
	case "oscillators":
		return CategoryOscillator, nil
	}

	return "", errors.Wrapf(ErrUnknownCategory, "%q", s)
}

func (c *Category) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

type ParamType string

const (
	ParamTypeInt   ParamType = "int"
	ParamTypeFloat ParamType = "float"
)

// Parameter describes one numeric input of an indicator. Step is a UI hint for
// sliders and is not enforced.
type Parameter struct {
	Name    string    `json:"name" yaml:"name"`
	Type    ParamType `json:"type" yaml:"type"`
	Default float64   `json:"default" yaml:"default"`
	Min     float64   `json:"min" yaml:"min"`
	Max     float64   `json:"max" yaml:"max"`
	Step    float64   `json:"step,omitempty" yaml:"step,omitempty"`
}

func (p Parameter) String() string {
	s := fmt.Sprintf("%s=%v [%v, %v]", p.Name, p.Default, p.Min, p.Max)
	if p.Step > 0 {
		s += fmt.Sprintf(" step %v", p.Step)
	}
	return s
}

// Validate checks a value against the declared type and range.
func (p Parameter) Validate(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("parameter %s: %v is not a finite number", p.Name, v)
	}

	if p.Type == ParamTypeInt && v != math.Trunc(v) {
		return fmt.Errorf("parameter %s: %v is not an integer", p.Name, v)
	}

	if v < p.Min || v > p.Max {
		return fmt.Errorf("parameter %s: %v is out of range [%v, %v]", p.Name, v, p.Min, p.Max)
	}

	return nil
}

// CalculateFunc computes an indicator over bars with the parameters given in
// the order of the definition's parameter list.
type CalculateFunc func(bars []types.PriceBar, params []float64) types.Series

// Definition is the catalog entry of an indicator.
type Definition struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    Category    `json:"category"`
	Params      []Parameter `json:"params"`

	// UsesVolume is set for indicators that read the bar volume and fall
	// back to indicator.DefaultVolume when it is missing.
	UsesVolume bool `json:"usesVolume,omitempty"`

	Func CalculateFunc `json:"-"`
}

// Calculate runs the compute function. Missing trailing parameters take their
// defaults; values are not validated, see ResolveParams.
func (d *Definition) Calculate(bars []types.PriceBar, params []float64) types.Series {
	if len(params) < len(d.Params) {
		full := d.Defaults()
		copy(full, params)
		params = full
	}

	return d.Func(bars, params)
}

// Defaults returns the default parameter values in parameter-list order.
func (d *Definition) Defaults() []float64 {
	values := make([]float64, len(d.Params))
	for i, p := range d.Params {
		values[i] = p.Default
	}
	return values
}

func (d *Definition) Param(name string) (Parameter, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// ResolveParams merges the given values over the defaults and validates the
// result. All violations are reported at once.
func (d *Definition) ResolveParams(values map[string]float64) ([]float64, error) {
	var err error

	known := make(map[string]struct{}, len(d.Params))
	resolved := d.Defaults()
	for i, p := range d.Params {
		known[p.Name] = struct{}{}

		if v, ok := values[p.Name]; ok {
			resolved[i] = v
		}

		err = multierr.Append(err, p.Validate(resolved[i]))
	}

	var unknown []string
	for name := range values {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}

	sort.Strings(unknown)
	for _, name := range unknown {
		err = multierr.Append(err, fmt.Errorf("indicator %s has no parameter %s", d.ID, name))
	}

	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// derive copies the definition under a new id with overridden defaults.
func (d *Definition) derive(id string) *Definition {
	derived := *d
	derived.ID = id
	derived.Params = make([]Parameter, len(d.Params))
	copy(derived.Params, d.Params)
	return &derived
}
