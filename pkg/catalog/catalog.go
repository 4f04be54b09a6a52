package catalog

import (
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tradeacademy/indicatorlab/pkg/metrics"
	"github.com/tradeacademy/indicatorlab/pkg/types"
)

var log = logrus.WithField("component", "catalog")

var ErrIndicatorNotFound = errors.New("indicator not found")

// Catalog holds the built-in definitions, which are fixed at construction,
// and a registry of custom definitions that can grow at runtime.
type Catalog struct {
	builtins []*Definition
	byID     map[string]*Definition

	mu          sync.RWMutex
	customs     map[string]*Definition
	customOrder []string
}

func New() *Catalog {
	c := &Catalog{
		builtins: builtins(),
		byID:     make(map[string]*Definition),
		customs:  make(map[string]*Definition),
	}

	for _, d := range c.builtins {
		c.byID[d.ID] = d
	}
	return c
}

var defaultCatalog *Catalog
var defaultCatalogOnce sync.Once

// Default returns the process-wide catalog.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = New()
	})
	return defaultCatalog
}

// ByCategory returns the built-in definitions of the category in catalog
// order. "all" returns every built-in, an unknown category an empty list.
func (c *Catalog) ByCategory(category string) []*Definition {
	cat, err := ParseCategory(category)
	if err != nil {
		return []*Definition{}
	}

	defs := make([]*Definition, 0, len(c.builtins))
	for _, d := range c.builtins {
		if cat == CategoryAll || d.Category == cat {
			defs = append(defs, d)
		}
	}
	return defs
}

// All returns every built-in definition.
func (c *Catalog) All() []*Definition {
	return c.ByCategory(string(CategoryAll))
}

// Get looks up a built-in definition.
func (c *Catalog) Get(id string) (*Definition, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// AddCustom registers a custom definition under its id. Registering an id
// again replaces the previous definition; it keeps its original position in
// Customs.
func (c *Catalog) AddCustom(def *Definition) error {
	if def == nil || def.ID == "" {
		return errors.New("custom indicator requires an id")
	}

	if def.Func == nil {
		return errors.Errorf("custom indicator %s has no calculate function", def.ID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.customs[def.ID]; exists {
		log.Debugf("custom indicator %s is overwritten", def.ID)
	} else {
		c.customOrder = append(c.customOrder, def.ID)
	}

	c.customs[def.ID] = def
	return nil
}

// Customs returns the custom definitions in registration order.
func (c *Catalog) Customs() []*Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	defs := make([]*Definition, 0, len(c.customOrder))
	for _, id := range c.customOrder {
		defs = append(defs, c.customs[id])
	}
	return defs
}

// Lookup finds a built-in definition first, then a custom one.
func (c *Catalog) Lookup(id string) (*Definition, error) {
	if d, ok := c.Get(id); ok {
		return d, nil
	}

	c.mu.RLock()
	d, ok := c.customs[id]
	c.mu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrIndicatorNotFound, "%q", id)
	}
	return d, nil
}

// Search matches the query case-insensitively against the id, name and
// description of built-in and custom definitions. An empty query matches
// everything.
func (c *Catalog) Search(query string) []*Definition {
	query = strings.ToLower(strings.TrimSpace(query))

	var defs []*Definition
	for _, d := range append(c.All(), c.Customs()...) {
		if query == "" ||
			strings.Contains(strings.ToLower(d.ID), query) ||
			strings.Contains(strings.ToLower(d.Name), query) ||
			strings.Contains(strings.ToLower(d.Description), query) {
			defs = append(defs, d)
		}
	}
	return defs
}

// Compute resolves the definition, validates the parameters and runs it.
func (c *Catalog) Compute(id string, bars []types.PriceBar, params map[string]float64) (types.Series, error) {
	d, err := c.Lookup(id)
	if err != nil {
		return nil, err
	}

	values, err := d.ResolveParams(params)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid parameters for %s", id)
	}

	return c.run(d, bars, values), nil
}

// ComputeDefault runs the indicator with its default parameters.
func (c *Catalog) ComputeDefault(id string, bars []types.PriceBar) (types.Series, error) {
	d, err := c.Lookup(id)
	if err != nil {
		return nil, err
	}

	return c.run(d, bars, d.Defaults()), nil
}

func (c *Catalog) run(d *Definition, bars []types.PriceBar, params []float64) types.Series {
	start := time.Now()
	series := d.Calculate(bars, params)
	duration := time.Since(start)

	metrics.ObserveCompute(d.ID, string(d.Category), duration, series)
	log.WithFields(logrus.Fields{
		"indicator": d.ID,
		"bars":      len(bars),
		"points":    series.Len(),
		"duration":  duration,
	}).Debugf("computed %s", d.ID)
	return series
}
