package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tradeacademy/indicatorlab/pkg/catalog"
)

var categoryColors = map[catalog.Category]color.Attribute{
	catalog.CategoryTrend:      color.FgHiBlue,
	catalog.CategoryMomentum:   color.FgHiMagenta,
	catalog.CategoryVolatility: color.FgHiYellow,
	catalog.CategoryVolume:     color.FgHiCyan,
	catalog.CategoryOscillator: color.FgHiGreen,
}

// CategoryString renders the category label, colored when withColor is set.
func CategoryString(c catalog.Category, withColor bool) string {
	attr, ok := categoryColors[c]
	if !withColor || !ok {
		return string(c)
	}

	return color.New(attr).Sprint(string(c))
}

// ParamsString renders the parameter schema on one line.
func ParamsString(params []catalog.Parameter) string {
	if len(params) == 0 {
		return "-"
	}

	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// PrintDefinitions writes the definitions as a table.
func PrintDefinitions(f io.Writer, defs []*catalog.Definition, style *table.Style, withColor bool) {
	t := table.NewWriter()
	t.SetOutputMirror(f)
	if style != nil {
		t.SetStyle(*style)
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, WidthMax: 60, WidthMaxEnforcer: text.WrapText},
	})

	t.AppendHeader(table.Row{"id", "name", "category", "volume", "params"})
	for _, d := range defs {
		volume := ""
		if d.UsesVolume {
			volume = "yes"
		}

		t.AppendRow(table.Row{d.ID, d.Name, CategoryString(d.Category, withColor), volume, ParamsString(d.Params)})
	}
	t.Render()
}

// PrintDefinition writes one definition with its parameter schema.
func PrintDefinition(f io.Writer, d *catalog.Definition, style *table.Style, withColor bool) {
	var write func(io.Writer, string, ...interface{})
	if withColor {
		write = color.New(color.FgHiYellow).FprintfFunc()
	} else {
		write = func(a io.Writer, format string, args ...interface{}) {
			fmt.Fprintf(a, format, args...)
		}
	}

	write(f, "---- %s (%s) ----\n", d.Name, d.ID)
	fmt.Fprintf(f, "category: %s\n", CategoryString(d.Category, withColor))
	fmt.Fprintf(f, "%s\n", d.Description)
	if d.UsesVolume {
		fmt.Fprintf(f, "reads volume, bars without volume fall back to a fixed placeholder\n")
	}

	if len(d.Params) == 0 {
		fmt.Fprintf(f, "no parameters\n")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(f)
	if style != nil {
		t.SetStyle(*style)
	}
	t.AppendHeader(table.Row{"param", "type", "default", "min", "max", "step"})
	for _, p := range d.Params {
		step := ""
		if p.Step > 0 {
			step = fmt.Sprint(p.Step)
		}
		t.AppendRow(table.Row{p.Name, string(p.Type), p.Default, p.Min, p.Max, step})
	}
	t.Render()
}
