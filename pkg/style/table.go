package style

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewDefaultTableStyle is the colored style used on terminals.
func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsYellowWhiteOnBlack,
	}
	style.Color.Row = text.Colors{text.FgHiYellow, text.BgHiBlack}
	style.Color.RowAlternate = text.Colors{text.FgYellow, text.BgBlack}
	return &style
}

// NewPlainTableStyle has no colors, for pipes and files.
func NewPlainTableStyle() *table.Style {
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	return &style
}

// TableStyle picks the style for the output.
func TableStyle(withColor bool) *table.Style {
	if withColor {
		return NewDefaultTableStyle()
	}
	return NewPlainTableStyle()
}
