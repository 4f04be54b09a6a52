package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradeacademy/indicatorlab/pkg/catalog"
	"github.com/tradeacademy/indicatorlab/pkg/style"
)

func init() {
	ListCmd.Flags().String("category", "all", "trend, momentum, volatility, volume, oscillator or all")
	ListCmd.Flags().String("search", "", "filter by text in the id, name or description")
	ListCmd.Flags().String("format", "table", "table or json")
	RootCmd.AddCommand(ListCmd)
}

// go run ./cmd/indicatorlab list --category=volatility
var ListCmd = &cobra.Command{
	Use:   "list [--category=trend] [--search=text]",
	Short: "list the available indicators",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := cmd.Flags().GetString("category")
		if err != nil {
			return err
		}

		search, err := cmd.Flags().GetString("search")
		if err != nil {
			return err
		}

		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}

		defs, err := listDefinitions(indicators, category, search)
		if err != nil {
			return err
		}

		switch format {
		case "table":
			style.PrintDefinitions(cmd.OutOrStdout(), defs, style.TableStyle(withColor()), withColor())
			return nil
		case "json":
			return writeJSON(cmd.OutOrStdout(), defs)
		}

		return fmt.Errorf("unsupported format %q", format)
	},
}

// listDefinitions selects the built-in and custom definitions of a category,
// narrowed by the search text.
func listDefinitions(c *catalog.Catalog, category, search string) ([]*catalog.Definition, error) {
	cat, err := catalog.ParseCategory(category)
	if err != nil {
		return nil, err
	}

	matched := make(map[*catalog.Definition]struct{})
	for _, d := range c.Search(search) {
		matched[d] = struct{}{}
	}

	defs := []*catalog.Definition{}
	for _, d := range append(c.ByCategory(string(cat)), c.Customs()...) {
		if cat != catalog.CategoryAll && d.Category != cat {
			continue
		}

		if _, ok := matched[d]; ok {
			defs = append(defs, d)
		}
	}
	return defs, nil
}
