// Package domain defines the product comparison entities and the
// side-by-side table derivation.
package domain

import (
	"sort"
	"strconv"
	"strings"

	catalog "github.com/lnsc/storefront/internal/modules/catalog/domain"
)

// MaxProducts caps the comparison collection. Insertion beyond the cap is
// a silent no-op so the comparison view stays bounded.
const MaxProducts = 4

// Highlight tags a table cell relative to its row.
type Highlight string

const (
	HighlightBest    Highlight = "best"
	HighlightWorst   Highlight = "worst"
	HighlightNeutral Highlight = "neutral"
)

// Cell is one product's value for a table row.
type Cell struct {
	Value     string    `json:"value"`
	Highlight Highlight `json:"highlight"`
}

// Row is one specification line across all compared products.
type Row struct {
	Group string `json:"group"`
	Label string `json:"label"`
	Cells []Cell `json:"cells"`
}

// Table is the derived comparison view.
type Table struct {
	ProductIDs []string `json:"productIds"`
	Rows       []Row    `json:"rows"`
}

// BuildTable derives the comparison table for the given product snapshots.
// Numeric-looking rows get best/worst highlights; when differencesOnly is
// set, rows where every product has the same value are suppressed.
func BuildTable(products []*catalog.Product, differencesOnly bool) *Table {
	table := &Table{}
	for _, p := range products {
		table.ProductIDs = append(table.ProductIDs, p.ID)
	}
	if len(products) == 0 {
		return table
	}

	appendRow := func(group, label string, values []string) {
		if differencesOnly && !valuesDiffer(values) {
			return
		}
		table.Rows = append(table.Rows, Row{
			Group: group,
			Label: label,
			Cells: highlightCells(values),
		})
	}

	priceValues := make([]string, len(products))
	ratingValues := make([]string, len(products))
	for i, p := range products {
		priceValues[i] = strconv.FormatFloat(p.Price, 'f', -1, 64)
		ratingValues[i] = strconv.FormatFloat(p.Rating, 'f', -1, 64)
	}
	appendRow("overview", "price", priceValues)
	appendRow("overview", "rating", ratingValues)

	// Spec groups share a key set across the seed catalog; collect the
	// union anyway so partial snapshots degrade to empty cells.
	groups := products[0].Specs.Groups()
	for gi, group := range groups {
		for _, label := range groupKeys(products, gi) {
			values := make([]string, len(products))
			for i, p := range products {
				values[i] = p.Specs.Groups()[gi].Values[label]
			}
			appendRow(group.Name, label, values)
		}
	}

	return table
}

// highlightCells parses the numeric part of each value (everything but
// digits and dots stripped) and tags the row maximum best and the minimum
// worst. Rows where all values parse equal, or fail to parse, stay neutral.
func highlightCells(values []string) []Cell {
	cells := make([]Cell, len(values))
	numbers := make([]float64, len(values))
	numeric := true

	for i, v := range values {
		cells[i] = Cell{Value: v, Highlight: HighlightNeutral}
		n, err := strconv.ParseFloat(stripNonNumeric(v), 64)
		if err != nil {
			numeric = false
			continue
		}
		numbers[i] = n
	}
	if !numeric {
		return cells
	}

	maxValue, minValue := numbers[0], numbers[0]
	for _, n := range numbers[1:] {
		if n > maxValue {
			maxValue = n
		}
		if n < minValue {
			minValue = n
		}
	}
	if maxValue == minValue {
		return cells
	}

	for i, n := range numbers {
		switch n {
		case maxValue:
			cells[i].Highlight = HighlightBest
		case minValue:
			cells[i].Highlight = HighlightWorst
		}
	}
	return cells
}

func stripNonNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// valuesDiffer reports whether the value set has more than one member.
func valuesDiffer(values []string) bool {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen) > 1
}

// groupKeys returns the union of keys for spec group gi across products,
// in the key order of the first product that has each key.
func groupKeys(products []*catalog.Product, gi int) []string {
	var keys []string
	seen := make(map[string]struct{})
	for _, p := range products {
		group := p.Specs.Groups()[gi].Values
		for _, k := range orderedKeys(group) {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}

func orderedKeys(group catalog.SpecGroup) []string {
	keys := make([]string, 0, len(group))
	for k := range group {
		keys = append(keys, k)
	}
	// Map iteration order is random; sort for a stable table.
	sort.Strings(keys)
	return keys
}
