package domain

import (
	"testing"

	catalog "github.com/lnsc/storefront/internal/modules/catalog/domain"
)

func tableProduct(id string, price, rating float64, weight string) *catalog.Product {
	return &catalog.Product{
		ID:     id,
		Price:  price,
		Rating: rating,
		Specs: catalog.Specs{
			Physical: catalog.SpecGroup{"weight": weight},
		},
	}
}

func findRow(t *testing.T, table *Table, label string) Row {
	t.Helper()
	for _, row := range table.Rows {
		if row.Label == label {
			return row
		}
	}
	t.Fatalf("row %q not found in table", label)
	return Row{}
}

func TestBuildTableHighlightsNumericRows(t *testing.T) {
	products := []*catalog.Product{
		tableProduct("1", 89999, 4.8, "2.5 kg"),
		tableProduct("2", 25999, 4.2, "1.8 kg"),
		tableProduct("3", 65999, 4.6, "2.1 kg"),
	}

	table := BuildTable(products, false)

	price := findRow(t, table, "price")
	if price.Cells[0].Highlight != HighlightBest {
		t.Errorf("price[0].Highlight = %q, want best", price.Cells[0].Highlight)
	}
	if price.Cells[1].Highlight != HighlightWorst {
		t.Errorf("price[1].Highlight = %q, want worst", price.Cells[1].Highlight)
	}
	if price.Cells[2].Highlight != HighlightNeutral {
		t.Errorf("price[2].Highlight = %q, want neutral", price.Cells[2].Highlight)
	}

	weight := findRow(t, table, "weight")
	if weight.Cells[0].Highlight != HighlightBest {
		t.Errorf("weight[0].Highlight = %q, want best", weight.Cells[0].Highlight)
	}
	if weight.Cells[1].Highlight != HighlightWorst {
		t.Errorf("weight[1].Highlight = %q, want worst", weight.Cells[1].Highlight)
	}
}

func TestBuildTableEqualValuesStayNeutral(t *testing.T) {
	products := []*catalog.Product{
		tableProduct("1", 50000, 4.5, "2.0 kg"),
		tableProduct("2", 50000, 4.5, "2.0 kg"),
	}

	table := BuildTable(products, false)

	price := findRow(t, table, "price")
	for i, cell := range price.Cells {
		if cell.Highlight != HighlightNeutral {
			t.Errorf("price[%d].Highlight = %q, want neutral", i, cell.Highlight)
		}
	}
}

func TestBuildTableNonNumericRowsStayNeutral(t *testing.T) {
	products := []*catalog.Product{
		{ID: "1", Specs: catalog.Specs{Processor: catalog.SpecGroup{"brand": "Intel"}}},
		{ID: "2", Specs: catalog.Specs{Processor: catalog.SpecGroup{"brand": "AMD"}}},
	}

	table := BuildTable(products, false)

	brand := findRow(t, table, "brand")
	for i, cell := range brand.Cells {
		if cell.Highlight != HighlightNeutral {
			t.Errorf("brand[%d].Highlight = %q, want neutral", i, cell.Highlight)
		}
	}
}

func TestBuildTableDifferencesOnly(t *testing.T) {
	products := []*catalog.Product{
		tableProduct("1", 89999, 4.5, "2.0 kg"),
		tableProduct("2", 25999, 4.5, "2.0 kg"),
	}

	table := BuildTable(products, true)

	if _, ok := rowByLabel(table, "price"); !ok {
		t.Error("differing price row was suppressed")
	}
	if _, ok := rowByLabel(table, "rating"); ok {
		t.Error("identical rating row survived differencesOnly")
	}
	if _, ok := rowByLabel(table, "weight"); ok {
		t.Error("identical weight row survived differencesOnly")
	}
}

func TestBuildTableEmptyCollection(t *testing.T) {
	table := BuildTable(nil, false)

	if len(table.ProductIDs) != 0 {
		t.Errorf("ProductIDs length = %d, want 0", len(table.ProductIDs))
	}
	if len(table.Rows) != 0 {
		t.Errorf("Rows length = %d, want 0", len(table.Rows))
	}
}

func rowByLabel(table *Table, label string) (Row, bool) {
	for _, row := range table.Rows {
		if row.Label == label {
			return row, true
		}
	}
	return Row{}, false
}
