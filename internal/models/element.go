package models

import "strings"

// Element identifies one tracked trace element and where its concentration
// lives in the source CSV and in the samples table.
type Element struct {
	Symbol    string `json:"symbol"`
	CSVColumn string `json:"csvColumn"`
	DBColumn  string `json:"-"`
}

// Catalog is the fixed, ordered list of tracked elements. Built once at
// startup and never modified afterwards.
var Catalog = buildCatalog(
	"Li", "Cu", "Co", "Ni", "La", "Ce",
	"Pr", "Nd", "Sm", "Eu", "Gd", "Tb",
	"Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Sc", "Y",
)

func buildCatalog(symbols ...string) []Element {
	elements := make([]Element, 0, len(symbols))
	for _, s := range symbols {
		elements = append(elements, Element{
			Symbol:    s,
			CSVColumn: s + "_ppm2",
			DBColumn:  "el_" + strings.ToLower(s),
		})
	}
	return elements
}

// ElementBySymbol looks up a catalog entry by its symbol.
func ElementBySymbol(symbol string) (Element, bool) {
	for _, e := range Catalog {
		if e.Symbol == symbol {
			return e, true
		}
	}
	return Element{}, false
}

// DefaultElement is the catalog entry used when a selection names no element.
func DefaultElement() Element {
	return Catalog[0]
}
