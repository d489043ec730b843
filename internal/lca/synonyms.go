package lca

import "strings"

// ingredientSynonyms maps canonical table names to label variants. Lookups
// run both directions: a variant resolves to its canonical entry, and a
// canonical name listed here resolves to itself.
var ingredientSynonyms = map[string][]string{
	"Water":                  {"Aqua", "Aqua (Water)", "Purified Water", "Deionized Water"},
	"Sodium Laureth Sulfate": {"SLES", "Sodium Lauryl Ether Sulfate", "SLS"},
	"Cocamidopropyl Betaine": {"CAPB", "Coconut Betaine", "Coco Betaine"},
	"Glycerin":               {"Glycerol", "Glycerine", "Propane-1,2,3-triol"},
	"Fragrance":              {"Parfum", "Perfume", "Essential Oils", "Ifra Certified Fragrance"},
	"Phenoxyethanol":         {"Preservative", "Preservatives"},
	"Citric Acid":            {"E330", "Citrate", "Citric acid monohydrate"},
	"Sodium Chloride":        {"Salt", "Table Salt", "NaCl"},
	"Tocopherol":             {"Vitamin E", "Alpha-Tocopherol", "Mixed Tocopherols"},
	"Ascorbic Acid":          {"Vitamin C", "L-Ascorbic Acid", "Ascorbate"},
	"Retinol":                {"Vitamin A", "Retinyl Palmitate", "Retinyl Acetate"},
	"Niacinamide":            {"Vitamin B3", "Nicotinamide", "Nicotinic Acid Amide"},
	"Panthenol":              {"Pro-Vitamin B5", "D-Panthenol", "Pantothenic Acid"},
	"Hyaluronic Acid":        {"Sodium Hyaluronate", "HA", "Hyaluronan"},
	"Ceramide NP":            {"Ceramide", "Ceramide AP", "Ceramide EOP"},
	"Dimethicone":            {"Silicone", "Polydimethylsiloxane", "PDMS"},
}

// synonymIndex is built once from ingredientSynonyms: lowercase variant (or
// canonical name) to canonical table name.
var synonymIndex = func() map[string]string {
	idx := make(map[string]string)
	for canonical, variants := range ingredientSynonyms {
		idx[strings.ToLower(canonical)] = canonical
		for _, v := range variants {
			idx[strings.ToLower(v)] = canonical
		}
	}
	return idx
}()

// canonicalName resolves an ingredient label to its canonical table name.
func canonicalName(ingredient string) (string, bool) {
	canonical, ok := synonymIndex[strings.ToLower(strings.TrimSpace(ingredient))]
	return canonical, ok
}
