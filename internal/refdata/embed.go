package refdata

import _ "embed"

// rawEmissionFactorsCSV is the embedded emission-factor reference table.
// Regenerate with: go run ./tools/generate-emission-data
//
//go:embed data/emission_factors.csv
var rawEmissionFactorsCSV string
