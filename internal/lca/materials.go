package lca

import (
	_ "embed"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"sync"
)

// MaterialSpec describes a packaging material's physical and recycling
// properties under Indian market conditions.
type MaterialSpec struct {
	Material PackagingMaterial

	// DensityGPerCm3 converts container volume to packaging mass.
	DensityGPerCm3 float64

	// Recyclable reports whether a domestic recycling stream exists.
	Recyclable bool

	// RecyclingRate is the nominal share actually recycled.
	RecyclingRate float64

	// Infrastructure grades collection infrastructure ("Good", "Poor", ...).
	Infrastructure string
}

// rawPackagingMaterialsCSV is the embedded packaging material table.
//
//go:embed data/packaging_materials.csv
var rawPackagingMaterialsCSV string

var (
	materialsOnce sync.Once
	materialSpecs map[PackagingMaterial]MaterialSpec
)

func loadMaterialSpecs() {
	materialsOnce.Do(func() {
		materialSpecs = make(map[PackagingMaterial]MaterialSpec)

		reader := csv.NewReader(strings.NewReader(rawPackagingMaterialsCSV))
		if _, err := reader.Read(); err != nil {
			logger.Warn().Err(err).Msg("failed to read packaging material header")
			return
		}

		for {
			row, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil || len(row) < 5 {
				logger.Warn().Err(err).Msg("skipping malformed packaging material row")
				continue
			}

			density, derr := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
			recyclable, rerr := strconv.ParseBool(strings.TrimSpace(row[2]))
			rate, rterr := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
			if derr != nil || rerr != nil || rterr != nil {
				logger.Warn().Str("material", row[0]).Msg("skipping packaging material row with bad numeric field")
				continue
			}

			mat := PackagingMaterial(strings.TrimSpace(row[0]))
			materialSpecs[mat] = MaterialSpec{
				Material:       mat,
				DensityGPerCm3: density,
				Recyclable:     recyclable,
				RecyclingRate:  rate,
				Infrastructure: strings.TrimSpace(row[4]),
			}
		}
	})
}

// MaterialSpecFor returns the spec for a packaging material. Unknown
// materials get a conservative default: density 1.0, not recyclable, 1%
// recycling rate.
func MaterialSpecFor(material PackagingMaterial) MaterialSpec {
	loadMaterialSpecs()
	if spec, ok := materialSpecs[material]; ok {
		return spec
	}
	return MaterialSpec{
		Material:       material,
		DensityGPerCm3: 1.0,
		Recyclable:     false,
		RecyclingRate:  0.01,
		Infrastructure: "Unknown",
	}
}
