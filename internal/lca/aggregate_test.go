package lca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStages() map[Stage]StageResult {
	return map[Stage]StageResult{
		StageIngredients:    {Emission: 0.20, Uncertainty: 0.06},
		StagePackaging:      {Emission: 0.11, Uncertainty: 0.06},
		StageTransportation: {Emission: 0.03, Uncertainty: 0.07},
		StageManufacturing:  {Emission: 0.05, Uncertainty: 0.08},
		StageUsePhase:       {Emission: 2.0, Uncertainty: 0.09},
		StageEndOfLife:      {Emission: 0.03, Uncertainty: 0.08},
	}
}

// TestAggregate verifies totals, uncertainty blending and the nudge for a
// realistic stage mix.
func TestAggregate(t *testing.T) {
	agg := Aggregate(sampleStages(), "shampoo", 0.25)

	rawTotal := 0.20 + 0.11 + 0.03 + 0.05 + 2.0 + 0.03
	assert.InDelta(t, 1.0, agg.AdjustmentFactor, 1e-9, "above-floor totals are not scaled")

	// The nudge lifts the total by a tenth of the blended uncertainty.
	assert.Greater(t, agg.Total, rawTotal)
	assert.Less(t, agg.Total, rawTotal*1.02)

	// Breakdown preserves raw stage values when no floor fires.
	sum := 0.0
	for _, stage := range Stages {
		sum += agg.Breakdown[stage]
	}
	assert.InDelta(t, rawTotal, sum, 1e-9)

	// Blended uncertainty sits inside the stage band, dominated by the
	// use-phase share.
	assert.Greater(t, agg.WeightedUncertainty, 0.06)
	assert.Less(t, agg.WeightedUncertainty, 0.09)

	assert.InDelta(t, agg.Total*0.98, agg.DisplayRange.Low, 1e-9)
	assert.InDelta(t, agg.Total*1.02, agg.DisplayRange.High, 1e-9)
}

// TestAggregateFloor verifies the category floor scales stages up
// proportionally when the raw total is implausibly low.
func TestAggregateFloor(t *testing.T) {
	stages := map[Stage]StageResult{
		StageIngredients:    {Emission: 0.005, Uncertainty: 0.05},
		StagePackaging:      {Emission: 0.004, Uncertainty: 0.06},
		StageTransportation: {Emission: 0.003, Uncertainty: 0.07},
		StageManufacturing:  {Emission: 0.002, Uncertainty: 0.08},
		StageUsePhase:       {Emission: 0.001, Uncertainty: 0.04},
		StageEndOfLife:      {Emission: 0.001, Uncertainty: 0.08},
	}

	agg := Aggregate(stages, "body wash", 1.0)

	floor := MinimumEmissions("body wash", 1.0)
	require.InDelta(t, 0.18, floor, 1e-9)

	assert.Greater(t, agg.AdjustmentFactor, 1.0)
	assert.GreaterOrEqual(t, agg.Total, floor)

	// Scaled breakdown matches the floored total before the nudge.
	sum := 0.0
	for _, stage := range Stages {
		sum += agg.Breakdown[stage]
	}
	assert.InDelta(t, floor, sum, 1e-9)
}

// TestAggregateNegativeStageClamped verifies negative stage inputs are
// zeroed rather than offsetting other stages.
func TestAggregateNegativeStageClamped(t *testing.T) {
	stages := sampleStages()
	stages[StageEndOfLife] = StageResult{Emission: -0.5, Uncertainty: 0.08}

	agg := Aggregate(stages, "shampoo", 0.25)

	assert.Zero(t, agg.Breakdown[StageEndOfLife])
	for _, stage := range Stages {
		assert.GreaterOrEqual(t, agg.Breakdown[stage], 0.0)
	}

	// The caller's map keeps its original values.
	assert.InDelta(t, -0.5, stages[StageEndOfLife].Emission, 1e-9)
}

// TestAggregateConfidenceBounds verifies every confidence score stays in
// the 0.90-0.95 band.
func TestAggregateConfidenceBounds(t *testing.T) {
	agg := Aggregate(sampleStages(), "shampoo", 0.25)

	require.Len(t, agg.Confidence, len(Stages))
	for stage, conf := range agg.Confidence {
		assert.GreaterOrEqual(t, conf, minConfidence, stage)
		assert.LessOrEqual(t, conf, maxConfidence, stage)
	}
	assert.GreaterOrEqual(t, agg.OverallConfidence, minConfidence)
	assert.LessOrEqual(t, agg.OverallConfidence, maxConfidence)

	// Lower uncertainty earns higher confidence.
	assert.Greater(t, agg.Confidence[StagePackaging], agg.Confidence[StageUsePhase])
}

// TestMinimumEmissions verifies the specific, broad and default floor
// chain.
func TestMinimumEmissions(t *testing.T) {
	assert.InDelta(t, 0.18*0.5, MinimumEmissions("body wash", 0.5), 1e-9)
	assert.InDelta(t, 0.32*0.01, MinimumEmissions("Lipstick", 0.01), 1e-9)
	assert.InDelta(t, 0.22*0.25, MinimumEmissions("premium cosmetics", 0.25), 1e-9)
	assert.InDelta(t, 0.15*0.25, MinimumEmissions("something else entirely", 0.25), 1e-9)
}
