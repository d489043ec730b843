package lca

import (
	"math"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/ecolens/lca-engine/internal/refdata"
)

// Factor validation bounds. Table values above the suspicious threshold are
// treated as data errors and capped; non-positive values are replaced with
// the chemical-family fallback.
const (
	suspiciousFactorThreshold = 50.0
	maxEmissionFactor         = 15.0
	fuzzyMatchThreshold       = 70
)

// Resolution is a resolved per-kg emission factor with its provenance.
type Resolution struct {
	Factor      float64
	Uncertainty float64
	Source      MatchSource

	// Similarity is the 0-100 name similarity for fuzzy matches, zero for
	// every other tier.
	Similarity int
}

// Resolver maps ingredient labels to emission factors through a tiered
// matcher: exact name, synonym, fuzzy name, economic activity, then a
// chemical-family fallback. Resolutions are cached; the resolver is safe
// for concurrent use.
type Resolver struct {
	table refdata.Table

	mu    sync.RWMutex
	cache map[string]Resolution
}

// NewResolver returns a Resolver over the given reference table.
func NewResolver(table refdata.Table) *Resolver {
	return &Resolver{
		table: table,
		cache: make(map[string]Resolution),
	}
}

// Resolve returns the emission factor for an ingredient label. It never
// fails: labels nothing else matches get a chemical-family estimate.
func (r *Resolver) Resolve(ingredient string) Resolution {
	key := strings.ToLower(strings.TrimSpace(ingredient))

	r.mu.RLock()
	res, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return res
	}

	res = r.resolve(ingredient)

	r.mu.Lock()
	r.cache[key] = res
	r.mu.Unlock()
	return res
}

func (r *Resolver) resolve(ingredient string) Resolution {
	// Tier 1: exact name match.
	if rec, ok := r.table.LookupExact(ingredient); ok {
		return Resolution{
			Factor:      r.validateFactor(rec.EmissionValue, ingredient),
			Uncertainty: 0.05,
			Source:      SourceExactMatch,
		}
	}

	// Tier 2: synonym match against the canonical table name.
	if canonical, ok := canonicalName(ingredient); ok {
		if rec, ok := r.table.LookupExact(canonical); ok {
			return Resolution{
				Factor:      r.validateFactor(rec.EmissionValue, ingredient),
				Uncertainty: 0.06,
				Source:      SourceSynonymMatch,
			}
		}
	}

	// Tier 3: fuzzy name match. Names are scanned in table order, so equal
	// scores resolve to the earlier row on every run.
	bestScore := 0
	bestName := ""
	for _, name := range r.table.Names() {
		score := similarityRatio(ingredient, name)
		if score > fuzzyMatchThreshold && score > bestScore {
			bestScore = score
			bestName = name
		}
	}
	if bestName != "" {
		rec, _ := r.table.LookupExact(bestName)
		return Resolution{
			Factor:      r.validateFactor(rec.EmissionValue, ingredient),
			Uncertainty: 0.07 + float64(100-bestScore)/100*0.03,
			Source:      SourceFuzzyMatch,
			Similarity:  bestScore,
		}
	}

	// Tier 4: economic-activity match on the label's first word.
	if fields := strings.Fields(ingredient); len(fields) > 0 {
		if rec, ok := r.table.FindByActivity(fields[0]); ok {
			return Resolution{
				Factor:      r.validateFactor(rec.EmissionValue, ingredient),
				Uncertainty: 0.08,
				Source:      SourceActivityMatch,
			}
		}
	}

	// Tier 5: chemical-family fallback.
	return Resolution{
		Factor:      fallbackEmissionFactor(ingredient),
		Uncertainty: 0.10,
		Source:      SourceFallback,
	}
}

// validateFactor repairs malformed table values. Non-positive factors are
// replaced with the chemical-family fallback; implausibly high factors are
// capped.
func (r *Resolver) validateFactor(raw float64, ingredient string) float64 {
	if raw <= 0 {
		corrected := fallbackEmissionFactor(ingredient)
		logger.Warn().
			Str("ingredient", ingredient).
			Float64("raw_factor", raw).
			Float64("corrected", corrected).
			Msg("correcting non-positive emission factor")
		return corrected
	}
	if raw > suspiciousFactorThreshold {
		logger.Warn().
			Str("ingredient", ingredient).
			Float64("raw_factor", raw).
			Float64("capped", maxEmissionFactor).
			Msg("capping implausibly high emission factor")
		return maxEmissionFactor
	}
	return raw
}

// similarityRatio scores two names 0-100 from their Levenshtein distance
// relative to the longer name. Comparison is case-insensitive.
func similarityRatio(a, b string) int {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 100
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * (1 - float64(dist)/float64(longest))))
}
