// Package scoring implements the shared rule engine behind the risk
// analyzers: descending threshold ladders for numeric factors, weight
// lookups for categorical factors, and the cutoff ladder that maps an
// accumulated score to a named risk level. Each analyzer supplies its
// own literal tables; this package only evaluates them.
package scoring

// Band is one rung of a "greater-than" threshold ladder. Bands are
// evaluated in order and only the first match contributes, so a table
// must list its rungs from most to least severe.
type Band struct {
	Above  float64
	Points int
}

// Grade returns the points of the first band whose threshold the value
// exceeds, or 0 when no band matches.
func Grade(value float64, bands []Band) int {
	for _, b := range bands {
		if value > b.Above {
			return b.Points
		}
	}
	return 0
}

// BandBelow is one rung of a "less-than" ladder (oxygen saturation,
// maximum heart rate, hemoglobin). Rungs are ordered from most to
// least severe, i.e. ascending thresholds.
type BandBelow struct {
	Below  float64
	Points int
}

// GradeBelow returns the points of the first band whose threshold the
// value falls under, or 0 when no band matches.
func GradeBelow(value float64, bands []BandBelow) int {
	for _, b := range bands {
		if value < b.Below {
			return b.Points
		}
	}
	return 0
}

// Choice returns the weight registered for a categorical selection.
// Unknown or empty selections contribute nothing; weights may be
// negative for protective factors.
func Choice(value string, weights map[string]int) int {
	return weights[value]
}

// Cutoff binds a minimum score to a risk level name.
type Cutoff struct {
	Min   int
	Level string
}

// Ladder is an ordered set of cutoffs, highest minimum first. The last
// entry is the floor bucket and should carry Min 0 (or lower, scores
// can go negative where protective factors exist).
type Ladder []Cutoff

// Bucket maps a total score to a risk level. Every score maps to
// exactly one level as long as the final cutoff is a floor.
func (l Ladder) Bucket(score int) string {
	for _, c := range l {
		if score >= c.Min {
			return c.Level
		}
	}
	if len(l) == 0 {
		return ""
	}
	return l[len(l)-1].Level
}

// Confidence synthesizes the displayed confidence percentage as a
// deterministic linear function of the score, clamped to max. The
// source of these numbers is cosmetic, not statistical.
func Confidence(base, perPoint, max, score int) int {
	c := base + score*perPoint
	if c > max {
		return max
	}
	if c < base {
		return base
	}
	return c
}

// Dedup returns the input with duplicates removed (first occurrence
// wins), truncated to limit entries. A limit <= 0 means no cap.
func Dedup(items []string, limit int) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Truncate caps a list at n entries without copying.
func Truncate(items []string, n int) []string {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
