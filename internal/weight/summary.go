package weight

import (
	"math"

	"github.com/2beens/fittrack/pkg"
)

// changes smaller than this are shown as no change
const minVisibleChange = 0.05

type SummaryEntry struct {
	Record
	// nil when there is no older record or the difference is negligible
	Change *float64 `json:"change"`
}

type Summary struct {
	Count         int            `json:"count"`
	Average       float64        `json:"average"`
	Min           float64        `json:"min"`
	Max           float64        `json:"max"`
	First         float64        `json:"first"`
	Last          float64        `json:"last"`
	Diff          float64        `json:"diff"`
	PercentChange float64        `json:"percentChange"`
	Entries       []SummaryEntry `json:"entries"`
}

// Summarize computes the statistics shown next to the weight chart.
// First is the oldest record, Last the newest; Entries are newest first.
func Summarize(records []Record) Summary {
	if len(records) == 0 {
		return Summary{Entries: []SummaryEntry{}}
	}

	sorted := newestFirst(records)
	newest := sorted[0].WeightKg
	oldest := sorted[len(sorted)-1].WeightKg

	sum := 0.0
	minW, maxW := math.Inf(1), math.Inf(-1)
	entries := make([]SummaryEntry, len(sorted))
	for i, r := range sorted {
		sum += r.WeightKg
		minW = math.Min(minW, r.WeightKg)
		maxW = math.Max(maxW, r.WeightKg)

		entries[i] = SummaryEntry{Record: r}
		if i < len(sorted)-1 {
			entries[i].Change = change(r.WeightKg, sorted[i+1].WeightKg)
		}
	}

	diff := newest - oldest
	return Summary{
		Count:         len(sorted),
		Average:       pkg.RoundTo(sum/float64(len(sorted)), 1),
		Min:           minW,
		Max:           maxW,
		First:         oldest,
		Last:          newest,
		Diff:          pkg.RoundTo(diff, 1),
		PercentChange: pkg.RoundTo(diff/oldest*100, 1),
		Entries:       entries,
	}
}

func change(current, previous float64) *float64 {
	c := current - previous
	if math.Abs(c) < minVisibleChange {
		return nil
	}
	rounded := pkg.RoundTo(c, 1)
	return &rounded
}
