package weight

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/2beens/fittrack/pkg"
)

var ErrRecordNotFound = errors.New("weight record not found")

type Record struct {
	ID       string    `json:"id"`
	WeightKg float64   `json:"weightKg"`
	Date     time.Time `json:"date"`
	Notes    string    `json:"notes,omitempty"`
}

type Entry struct {
	WeightKg float64   `json:"weightKg"`
	Date     time.Time `json:"date"`
	Notes    string    `json:"notes"`
}

func (e Entry) Validate() error {
	// rounded, since that is what gets stored
	if !pkg.IsFinite(e.WeightKg) || pkg.RoundTo(e.WeightKg, 1) <= 0 {
		return pkg.NewInvalidInputError("weightKg", "must be a positive number")
	}
	return nil
}

// NewRecord stores the weight with one decimal, as entered on a scale.
func NewRecord(id string, e Entry) Record {
	return Record{
		ID:       id,
		WeightKg: pkg.RoundTo(e.WeightKg, 1),
		Date:     e.Date,
		Notes:    strings.TrimSpace(e.Notes),
	}
}

// newestFirst returns a sorted copy.
func newestFirst(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

func removeRecord(records []Record, id string) ([]Record, error) {
	for i := range records {
		if records[i].ID == id {
			out := make([]Record, 0, len(records)-1)
			out = append(out, records[:i]...)
			return append(out, records[i+1:]...), nil
		}
	}
	return nil, ErrRecordNotFound
}
