package dashboard

import "NobelDashboard/internal/models"

// Selection is the chart filter chosen in the UI. An empty Category means
// every category.
type Selection struct {
	YearMin  int    `json:"yearMin"`
	YearMax  int    `json:"yearMax"`
	Category string `json:"category,omitempty"`
}

func DefaultSelection() Selection {
	return Selection{YearMin: models.MinYear, YearMax: models.MaxYear}
}

// Filter keeps records whose year is numeric and inside the inclusive range
// and, when a category is selected, whose category matches it exactly.
// Store order is preserved and the input is not modified.
func Filter(records []models.AwardRecord, sel Selection) []models.AwardRecord {
	lo, hi := float64(sel.YearMin), float64(sel.YearMax)

	out := make([]models.AwardRecord, 0, len(records))
	for _, r := range records {
		if !r.Year.Valid || r.Year.Value < lo || r.Year.Value > hi {
			continue
		}
		if sel.Category != "" && r.Category != sel.Category {
			continue
		}
		out = append(out, r)
	}
	return out
}
