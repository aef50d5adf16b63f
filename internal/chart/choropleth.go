package chart

import (
	"sort"

	"NobelDashboard/internal/models"
)

const (
	MapTitle      = "Number of Nobel Prize Winners by Country"
	mapColorScale = "Purples"
)

type CountryCount struct {
	Country string
	Count   int
}

// CountByCountry groups records by bornCountry, comparing names exactly.
// Records without the field are not counted; an empty name is a group of
// its own. The result is ordered by count, highest first, then by
// name.
func CountByCountry(records []models.AwardRecord) []CountryCount {
	counts := make(map[string]int)
	for _, r := range records {
		if !r.HasBornCountry() {
			continue
		}
		counts[*r.BornCountry]++
	}

	result := make([]CountryCount, 0, len(counts))
	for country, n := range counts {
		result = append(result, CountryCount{Country: country, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Country < result[j].Country
	})
	return result
}

// BuildMap returns a per-country choropleth, or the placeholder figure when
// no record carries the bornCountry field.
func BuildMap(records []models.AwardRecord) Figure {
	counts := CountByCountry(records)
	if len(counts) == 0 {
		return Figure{}
	}

	locations := make([]string, len(counts))
	z := make([]int, len(counts))
	for i, c := range counts {
		locations[i] = c.Country
		z[i] = c.Count
	}

	return Figure{
		Data: []Trace{{
			Type:          "choropleth",
			Locations:     locations,
			Z:             z,
			LocationMode:  "country names",
			ColorScale:    mapColorScale,
			ColorBar:      &ColorBar{Title: title("Count")},
			HoverTemplate: "Country=%{location}<br>Count=%{z}<extra></extra>",
		}},
		Layout: &Layout{
			Title: title(MapTitle),
			Geo:   &Geo{ShowFrame: false, ShowCoastlines: true},
		},
	}
}
