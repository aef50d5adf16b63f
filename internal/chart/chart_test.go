package chart

import (
	"encoding/json"
	"math"
	"testing"

	"NobelDashboard/internal/models"
)

func award(year int, country string, age int) models.AwardRecord {
	r := models.AwardRecord{Year: models.YearOf(year), Category: "Peace", Age: &age}
	if country != "" {
		r.BornCountry = &country
	}
	return r
}

func TestCountByCountry(t *testing.T) {
	records := []models.AwardRecord{
		award(1901, "France", 1),
		award(1902, "Germany", 2),
		award(1903, "France", 3),
		award(1904, "", 4),
		award(1905, "Austria", 5),
	}

	got := CountByCountry(records)
	want := []CountryCount{{"France", 2}, {"Austria", 1}, {"Germany", 1}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCountByCountryComparesNamesExactly(t *testing.T) {
	empty := models.AwardRecord{Year: models.YearOf(1906), Category: "Peace", BornCountry: models.StringPtr("")}
	records := []models.AwardRecord{
		award(1901, "Norway", 1),
		award(1902, "Norway ", 2),
		empty,
		award(1903, "Norway", 3),
	}

	got := CountByCountry(records)
	want := []CountryCount{{"Norway", 2}, {"", 1}, {"Norway ", 1}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if BuildMap([]models.AwardRecord{empty}).IsPlaceholder() {
		t.Fatal("a record with an empty bornCountry still carries the field")
	}
}

func TestBuildMap(t *testing.T) {
	fig := BuildMap([]models.AwardRecord{award(1901, "France", 1), award(1903, "France", 3)})
	if fig.IsPlaceholder() {
		t.Fatal("expected a choropleth")
	}
	trace := fig.Data[0]
	if trace.Type != "choropleth" || trace.LocationMode != "country names" || trace.ColorScale != "Purples" {
		t.Fatalf("trace = %+v", trace)
	}
	if len(trace.Locations) != 1 || trace.Locations[0] != "France" || trace.Z[0] != 2 {
		t.Fatalf("locations/z = %v/%v", trace.Locations, trace.Z)
	}
	if fig.Layout.Title.Text != MapTitle {
		t.Fatalf("title = %q", fig.Layout.Title.Text)
	}
}

func TestBuildMapWithoutCountryIsPlaceholder(t *testing.T) {
	records := []models.AwardRecord{award(1901, "", 1), award(1902, "", 2)}
	fig := BuildMap(records)
	if !fig.IsPlaceholder() {
		t.Fatalf("expected placeholder, got %+v", fig)
	}
	data, err := json.Marshal(fig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("placeholder json = %s", data)
	}

	if !BuildMap(nil).IsPlaceholder() {
		t.Fatal("empty input should give placeholder")
	}
}

func TestFitOLS(t *testing.T) {
	x := []float64{1900, 1950, 2000}
	y := []float64{0, 50, 100}
	fit, ok := FitOLS(x, y)
	if !ok {
		t.Fatal("expected a fit")
	}
	if math.Abs(fit.Slope-1) > 1e-9 || math.Abs(fit.Intercept+1900) > 1e-6 {
		t.Fatalf("fit = %+v", fit)
	}
	if math.Abs(fit.RSquared-1) > 1e-9 {
		t.Fatalf("r2 = %v", fit.RSquared)
	}

	if _, ok := FitOLS([]float64{1999}, []float64{99}); ok {
		t.Fatal("single point should not fit")
	}
	if _, ok := FitOLS([]float64{1999, 1999}, []float64{1, 2}); ok {
		t.Fatal("identical x values should not fit")
	}
}

func TestBuildScatter(t *testing.T) {
	fig := BuildScatter([]models.AwardRecord{award(1910, "", 10), award(1990, "", 90), award(1950, "", 50)})
	if fig.IsPlaceholder() {
		t.Fatal("expected scatter")
	}
	if len(fig.Data) != 2 {
		t.Fatalf("traces = %d, want points + trend", len(fig.Data))
	}
	points, trend := fig.Data[0], fig.Data[1]
	if points.Mode != "markers" || points.Marker.Opacity != 0.65 {
		t.Fatalf("points = %+v", points)
	}
	if len(points.X) != 3 || points.X[1] != 1990 || points.Y[1] != 90 {
		t.Fatalf("points must keep input order: %v %v", points.X, points.Y)
	}
	if trend.Mode != "lines" || trend.X[0] != 1910 || trend.X[1] != 1990 {
		t.Fatalf("trend = %+v", trend)
	}
	if math.Abs(trend.Y[0]-10) > 1e-6 || math.Abs(trend.Y[1]-90) > 1e-6 {
		t.Fatalf("trend y = %v", trend.Y)
	}
	if fig.Layout.Title.Text != ScatterTitle {
		t.Fatalf("title = %q", fig.Layout.Title.Text)
	}
}

func TestBuildScatterSinglePointHasNoTrend(t *testing.T) {
	fig := BuildScatter([]models.AwardRecord{award(1999, "Norway", 99)})
	if len(fig.Data) != 1 {
		t.Fatalf("traces = %d, want 1", len(fig.Data))
	}
}

func TestBuildScatterWithoutAgeIsPlaceholder(t *testing.T) {
	records := []models.AwardRecord{
		{Year: models.YearOf(1999), Category: "Peace"},
		{Year: models.YearOf(2000), Category: "Physics"},
	}
	if !BuildScatter(records).IsPlaceholder() {
		t.Fatal("records without age should give placeholder")
	}
	if !BuildScatter(nil).IsPlaceholder() {
		t.Fatal("empty input should give placeholder")
	}
}

func TestBuildersDoNotMutateInput(t *testing.T) {
	records := []models.AwardRecord{award(1950, "Chile", 50), award(1901, "France", 1)}
	before, _ := json.Marshal(records)

	BuildMap(records)
	BuildScatter(records)

	after, _ := json.Marshal(records)
	if string(before) != string(after) {
		t.Fatalf("input changed:\n%s\n%s", before, after)
	}
}
