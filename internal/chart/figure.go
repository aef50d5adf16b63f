// Package chart turns filtered award records into Plotly figures that the
// dashboard page renders with plotly.js.
package chart

// Figure is a Plotly figure. The zero value marshals to "{}", which plotly.js
// renders as an empty chart.
type Figure struct {
	Data   []Trace `json:"data,omitempty"`
	Layout *Layout `json:"layout,omitempty"`
}

// IsPlaceholder reports whether the figure is the empty stand-in used when
// the input lacks the fields a chart needs.
func (f Figure) IsPlaceholder() bool {
	return len(f.Data) == 0 && f.Layout == nil
}

type Trace struct {
	Type          string    `json:"type"`
	Mode          string    `json:"mode,omitempty"`
	Name          string    `json:"name,omitempty"`
	X             []float64 `json:"x,omitempty"`
	Y             []float64 `json:"y,omitempty"`
	Locations     []string  `json:"locations,omitempty"`
	Z             []int     `json:"z,omitempty"`
	LocationMode  string    `json:"locationmode,omitempty"`
	ColorScale    string    `json:"colorscale,omitempty"`
	ColorBar      *ColorBar `json:"colorbar,omitempty"`
	Marker        *Marker   `json:"marker,omitempty"`
	Line          *Line     `json:"line,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
	ShowLegend    *bool     `json:"showlegend,omitempty"`
}

type Marker struct {
	Color   string  `json:"color,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
}

type Line struct {
	Color string `json:"color,omitempty"`
}

type ColorBar struct {
	Title *Title `json:"title,omitempty"`
}

type Title struct {
	Text string `json:"text"`
}

type Axis struct {
	Title *Title `json:"title,omitempty"`
}

type Layout struct {
	Title *Title `json:"title,omitempty"`
	XAxis *Axis  `json:"xaxis,omitempty"`
	YAxis *Axis  `json:"yaxis,omitempty"`
	Geo   *Geo   `json:"geo,omitempty"`
}

type Geo struct {
	ShowFrame      bool `json:"showframe"`
	ShowCoastlines bool `json:"showcoastlines"`
}

func title(text string) *Title {
	return &Title{Text: text}
}
