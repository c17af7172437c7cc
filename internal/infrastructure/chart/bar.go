package chart

import (
	"bytes"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"

	"NewsMoodBot/internal/domain"
	"NewsMoodBot/internal/ports"
)

// Renderer draws the emotion distribution as a PNG bar chart.
type Renderer struct {
	width  int
	height int
}

var _ ports.ChartRenderer = (*Renderer)(nil)

// NewRenderer builds a renderer with the default canvas size.
func NewRenderer() *Renderer {
	return &Renderer{width: 900, height: 600}
}

// RenderBarChart renders one bar per candidate label, in the fixed label
// order so consecutive charts stay comparable.
func (r *Renderer) RenderBarChart(counts map[string]int) ([]byte, error) {
	bars := make([]gochart.Value, 0, len(domain.CandidateLabels))
	maxCount := 0
	for _, label := range domain.CandidateLabels {
		count := counts[label]
		if count > maxCount {
			maxCount = count
		}
		bars = append(bars, gochart.Value{Label: label, Value: float64(count)})
	}

	graph := gochart.BarChart{
		Title:    "Распределение эмоций новостей",
		Width:    r.width,
		Height:   r.height,
		BarWidth: 110,
		Bars:     bars,
		XAxis:    gochart.Style{TextRotationDegrees: 15},
		YAxis: gochart.YAxis{
			// go-chart cannot render a zero-span range.
			Range: &gochart.ContinuousRange{Min: 0, Max: float64(maxCount + 1)},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}
	return buf.Bytes(), nil
}
