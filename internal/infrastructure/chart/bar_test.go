package chart

import (
	"bytes"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderBarChart(t *testing.T) {
	t.Parallel()

	counts := map[string]int{
		"агрессия":   1,
		"тревожность": 3,
		"позитив":    5,
	}

	png, err := NewRenderer().RenderBarChart(counts)
	if err != nil {
		t.Fatalf("RenderBarChart error: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatalf("output is not a PNG, first bytes: %v", png[:min(len(png), 8)])
	}
}

func TestRenderBarChartAllZero(t *testing.T) {
	t.Parallel()

	png, err := NewRenderer().RenderBarChart(map[string]int{})
	if err != nil {
		t.Fatalf("RenderBarChart error for zero counts: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatal("zero-count output is not a PNG")
	}
}
