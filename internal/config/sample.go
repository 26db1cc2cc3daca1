package config

import "github.com/jask/graphview/internal/graph"

// Sample is a small document with one line series over a volume band.
func Sample() Document {
	return Document{
		Chart: ChartConfig{
			Width:             80,
			Height:            24,
			Border:            1,
			MainHeightPortion: graph.DefaultMainChartHeightPortion,
		},
		Series: []SeriesConfig{
			{
				Name: "price",
				Type: "line",
				Points: [][]float64{
					{0, 12}, {1, 14}, {2, 13}, {3, 17}, {4, 16}, {5, 21}, {6, 19}, {7, 24},
				},
			},
			{
				Name: "volume",
				Type: "bar",
				Points: [][]float64{
					{0, 300}, {1, 420}, {2, 380}, {3, 610}, {4, 450}, {5, 720}, {6, 500}, {7, 830},
				},
			},
		},
	}
}
