package main

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/0x0FACED/go-tessellate/pkg/voronoi"
)

func prepareScatter(scatter *charts.Scatter, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Width",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Height",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// diagramToEcharts draws stations, centroids and every edge of the diagram.
// Border edges get their own series so they can be toggled in the legend.
func diagramToEcharts(diagram *voronoi.Diagram) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, "Voronoi diagram ("+diagram.Policy.String()+")")

	stations := make([]opts.ScatterData, 0, len(diagram.Sites))
	centroids := make([]opts.ScatterData, 0, len(diagram.Sites))
	for _, s := range diagram.Sites {
		stations = append(stations, opts.ScatterData{
			Value: []float64{s.Point.X, s.Point.Y},
		})
		if s.DuplicateOf >= 0 {
			continue
		}
		centroids = append(centroids, opts.ScatterData{
			Value:      []float64{s.Centroid.X, s.Centroid.Y},
			SymbolSize: 6,
		})
	}

	scatter.AddSeries("Stations", stations).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)
	scatter.AddSeries("Centroids", centroids).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "orange",
			}),
		)

	for _, edge := range diagram.Edges {
		va, vb := diagram.Segment(edge)

		name, color := "Edges", "#5470c6"
		if edge.Border() {
			name, color = "Border", "#91cc75"
		}

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)
		line.AddSeries(name, []opts.LineData{
			{Value: []float64{va.X, va.Y}},
			{Value: []float64{vb.X, vb.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 2,
				Color: color,
			}),
		)

		scatter.Overlap(line)
	}

	return scatter
}
