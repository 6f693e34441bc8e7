package tools

import (
	"github.com/mark3labs/mcp-go/server"

	"plotchart/render"
)

type PieChartArgs struct {
	Labels   []string  `json:"labels" jsonschema:"description=Labels for the pie slices,minItems=1"`
	Sizes    []float64 `json:"sizes" jsonschema:"description=Size of each slice; must not be negative,minItems=1"`
	Title    string    `json:"title,omitempty" jsonschema:"description=Chart title. Defaults to 'My Pie Chart'"`
	Filename string    `json:"filename,omitempty" jsonschema:"description=File to save the chart to (e.g. 'my_pie_chart.png'). Defaults to 'pie_plot.png'"`
}

func (a PieChartArgs) request() render.ChartRequest {
	return render.ChartRequest{Labels: a.Labels, Values: a.Sizes, Title: a.Title, Filename: a.Filename}
}

func registerPieChartTool(srv *server.MCPServer, r *render.Renderer) {
	registerChartTool[PieChartArgs](srv, r, chartToolConfig{
		name: "plot_pie_chart",
		description: `Generates a simple pie chart and saves it to an image file.
		              Each slice is sized proportionally and labelled with its share of the total.
		              Use this for part-to-whole relationships.`,
		kind: render.Pie,
	})
}
