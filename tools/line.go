package tools

import (
	"github.com/mark3labs/mcp-go/server"

	"plotchart/render"
)

type LineChartArgs struct {
	Labels   []string  `json:"labels" jsonschema:"description=Labels for the x-axis (e.g. time periods),minItems=1"`
	Values   []float64 `json:"values" jsonschema:"description=One numeric y-axis value per label,minItems=1"`
	Title    string    `json:"title,omitempty" jsonschema:"description=Chart title. Defaults to 'My Line Chart'"`
	Filename string    `json:"filename,omitempty" jsonschema:"description=File to save the chart to (e.g. 'my_line_chart.png'). Defaults to 'line_plot.png'"`
}

func (a LineChartArgs) request() render.ChartRequest {
	return render.ChartRequest{Labels: a.Labels, Values: a.Values, Title: a.Title, Filename: a.Filename}
}

func registerLineChartTool(srv *server.MCPServer, r *render.Renderer) {
	registerChartTool[LineChartArgs](srv, r, chartToolConfig{
		name: "plot_line_chart",
		description: `Generates a simple line chart and saves it to an image file.
		              Plots the values as a single connected line with point markers.
		              Use this for trends over ordered labels such as time periods.`,
		kind: render.Line,
	})
}
