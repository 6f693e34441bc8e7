package tools

import (
	"github.com/mark3labs/mcp-go/server"

	"plotchart/render"
)

type BarChartArgs struct {
	Labels   []string  `json:"labels" jsonschema:"description=Category labels for the x-axis such as months or product names,minItems=1"`
	Values   []float64 `json:"values" jsonschema:"description=One numeric value per label for the y-axis,minItems=1"`
	Title    string    `json:"title,omitempty" jsonschema:"description=Chart title. Defaults to 'My Chart'"`
	Filename string    `json:"filename,omitempty" jsonschema:"description=File to save the chart to (e.g. 'my_chart.png'). The extension picks the format (png/svg/jpg/pdf). Defaults to 'plot.png'"`
}

func (a BarChartArgs) request() render.ChartRequest {
	return render.ChartRequest{Labels: a.Labels, Values: a.Values, Title: a.Title, Filename: a.Filename}
}

func registerBarChartTool(srv *server.MCPServer, r *render.Renderer) {
	registerChartTool[BarChartArgs](srv, r, chartToolConfig{
		name: "plot_bar_chart",
		description: `Generates a simple bar chart and saves it to an image file.
					  Draws one vertical bar per label/value pair, in the order given.
					  Returns a message naming the saved file, or a message starting with "Error:".`,
		kind: render.Bar,
	})
}
