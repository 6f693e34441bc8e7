// Command plotchart serves bar, line and pie chart rendering tools to agents
// over MCP stdio or HTTP, and can render a single chart from the command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"plotchart/httpapi"
	"plotchart/render"
	"plotchart/tools"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := loadConfig()

	rootCmd := &cobra.Command{
		Use:   "plotchart",
		Short: "Render bar, line and pie charts for agents",
		Long: `plotchart exposes three chart tools (plot_bar_chart, plot_line_chart,
plot_pie_chart) over MCP. Without a subcommand it serves MCP on stdio.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStdio(cmd.Context(), cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "Directory for relative chart filenames (env PLOTCHART_OUTPUT_DIR)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env PLOTCHART_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json (env PLOTCHART_LOG_FORMAT)")

	stdioCmd := &cobra.Command{
		Use:   "stdio",
		Short: "Serve the chart tools over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStdio(cmd.Context(), cfg)
		},
	}

	httpCmd := &cobra.Command{
		Use:   "http",
		Short: "Serve the chart operations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHTTP(cmd.Context(), cfg)
		},
	}
	httpCmd.Flags().StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "Listen address (env PLOTCHART_HTTP_ADDR)")

	rootCmd.AddCommand(stdioCmd, httpCmd, newRenderCmd(&cfg))
	return rootCmd
}

func newRenderCmd(cfg *Config) *cobra.Command {
	var (
		labels   []string
		values   []float64
		title    string
		filename string
	)

	cmd := &cobra.Command{
		Use:       "render bar|line|pie",
		Short:     "Render one chart and print the result",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{render.Bar.Name, render.Line.Name, render.Pie.Name},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := render.KindByName(args[0])
			if !ok {
				return fmt.Errorf("invalid chart kind: %s (must be bar, line, or pie)", args[0])
			}
			logger, err := newLogger(*cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			r := render.New(render.Options{OutputDir: cfg.OutputDir, Sink: logger})
			res := r.Render(kind, render.ChartRequest{Labels: labels, Values: values, Title: title, Filename: filename})
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			if !res.OK() {
				return fmt.Errorf("%s chart failed: %s", kind, res.Failure)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&labels, "labels", nil, "Comma-separated labels")
	cmd.Flags().Float64SliceVar(&values, "values", nil, "Comma-separated values (slice sizes for pie)")
	cmd.Flags().StringVar(&title, "title", "", "Chart title (defaults per chart kind)")
	cmd.Flags().StringVarP(&filename, "output", "o", "", "Output file; extension picks png, svg, jpg or pdf (defaults per chart kind)")
	return cmd
}

func runStdio(ctx context.Context, cfg Config) error {
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	srv := tools.New(render.New(render.Options{OutputDir: cfg.OutputDir, Sink: logger}))
	logger.Info("serving chart tools on stdio", "server", tools.ServerName, "output_dir", cfg.OutputDir)

	stdio := server.NewStdioServer(srv)
	stdio.SetErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !isShutdown(err) {
		logger.Error("stdio server error", "error", err)
		return err
	}
	return nil
}

func runHTTP(ctx context.Context, cfg Config) error {
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	svc := httpapi.NewService(render.New(render.Options{OutputDir: cfg.OutputDir, Sink: logger}), logger)
	if err := svc.Run(ctx, cfg.HTTPAddr); err != nil {
		logger.Error("http server error", "error", err)
		return err
	}
	return nil
}

func isShutdown(err error) bool {
	return errors.Is(err, context.Canceled)
}
