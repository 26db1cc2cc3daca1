package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/graphview/internal/config"
	"github.com/jask/graphview/internal/surface"
	"github.com/jask/graphview/internal/tui"
)

type options struct {
	configPath string
	format     string
	outputPath string
	force      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "graphview",
		Short:         "Draw a line chart with a bar band beneath it",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Chart document (default: $GRAPHVIEW_CONFIG or "+config.DefaultPath()+")")

	render := &cobra.Command{
		Use:   "render",
		Short: "Render the chart as terminal text, PNG, SVG or a draw-call list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(opts, cmd.OutOrStdout())
		},
	}
	render.Flags().StringVarP(&opts.format, "format", "f", "term", "Output format: term, png, svg, ops")
	render.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: stdout)")

	view := &cobra.Command{
		Use:   "view",
		Short: "Show the chart full-screen, repainting on resize",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runView(opts)
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample chart document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if len(args) == 1 {
				path = args[0]
			}
			return runInit(path, opts.force, cmd.OutOrStdout())
		},
	}
	initCmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing file")

	root.AddCommand(render, view, initCmd)
	return root
}

func runRender(opts *options, stdout io.Writer) error {
	doc, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	chart, geom, err := doc.Build()
	if err != nil {
		return fmt.Errorf("build chart: %w", err)
	}

	out := stdout
	if opts.outputPath != "" {
		f, err := os.Create(opts.outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	width, height := int(geom.Width), int(geom.Height)
	switch format := strings.ToLower(opts.format); format {
	case "term":
		t := surface.NewTerminal(width, height)
		chart.Paint(t, geom)
		_, err = fmt.Fprintln(out, t.View())
	case "ops":
		rec := surface.NewRecorder()
		chart.Paint(rec, geom)
		_, err = io.WriteString(out, rec.String())
	case "png", "svg":
		img, ierr := surface.NewImage(surface.Format(format), width, height)
		if ierr != nil {
			return ierr
		}
		chart.Paint(img, geom)
		err = img.Save(out)
	default:
		return fmt.Errorf("invalid format: %s (must be term, png, svg or ops)", opts.format)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", opts.format, err)
	}
	if opts.outputPath != "" {
		log.Printf("wrote %s", opts.outputPath)
	}
	return nil
}

func runView(opts *options) error {
	doc, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	chart, geom, err := doc.Build()
	if err != nil {
		return fmt.Errorf("build chart: %w", err)
	}
	title := "graphview"
	if opts.configPath != "" {
		title = filepath.Base(opts.configPath)
	}
	p := tea.NewProgram(tui.New(chart, title, geom), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

func runInit(path string, force bool, stdout io.Writer) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.Sample()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(stdout, "wrote sample chart to %s\n", path)
	return err
}
