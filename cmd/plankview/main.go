// SPDX-License-Identifier: Unlicense OR MIT

// Command plankview inspects layout documents: it computes the
// frames a document resolves to and renders them as an image or a
// styled tree dump.
package main

import (
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"plankui.org/frameviz"
	"plankui.org/internal/layoutdoc"
	"plankui.org/layout"
	"plankui.org/unit"
)

func main() {
	if err := newRoot().Execute(); err != nil {
		log.Error("plankview failed", "err", err)
		os.Exit(1)
	}
}

func newRoot() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "plankview",
		Short:         "Inspect the frames a layout document resolves to",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newRender(), newTree())
	return root
}

func newRender() *cobra.Command {
	var out string
	var scale float64
	var labels bool
	cmd := &cobra.Command{
		Use:   "render <doc.toml>",
		Short: "Render the document's resolved frames to a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, metric, err := resolve(args[0])
			if err != nil {
				return err
			}
			if scale > 0 {
				metric = unit.Metric{Scale: scale}
			}
			img := frameviz.Render(node, frameviz.Options{
				Metric: metric,
				Labels: labels,
			})

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()
			if err := png.Encode(f, img); err != nil {
				return fmt.Errorf("encode %s: %w", out, err)
			}
			log.Info("rendered", "doc", args[0], "out", out, "size", img.Bounds().Max)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "layout.png", "output PNG path")
	cmd.Flags().Float64Var(&scale, "scale", 0, "device pixel scale (overrides the document)")
	cmd.Flags().BoolVar(&labels, "labels", true, "label boxes with element names")
	return cmd
}

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	frameStyle = lipgloss.NewStyle().Faint(true)
	hideStyle  = lipgloss.NewStyle().Strikethrough(true).Faint(true)
)

func newTree() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <doc.toml>",
		Short: "Print the document's resolved frame tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, _, err := resolve(args[0])
			if err != nil {
				return err
			}
			for _, l := range frameviz.Lines(node) {
				name := nameStyle.Render(l.Name)
				if l.Hidden {
					name = hideStyle.Render(l.Name)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s %s\n",
					strings.Repeat("  ", l.Depth),
					name,
					frameStyle.Render(l.Frame.String()),
				)
			}
			return nil
		},
	}
}

// resolve loads a document and lays its element tree out in the
// document's canvas.
func resolve(path string) (layout.Node, unit.Metric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return layout.Node{}, unit.Metric{}, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := layoutdoc.Parse(data)
	if err != nil {
		return layout.Node{}, unit.Metric{}, err
	}
	root, err := doc.Build()
	if err != nil {
		return layout.Node{}, unit.Metric{}, err
	}
	log.Debug("laying out", "doc", path, "canvas", doc.Frame())
	return layout.LayoutTree(root, doc.Frame()), doc.Metric(), nil
}
