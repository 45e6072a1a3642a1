package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"flavor-gradient/internal/logger"
	"flavor-gradient/internal/preset"
	"flavor-gradient/internal/render"
)

func newRenderCmd(root *rootFlags) *cobra.Command {
	flags := &effectFlags{}

	cmd := &cobra.Command{
		Use:   "render [prompts...]",
		Short: "Render a flavor gradient to a PNG file",
		Long: "Render resolves each prompt to a color, paints a gradient with the\n" +
			"configured smear and fractal overlay, and writes a square PNG.\n" +
			"Prompts may also be given as one comma separated argument.",
		Example: "  flavorgrad render strawberry matcha --type smear -o berry.png\n" +
			"  flavorgrad render --preset dessert.yaml --size 2048",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, root)
			if err != nil {
				return err
			}
			p, err := flags.resolve(cmd, args)
			if err != nil {
				return err
			}
			for _, note := range p.Adjustments() {
				log.Warn("clamped " + note)
			}

			path, desc, err := renderToFile(cmd.Context(), p, p.Output, log)
			if err != nil {
				return newCommandError("render", "writing "+path, err, "Check that the output directory exists and is writable.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			fmt.Fprintln(cmd.OutOrStdout(), desc.CSS())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// renderToFile renders p at its export size and saves it. An empty output
// falls back to a timestamped name in the working directory.
func renderToFile(ctx context.Context, p preset.Preset, output string, log *logger.Logger) (string, render.Descriptor, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if output == "" {
		output = render.DefaultFilename(time.Now())
	}

	colors := p.Colors()
	params := p.Params()
	size := p.Dimension()
	desc := render.Describe(colors, params.Angle)

	log = log.WithFields(map[string]any{
		"output": output,
		"size":   size,
		"type":   string(params.Type),
		"prompt": len(p.PromptList()),
	})
	log.Debug("rendering")

	began := time.Now()
	img, err := render.Render(ctx, params, colors, size, size)
	if err != nil {
		return output, desc, err
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return output, desc, fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := render.SavePNG(output, img); err != nil {
		return output, desc, err
	}

	log.WithFields(map[string]any{
		"css":     desc.CSS(),
		"elapsed": time.Since(began).String(),
	}).Info("gradient saved")
	return output, desc, nil
}
