package main

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"flavor-gradient/internal/preset"
	"flavor-gradient/internal/watch"
)

type watchOptions struct {
	presetPath string
	output     string
	debounce   time.Duration
}

func newWatchCmd(root *rootFlags) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render a preset every time it is saved",
		Long: "Watch renders the preset once, then again whenever the file changes.\n" +
			"A save that lands while a render is running cancels that render.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, root)
			if err != nil {
				return err
			}

			output := opts.output
			w, err := watch.New(opts.presetPath, func(ctx context.Context, p preset.Preset) error {
				target := output
				if target == "" {
					target = p.Output
				}
				if target == "" {
					target = defaultWatchOutput(opts.presetPath)
				}
				_, _, err := renderToFile(ctx, p, target, log)
				return err
			}, watch.Options{Debounce: opts.debounce, Logger: log})
			if err != nil {
				return newCommandError("watch", "preparing "+opts.presetPath, err, "Pass a .yaml, .yml or .toml preset.")
			}

			log.WithFields(map[string]any{"preset": w.Path()}).Info("watching for changes")
			return w.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&opts.presetPath, "preset", "p", "", "Preset file to watch")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output PNG file (default: preset name with .png)")
	cmd.Flags().DurationVar(&opts.debounce, "debounce", watch.DefaultDebounce, "Quiet period before re-rendering")
	cmd.MarkFlagRequired("preset") //nolint:errcheck

	return cmd
}

// defaultWatchOutput keeps re-renders overwriting one file next to the preset.
func defaultWatchOutput(presetPath string) string {
	return strings.TrimSuffix(presetPath, filepath.Ext(presetPath)) + ".png"
}
