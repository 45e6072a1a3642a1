package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"flavor-gradient/internal/palette"
	"flavor-gradient/internal/render"
)

func newCSSCmd() *cobra.Command {
	var angle float64

	cmd := &cobra.Command{
		Use:   "css [prompts...]",
		Short: "Print the CSS linear-gradient for the prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			colors := palette.Colors(palette.ParsePrompts(strings.Join(args, ",")))
			fmt.Fprintln(cmd.OutOrStdout(), render.Describe(colors, angle).CSS())
			return nil
		},
	}

	cmd.Flags().Float64Var(&angle, "angle", render.DefaultParams().Angle, "Gradient angle in degrees")
	return cmd
}
