package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"flavor-gradient/internal/palette"
)

func newPaletteCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "palette [prompts...]",
		Short: "Show the colors the prompts resolve to",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, name := range palette.Names() {
					hex, _ := palette.TableHex(name)
					fmt.Fprintf(out, "%-16s %s\n", name, hex)
				}
				return nil
			}
			prompts := palette.ParsePrompts(strings.Join(args, ","))
			return palette.WriteSwatches(out, palette.Swatches(prompts))
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List the curated flavor table")
	return cmd
}
