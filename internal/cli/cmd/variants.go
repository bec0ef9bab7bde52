package cmd

import (
	"fmt"

	"github.com/matjam/shadercache/internal/shader"
	"github.com/spf13/cobra"
)

func NewVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the shader variants and their program descriptions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, v := range shader.Variants() {
				fmt.Fprintf(out, "%-9s %s | %s\n", v.ShortName(),
					shader.Describe(shader.Requirements{Variant: v}),
					shader.Describe(shader.Requirements{Variant: v, GreenTint: true}))
			}
		},
	}
}
