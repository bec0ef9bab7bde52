package cmd

import (
	"fmt"

	"github.com/matjam/shadercache/internal/shader"
	"github.com/spf13/cobra"
)

func NewSourceCmd() *cobra.Command {
	var (
		variant string
		green   bool
		vertex  bool
	)

	cmd := &cobra.Command{
		Use:   "source",
		Short: "Print the numbered GLSL source compiled for a variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if vertex {
				fmt.Fprintln(cmd.OutOrStdout(), shader.NumberLines(shader.VertexSource()))
				return nil
			}

			v, err := shader.ParseVariant(variant)
			if err != nil {
				return err
			}
			sources := shader.FragmentSources(shader.Requirements{Variant: v, GreenTint: green})
			fmt.Fprintln(cmd.OutOrStdout(), shader.NumberLines(sources...))
			return nil
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "rgba", "texture variant")
	cmd.Flags().BoolVar(&green, "green", false, "enable the green tint debug flag")
	cmd.Flags().BoolVar(&vertex, "vertex", false, "print the shared vertex shader instead")

	return cmd
}
