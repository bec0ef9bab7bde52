package cmd

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/matjam/shadercache/internal/cli/cmd/utils"
	"github.com/matjam/shadercache/internal/ipc"
	"github.com/spf13/cobra"
)

func NewCompileCmd() *cobra.Command {
	var req ipc.CompileRequest

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Request the program for a variant, compiling it if it is not cached",
		Example: `  shadercache compile --variant rgba
  shadercache compile --variant y_uv --green`,
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := req.Requirements(); err != nil {
				log.Fatal(err)
			}

			client := utils.NewClient()
			defer client.Close()

			program, err := client.Compile(req)
			var apiErr *ipc.APIError
			if errors.As(err, &apiErr) && apiErr.Stage != "" {
				log.Error("Program build failed", "stage", apiErr.Stage, "error", apiErr.Message)
				log.Error(apiErr.Log)
				return
			}
			if err != nil {
				log.Fatalf("Failed to send 'compile' command: %v", err)
			}

			if program.Cached {
				log.Infof("Program %d served from cache", program.ID)
			} else {
				log.Infof("Program %d compiled", program.ID)
			}
			utils.PrintJSONColored(program)
		},
	}

	cmd.Flags().StringVar(&req.Variant, "variant", "", "texture variant (see 'shadercache variants')")
	cmd.Flags().BoolVar(&req.GreenTint, "green", false, "enable the green tint debug flag")
	_ = cmd.MarkFlagRequired("variant")

	return cmd
}
