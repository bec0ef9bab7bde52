package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/matjam/shadercache/internal/cli/cmd/utils"
	"github.com/spf13/cobra"
)

func NewReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the shader bodies and the cached program table",
		Run: func(cmd *cobra.Command, args []string) {
			client := utils.NewClient()
			defer client.Close()

			report, err := client.Report()
			if err != nil {
				log.Fatalf("Failed to fetch report: %v", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), report)
		},
	}
}
