package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/matjam/shadercache/internal/cli/cmd/utils"
	"github.com/spf13/cobra"
)

func NewProgramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "programs",
		Short: "List the programs cached by the daemon",
		Run: func(cmd *cobra.Command, args []string) {
			client := utils.NewClient()
			defer client.Close()

			records, err := client.Programs()
			if err != nil {
				log.Fatalf("Failed to list programs: %v", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "    id: (used secs ago) description +/-flags")
			for _, r := range records {
				fmt.Fprintf(out, "%6d: (%.1f) %s\n", r.ID, r.AgeSeconds, r.Description)
			}
			fmt.Fprintf(out, "Total: %d programs.\n", len(records))
		},
	}
}
