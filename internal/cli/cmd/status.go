package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/shadercache/internal/cli/cmd/utils"
	"github.com/spf13/cobra"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get shadercache status",
		Long:  `Returns the current status of the shadercache daemon, including the GL renderer and the number of cached programs.`,
		Run: func(cmd *cobra.Command, args []string) {
			client := utils.NewClient()
			defer client.Close()

			status, err := client.Status()
			if err != nil {
				log.Errorf("Error sending command: %v", err)
				return
			}

			utils.PrintJSONColored(status)
		},
	}
}
