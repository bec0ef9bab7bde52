package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/shadercache/internal/cli/cmd/utils"
	"github.com/spf13/cobra"
)

func NewClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every cached program",
		Run: func(cmd *cobra.Command, args []string) {
			client := utils.NewClient()
			defer client.Close()

			n, err := client.Clear()
			if err != nil {
				log.Fatalf("Failed to send 'clear' command: %v", err)
			}
			log.Infof("Destroyed %d programs", n)
		},
	}
}
