/*
Copyright © 2026 Nathan Ollerenshaw <chrome@stupendous.net>
*/
package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/matjam/shadercache"
	"github.com/matjam/shadercache/internal/cli/cmd"
	"github.com/matjam/shadercache/internal/cli/cmd/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shadercache",
	Short: "A daemon that compiles and caches GL shader programs",
	Long: `shadercache keeps compiled GLSL programs keyed by their texture variant
and debug flags, compiling each combination once on a dedicated GL thread
and serving later requests from memory.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("debug") {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if v, err := cmd.Flags().GetBool("show-config"); err == nil && v {
			log.Infof("Using config file: %v", viper.ConfigFileUsed())
			log.Infof("All settings:")
			utils.PrintJSONColored(viper.AllSettings())
			return
		}

		if v, err := cmd.Flags().GetBool("installconfig"); err == nil && v {
			path, err := utils.InstallDefaultConfig()
			if err != nil {
				log.Fatalf("Error installing config: %v", err)
			}
			log.Infof("Installed default config file at %v", path)
			return
		}

		if v, err := cmd.Flags().GetBool("version"); err == nil && v {
			printVersion()
			return
		}

		_ = cmd.Help()
	},
}

func printVersion() {
	babyBlue := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
	log.Infof("%v version %v",
		babyBlue.Render("shadercache"),
		green.Render(strings.Trim(shadercache.Version, "\n\r ")))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	RegisterFlags(rootCmd)

	rootCmd.AddCommand(
		cmd.NewStartCmd(),
		cmd.NewStopCmd(),
		cmd.NewStatusCmd(),
		cmd.NewCompileCmd(),
		cmd.NewProgramsCmd(),
		cmd.NewReportCmd(),
		cmd.NewClearCmd(),
		cmd.NewVariantsCmd(),
		cmd.NewSourceCmd(),
		cmd.NewGenManCmd(rootCmd),
	)
}
