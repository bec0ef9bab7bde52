package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/matjam/shadercache"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewGenManCmd writes one section 1 page per command of root into a
// directory, creating it if needed.
func NewGenManCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:    "genman <dir>",
		Short:  "Write shadercache man pages into a directory",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := filepath.Clean(args[0])
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("error creating man page directory: %w", err)
			}

			header := &doc.GenManHeader{
				Title:   strings.ToUpper(root.Name()),
				Section: "1",
				Source:  "shadercache " + strings.TrimSpace(shadercache.Version),
				Manual:  "shadercache manual",
			}
			if err := doc.GenManTree(root, header, dir); err != nil {
				return fmt.Errorf("error generating man pages: %w", err)
			}

			log.Infof("Man pages written to %s", dir)
			return nil
		},
	}
}
