package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/provide-io/bitmaphelper/pkg/resources"
)

func newEmbedCmd() *cobra.Command {
	var (
		exePath string
		files   []string
	)

	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Embed image files as RCDATA resources of a Windows executable",
		Long: `Embed image files as RCDATA resources of a Windows executable.

Each file is stored under its base name, so icon.png becomes rcdata/icon
when the executable is later used as a resource source.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := make(map[string][]byte, len(files))
			for _, file := range files {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", file, err)
				}
				entries[filepath.Base(file)] = data
			}
			return resources.EmbedInEXE(exePath, entries, newLogger())
		},
	}

	cmd.Flags().StringVar(&exePath, "exe", "", "Path to the PE executable (required)")
	cmd.Flags().StringSliceVarP(&files, "file", "f", nil, "Image file to embed (repeatable)")
	if err := cmd.MarkFlagRequired("exe"); err != nil {
		panic(err)
	}
	if err := cmd.MarkFlagRequired("file"); err != nil {
		panic(err)
	}
	return cmd
}
