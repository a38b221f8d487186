//go:build !windows

package resources

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
)

// atomicReplace moves sourcePath over destPath; rename is atomic on Unix.
func atomicReplace(sourcePath, destPath string, logger hclog.Logger) error {
	logger.Debug("Replacing file", "source", sourcePath, "dest", destPath)

	if err := os.Rename(sourcePath, destPath); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}
