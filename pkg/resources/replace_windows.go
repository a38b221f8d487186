//go:build windows

package resources

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sys/windows"
)

const (
	replaceAttempts = 3
	replaceDelay    = 50 * time.Millisecond
)

// atomicReplace moves sourcePath over destPath with MoveFileEx, retrying
// with backoff while another process still holds the destination open.
func atomicReplace(sourcePath, destPath string, logger hclog.Logger) error {
	from, err := windows.UTF16PtrFromString(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to convert source path to UTF-16: %w", err)
	}
	to, err := windows.UTF16PtrFromString(destPath)
	if err != nil {
		return fmt.Errorf("failed to convert dest path to UTF-16: %w", err)
	}

	flags := uint32(windows.MOVEFILE_REPLACE_EXISTING | windows.MOVEFILE_WRITE_THROUGH)
	delay := replaceDelay
	for attempt := 1; ; attempt++ {
		err = windows.MoveFileEx(from, to, flags)
		if err == nil {
			return nil
		}
		if attempt == replaceAttempts {
			return fmt.Errorf("failed after %d attempts (file locked): %w", replaceAttempts, err)
		}
		logger.Debug("Retrying file replacement",
			"attempt", attempt,
			"next_delay_ms", delay.Milliseconds(),
			"error", err)
		time.Sleep(delay)
		delay *= 2
	}
}
