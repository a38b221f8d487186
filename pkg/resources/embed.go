package resources

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/tc-hib/winres"

	"github.com/provide-io/bitmaphelper/pkg/logging"
)

// ResourceLang is the language ID embedded resources are stored under (en-US).
const ResourceLang = 0x0409

// EmbedInEXE stores each entry as an RT_RCDATA resource of the executable at
// exePath, keeping the resources it already has. Keys are resource names
// such as "ICON.PNG"; they are upper-cased the way resource compilers do.
// The file is rewritten through a temporary file and replaced atomically.
func EmbedInEXE(exePath string, entries map[string][]byte, logger hclog.Logger) error {
	logger = logging.OrNull(logger)
	logger.Info("Embedding resources into EXE", "exe", exePath, "count", len(entries))

	in, err := os.Open(exePath)
	if err != nil {
		return fmt.Errorf("failed to open EXE for reading: %w", err)
	}
	rs, err := winres.LoadFromEXE(in)
	if err != nil {
		logger.Debug("Creating new resource set (no existing resources)")
		rs = &winres.ResourceSet{}
	}
	if err := in.Close(); err != nil {
		return fmt.Errorf("failed to close input file: %w", err)
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		resName := strings.ToUpper(name)
		logger.Debug("Setting RCDATA resource", "name", resName, "size", len(entries[name]))
		if err := rs.Set(winres.RT_RCDATA, winres.Name(resName), ResourceLang, entries[name]); err != nil {
			return fmt.Errorf("failed to set resource %s: %w", resName, err)
		}
	}

	// No defers below: both files must be closed before the rename on Windows.
	src, err := os.Open(exePath)
	if err != nil {
		return fmt.Errorf("failed to reopen EXE: %w", err)
	}
	tmpPath := exePath + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		src.Close()
		return fmt.Errorf("failed to create temporary output file: %w", err)
	}

	if err := rs.WriteToEXE(out, src); err != nil {
		out.Close()
		src.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write resources to EXE: %w", err)
	}
	if err := out.Close(); err != nil {
		src.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err := src.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close input file: %w", err)
	}

	if err := atomicReplace(tmpPath, exePath, logger); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace EXE atomically: %w", err)
	}

	logger.Info("✅ Embedded resources", "exe", exePath, "count", len(entries))
	return nil
}
