package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/provide-io/bitmaphelper/pkg/bitmap"
	"github.com/provide-io/bitmaphelper/pkg/debugflags"
)

func newCreateCmd() *cobra.Command {
	var (
		width, height int
		format        string
		out           string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a blank bitmap in the given pixel format",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			bm, err := bitmap.CreateBitmap(width, height, f)
			if err != nil {
				return err
			}

			fmt.Printf("%dx%d %s (format %d, stride %d, %d bytes)\n",
				bm.Width, bm.Height, bm.Config, bm.Format(), bm.Stride, bm.ByteCount())
			if out != "" {
				return writeBitmap(out, bm)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 1, "Width in pixels")
	cmd.Flags().IntVar(&height, "height", 1, "Height in pixels")
	cmd.Flags().StringVar(&format, "format", strconv.Itoa(int(bitmap.ARGB8888)), "Format constant (0-4) or name such as RGB_565")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Optional output file")
	return cmd
}

// parseFormat accepts the integer constant or a config name. Unknown
// integers are passed through and fall back like any other caller's would.
func parseFormat(s string) (bitmap.Format, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return bitmap.Format(n), nil
	}
	cfg, err := bitmap.ParseConfig(s)
	if err != nil {
		return bitmap.NoConfig, err
	}
	return bitmap.FormatForConfig(cfg), nil
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "Print the pixel format table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printFormats(os.Stdout)
		},
	}
}

func printFormats(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FORMAT\tCONFIG\tBYTES/PIXEL\tALPHA")
	fmt.Fprintf(tw, "%d\t%s\t-\t-\n", bitmap.NoConfig, bitmap.NoConfig)
	for _, cfg := range bitmap.Configs() {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%t\n", bitmap.FormatForConfig(cfg), cfg, cfg.BytesPerPixel(), cfg.HasAlpha())
	}
	return tw.Flush()
}

type flagRow struct {
	Name    string `json:"name" yaml:"name"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

func newFlagsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "flags",
		Short: "Print the per-subsystem debug flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printFlags(os.Stdout, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")
	return cmd
}

func printFlags(w io.Writer, output string) error {
	names := debugflags.Names()
	rows := make([]flagRow, len(names))
	for i, name := range names {
		rows[i] = flagRow{Name: name, Enabled: debugflags.Enabled(name)}
	}

	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, row := range rows {
			fmt.Fprintf(tw, "%s\t%t\n", row.Name, row.Enabled)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}
