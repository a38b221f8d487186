package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/provide-io/bitmaphelper/pkg/bitmap"
	"github.com/provide-io/bitmaphelper/pkg/preview"
	"github.com/provide-io/bitmaphelper/pkg/resources"
)

func newDecodeCmd() *cobra.Command {
	var (
		name          string
		width, height int
		out           string
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a resource sampled down to the requested size",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			res, err := openResources(logger)
			if err != nil {
				return err
			}
			filter, err := bitmap.ParseFilter(viper.GetString("filter"))
			if err != nil {
				return err
			}

			bm, err := bitmap.DecodeDrawableResourceWithOptions(res, name, width, height, filter, logger)
			if err != nil {
				return err
			}
			if bm == nil {
				return fmt.Errorf("%w: %s", errNotFound, name)
			}

			if out == "" {
				_, _, entry, _ := resources.ParseName(name)
				out = entry + ".png"
			}
			if err := writeBitmap(out, bm); err != nil {
				return err
			}

			logger.Info("✅ Wrote bitmap", "path", out, "width", bm.Width, "height", bm.Height)
			fmt.Printf("%s: %dx%d %s -> %s\n", name, bm.Width, bm.Height, bm.Config, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Resource name, [package:]type/entry (required)")
	cmd.Flags().IntVar(&width, "width", 0, "Requested width (0 leaves the axis unconstrained)")
	cmd.Flags().IntVar(&height, "height", 0, "Requested height (0 leaves the axis unconstrained)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (.png or .bmp, optionally .gz/.bz2)")
	cmd.Flags().String("filter", "", fmt.Sprintf("Resampling filter %v", bitmap.Filters()))
	if err := viper.BindPFlag("filter", cmd.Flags().Lookup("filter")); err != nil {
		panic(err)
	}
	if err := cmd.MarkFlagRequired("name"); err != nil {
		panic(err)
	}
	return cmd
}

func newProbeCmd() *cobra.Command {
	var (
		name          string
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Report a resource's size without decoding its pixels",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			res, err := openResources(logger)
			if err != nil {
				return err
			}

			id := res.Identifier(name)
			if id == resources.NotFound {
				return fmt.Errorf("%w: %s", errNotFound, name)
			}
			opts := &bitmap.Options{JustDecodeBounds: true}
			if _, err := bitmap.DecodeResource(res, id, opts); err != nil {
				return err
			}

			fmt.Printf("name:   %s\n", res.Name(id))
			fmt.Printf("id:     %s\n", resources.FormatID(id))
			fmt.Printf("size:   %dx%d\n", opts.OutWidth, opts.OutHeight)
			fmt.Printf("mime:   %s\n", opts.OutMimeType)
			if width > 0 || height > 0 {
				sample := bitmap.CalculateInSampleSize(opts.OutWidth, opts.OutHeight, width, height)
				w, h := bitmap.SampledSize(opts.OutWidth, opts.OutHeight, sample)
				fmt.Printf("sample: %d (%dx%d)\n", sample, w, h)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Resource name, [package:]type/entry (required)")
	cmd.Flags().IntVar(&width, "width", 0, "Requested width for the sample size report")
	cmd.Flags().IntVar(&height, "height", 0, "Requested height for the sample size report")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		panic(err)
	}
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the resources a source provides",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := openResources(newLogger())
			if err != nil {
				return err
			}
			lister, ok := res.(resources.Lister)
			if !ok {
				return fmt.Errorf("resource source %T cannot be listed", res)
			}
			for _, name := range lister.Entries() {
				fmt.Printf("%s  %s\n", resources.FormatID(res.Identifier(name)), name)
			}
			return nil
		},
	}
}

func newPreviewCmd() *cobra.Command {
	var (
		name          string
		width, height int
		forceColor    bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw a decoded resource in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			res, err := openResources(logger)
			if err != nil {
				return err
			}

			bm, err := bitmap.DecodeDrawableResourceWithOptions(res, name, width, height, bitmap.FilterBiLinear, logger)
			if err != nil {
				return err
			}
			if bm == nil {
				return fmt.Errorf("%w: %s", errNotFound, name)
			}

			fd := os.Stdout.Fd()
			if forceColor {
				color.NoColor = false
			} else if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				logger.Warn("stdout is not a terminal, preview will be blank (use --force-color)")
			}
			return preview.Render(os.Stdout, bm)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Resource name, [package:]type/entry (required)")
	cmd.Flags().IntVar(&width, "width", 40, "Requested width in terminal blocks")
	cmd.Flags().IntVar(&height, "height", 20, "Requested height in terminal rows")
	cmd.Flags().BoolVar(&forceColor, "force-color", false, "Emit colors even when stdout is not a terminal")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		panic(err)
	}
	return cmd
}
