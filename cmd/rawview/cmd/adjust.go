package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"rawview/pkg/rawview"
)

// NewAdjustCmd applies brightness and contrast to a standard image.
func NewAdjustCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adjust <image>",
		Short: "apply brightness and contrast to an image",
		Long:  "Loads a standard image (PNG, JPEG, TIFF, BMP), adds --brightness to every sample, then scales it by --contrast. Results saturate to [0, 255].",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			f := cmd.Flags()
			channels, _ := f.GetInt("channels")
			beta, _ := f.GetInt("brightness")
			alpha, _ := f.GetFloat64("contrast")

			buf, err := loadImage(in, channels)
			if err != nil {
				return errors.Wrapf(&rawview.IOError{Op: "load", Path: in, Err: err}, "adjusting %s", in)
			}
			if _, err := rawview.AdjustBrightness(buf.Pix8, buf.Pix8, buf.Width, buf.Height, buf.Channels, beta); err != nil {
				return errors.Wrap(err, "brightness")
			}
			if _, err := rawview.AdjustContrast(buf.Pix8, buf.Pix8, buf.Width, buf.Height, buf.Channels, alpha); err != nil {
				return errors.Wrap(err, "contrast")
			}

			out, err := writeBuffer(outputPath(cmd, in, "_adjusted.png"), buf, previewFromFlags(cmd))
			if err != nil {
				return err
			}
			slog.InfoContext(cmd.Context(), "adjusted", "in", in, "out", out, "brightness", beta, "contrast", alpha)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	addOutputFlags(cmd)
	pf := cmd.Flags()
	pf.IntP("channels", "c", 3, "load as 1 (gray) or 3 (RGB) channels")
	pf.Int("brightness", 0, "offset added to every sample")
	pf.Float64("contrast", 1, "factor every sample is multiplied by")
	return cmd
}
