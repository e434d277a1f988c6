package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"rawview/pkg/rawview"
)

// NewDecodeCmd decodes a raw frame to an 8-bit image.
func NewDecodeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <frame.raw>",
		Short: "decode a raw frame to an 8-bit image",
		Long:  "Reduces every sample to 8 bits with the selected window mode, applies the optional channel gain and demosaics the frame.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args[0], rawview.DecodeFile)
		},
	}
	addFrameFlags(cmd)
	addOutputFlags(cmd)
	return cmd
}

// NewStretch16Cmd decodes a raw frame to a 16-bit image.
func NewStretch16Cmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stretch16 <frame.raw>",
		Short: "decode a raw frame to a 16-bit image",
		Long:  "Scales every sample linearly to the full 16-bit range and demosaics the frame. --mode and the channel gain are ignored.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args[0], rawview.DecodeStretch16File)
		},
	}
	addFrameFlags(cmd)
	addOutputFlags(cmd)
	return cmd
}

type decodeFunc func(path string, p rawview.Params) (*rawview.ImageBuffer, error)

func runDecode(cmd *cobra.Command, in string, decode decodeFunc) error {
	ctx := cmd.Context()
	p, err := paramsFromFlags(cmd)
	if err != nil {
		return err
	}
	start := time.Now()
	buf, err := decode(in, p)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", in)
	}
	out, err := writeBuffer(outputPath(cmd, in, ".tiff"), buf, previewFromFlags(cmd))
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "decoded", "in", in, "out", out, "image", buf.String(), "elapsed", time.Since(start))
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
