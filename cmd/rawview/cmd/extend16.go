package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"rawview/pkg/rawview"
)

// NewExtend16Cmd dumps the samples of a raw frame widened to 16 bits.
func NewExtend16Cmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extend16 <frame.raw>",
		Short: "dump the frame's samples widened to 16 bits",
		Long:  "Widens every sample to 16 bits without scaling or demosaicing and writes a little-endian <name>_ext16.raw dump.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			p, err := paramsFromFlags(cmd)
			if err != nil {
				return err
			}
			raw, err := rawview.ReadRaw(in, p)
			if err != nil {
				return errors.Wrapf(err, "reading %s", in)
			}
			base, _ := cmd.Flags().GetString("out")
			if base == "" {
				base = in
			}
			out, err := rawview.ExtendTo16File(base, raw, p)
			if err != nil {
				return errors.Wrap(err, "extending to 16 bits")
			}
			slog.InfoContext(cmd.Context(), "extended", "in", in, "out", out)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	addFrameFlags(cmd)
	cmd.Flags().StringP("out", "o", "", "base name of the dump; _ext16.raw is appended")
	return cmd
}
