package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"rawview/pkg/rawview"
)

// NewInfoCmd prints the shape and per-channel statistics of a frame.
func NewInfoCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <frame.raw>",
		Short: "print frame shape and channel statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			p, err := paramsFromFlags(cmd)
			if err != nil {
				return err
			}
			want, _ := rawview.ExpectedLength(p.Width, p.Height, p.Channels, p.BitDepth, p.HighZero)
			raw, err := rawview.ReadRaw(in, p)
			if err != nil {
				return errors.Wrapf(err, "reading %s", in)
			}
			wide, err := rawview.ExtendTo16(raw, p)
			if err != nil {
				return errors.Wrapf(err, "unpacking %s", in)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "=== %s ===\n", in)
			fmt.Fprintf(w, "  Size:      %d x %d, %d channel(s)\n", p.Width, p.Height, p.Channels)
			fmt.Fprintf(w, "  Samples:   %d-bit, high-zero=%t, big-endian=%t\n", int(p.BitDepth), p.HighZero, p.BigEndian)
			fmt.Fprintf(w, "  Bytes:     %d\n", want)
			if p.Mosaic() {
				fmt.Fprintf(w, "  Layout:    %s (%s)\n", p.Code.Layout(), p.Code)
			}

			stats, err := wide.Statistics(rawview.StatAll)
			if err != nil {
				return errors.Wrap(err, "statistics")
			}
			if p.Mosaic() {
				planes, err := mosaicStatistics(wide, p.Code.Layout())
				if err != nil {
					return errors.Wrap(err, "site statistics")
				}
				for _, s := range []rawview.Site{rawview.SiteR, rawview.SiteG1, rawview.SiteG2, rawview.SiteB} {
					fmt.Fprintf(w, "  %-3s %v\n", s.String()+":", planes[s])
				}
				fmt.Fprintf(w, "  All: %v\n", stats[0])
				return nil
			}
			for i, name := range []string{"R", "G", "B"} {
				fmt.Fprintf(w, "  %-3s %v\n", name+":", stats[i])
			}
			return nil
		},
	}
	addFrameFlags(cmd)
	return cmd
}

// mosaicStatistics splits a single-channel 16-bit mosaic by site and
// computes statistics for each.
func mosaicStatistics(buf *rawview.ImageBuffer, layout rawview.MosaicLayout) (map[rawview.Site]rawview.ChannelStatistics, error) {
	planes, err := rawview.SplitChannels(buf.Pix16, buf.Width, buf.Height, layout)
	if err != nil {
		return nil, err
	}
	out := map[rawview.Site]rawview.ChannelStatistics{}
	for _, s := range []rawview.Site{rawview.SiteR, rawview.SiteG1, rawview.SiteG2, rawview.SiteB} {
		pb := &rawview.ImageBuffer{Width: planes.Width, Height: planes.Height, Channels: 1, Depth: 16, Pix16: planes.Plane(s)}
		st, err := pb.Statistics(rawview.StatAll)
		if err != nil {
			return nil, err
		}
		out[s] = st[0]
	}
	return out, nil
}
