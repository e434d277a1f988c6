package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"rawview/pkg/rawview"
)

// NewSplitCmd writes the four Bayer planes of a frame as separate files.
func NewSplitCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <frame.raw>",
		Short: "split a Bayer frame into its R, G1, G2 and B planes",
		Long:  "Reduces the mosaic to 8 bits with the selected window mode and writes each colour site as a quarter-size 8-bit raw plane.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			p, err := paramsFromFlags(cmd)
			if err != nil {
				return err
			}
			if !p.Mosaic() {
				return errors.Errorf("split needs a single-channel mosaic, got %d channels", p.Channels)
			}
			raw, err := rawview.ReadRaw(in, p)
			if err != nil {
				return errors.Wrapf(err, "reading %s", in)
			}
			mosaic, err := rawview.Reduce8(raw, p)
			if err != nil {
				return errors.Wrapf(err, "reducing %s", in)
			}
			planes, err := rawview.SplitChannels(mosaic.Pix8, p.Width, p.Height, p.Code.Layout())
			if err != nil {
				return errors.Wrap(err, "splitting channels")
			}

			dir, _ := cmd.Flags().GetString("dir")
			if dir == "" {
				dir = filepath.Dir(in)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.Wrapf(err, "creating %s", dir)
			}
			base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
			for _, s := range []rawview.Site{rawview.SiteR, rawview.SiteG1, rawview.SiteG2, rawview.SiteB} {
				out, err := rawview.WriteRaw(filepath.Join(dir, base+"_"+s.String()), planes.Plane(s))
				if err != nil {
					return errors.Wrapf(err, "writing %s plane", s)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %dx%d\n", out, planes.Width, planes.Height)
			}
			return nil
		},
	}
	addFrameFlags(cmd)
	cmd.Flags().StringP("dir", "d", "", "output directory (default: next to the input)")
	return cmd
}
