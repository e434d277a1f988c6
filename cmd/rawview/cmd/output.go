package cmd

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"rawview/pkg/rawview"
)

func addOutputFlags(cmd *cobra.Command) {
	pf := cmd.Flags()
	pf.StringP("out", "o", "", "output file (.raw, .tif/.tiff or .png)")
	pf.Uint("preview", 0, "with a .png output, scale so the longer side fits in this many pixels")
	pf.String("label", "", "with a .png output, caption written across the top")
}

func previewFromFlags(cmd *cobra.Command) rawview.PreviewOptions {
	size, _ := cmd.Flags().GetUint("preview")
	label, _ := cmd.Flags().GetString("label")
	return rawview.PreviewOptions{MaxSize: size, Label: label}
}

// writeBuffer picks the export from the extension of path and returns
// the name actually written.
func writeBuffer(path string, buf *rawview.ImageBuffer, preview rawview.PreviewOptions) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		return path, errors.Wrapf(rawview.WriteTIFF(path, buf), "writing %s", path)
	case ".png":
		return path, errors.Wrapf(rawview.WritePNGPreview(path, buf, preview), "writing %s", path)
	default:
		out, err := rawview.WriteBufferRaw(path, buf)
		return out, errors.Wrapf(err, "writing %s", path)
	}
}

// outputPath returns --out, or the input name with ext in place of its
// extension.
func outputPath(cmd *cobra.Command, in, ext string) string {
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		return out
	}
	return strings.TrimSuffix(in, filepath.Ext(in)) + ext
}
