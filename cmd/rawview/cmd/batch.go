package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"rawview/pkg/logging"
	"rawview/pkg/rawview"
)

// NewBatchCmd decodes many frames of the same shape concurrently.
func NewBatchCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <frame.raw>...",
		Short: "decode many frames of the same shape",
		Long:  "Decodes every frame with the same parameters, --jobs at a time, and writes one image per frame into --dir.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paramsFromFlags(cmd)
			if err != nil {
				return err
			}
			f := cmd.Flags()
			jobs, _ := f.GetInt("jobs")
			dir, _ := f.GetString("dir")
			ext, _ := f.GetString("ext")
			stretch, _ := f.GetBool("stretch16")
			preview, _ := f.GetUint("preview")
			caption, _ := f.GetBool("caption")

			if jobs < 1 {
				jobs = 1
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			if dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return errors.Wrapf(err, "creating %s", dir)
				}
			}
			decode := rawview.DecodeFile
			if stretch {
				decode = rawview.DecodeStretch16File
			}

			b := batch{params: p, decode: decode, dir: dir, ext: ext, preview: preview, caption: caption}
			failed := b.run(cmd.Context(), args, jobs)
			if failed > 0 {
				return errors.Wrapf(b.firstErr, "%d of %d frames failed", failed, len(args))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d frames decoded\n", len(args))
			return nil
		},
	}
	addFrameFlags(cmd)
	pf := cmd.Flags()
	pf.IntP("jobs", "j", runtime.NumCPU(), "frames decoded at once")
	pf.StringP("dir", "d", "", "output directory (default: next to each input)")
	pf.String("ext", ".png", "output format: .png, .tiff or .raw")
	pf.Bool("stretch16", false, "decode to 16 bits instead of 8")
	pf.Uint("preview", 0, "with .png output, scale so the longer side fits in this many pixels")
	pf.Bool("caption", false, "with .png output, write each input's name across the top")
	return cmd
}

type batch struct {
	params  rawview.Params
	decode  decodeFunc
	dir     string
	ext     string
	preview uint
	caption bool

	mu       sync.Mutex
	firstErr error
}

// run decodes every input, at most jobs at a time, and returns how many
// failed. Inputs not yet started when ctx is cancelled count as failed.
func (b *batch) run(ctx context.Context, inputs []string, jobs int) int {
	sem := make(chan struct{}, jobs)
	var wg sync.WaitGroup
	failed := 0
	fail := func(err error) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.firstErr == nil {
			b.firstErr = err
		}
		failed++
	}

	for i, in := range inputs {
		select {
		case <-ctx.Done():
			fail(ctx.Err())
			continue
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int, in string) {
			defer wg.Done()
			defer func() { <-sem }()
			fctx := logging.AppendCtx(ctx, slog.Int("frame", i), slog.String("in", in))
			if err := b.one(fctx, in); err != nil {
				slog.ErrorContext(fctx, "frame failed", "error", err)
				fail(errors.Wrap(err, in))
			}
		}(i, in)
	}
	wg.Wait()
	return failed
}

func (b *batch) one(ctx context.Context, in string) error {
	start := time.Now()
	buf, err := b.decode(in, b.params)
	if err != nil {
		return err
	}
	base := strings.TrimSuffix(in, filepath.Ext(in))
	out := base + b.ext
	if out == in {
		out = base + "_decoded" + b.ext
	}
	if b.dir != "" {
		out = filepath.Join(b.dir, filepath.Base(out))
	}
	opts := rawview.PreviewOptions{MaxSize: b.preview}
	if b.caption {
		opts.Label = filepath.Base(in)
	}
	if out, err = writeBuffer(out, buf, opts); err != nil {
		return err
	}
	slog.InfoContext(ctx, "decoded", "out", out, "elapsed", time.Since(start))
	return nil
}
