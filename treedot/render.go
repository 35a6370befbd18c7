package treedot

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/forestrie/go-treecode/binarytree"
)

type Options struct {
	// DotPath locates the graphviz dot binary. Rendering is skipped,
	// without error, when it is empty; visualization is never required
	// for correctness.
	DotPath string

	// Format is the dot -T output format. Defaults to png.
	Format string

	Label Labeler
	Log   *zap.Logger
}

type Option func(*Options)

func WithDotPath(path string) Option {
	return func(o *Options) { o.DotPath = path }
}

func WithFormat(format string) Option {
	return func(o *Options) { o.Format = format }
}

func WithLabeler(label Labeler) Option {
	return func(o *Options) { o.Label = label }
}

func WithLogger(log *zap.Logger) Option {
	return func(o *Options) { o.Log = log }
}

// Render lays the tree out with the configured dot binary, writing the
// result to outPath. The intermediate dot text goes to a uniquely
// named temp file which is removed on the way out.
//
// When no dot binary is configured Render logs the skip and returns
// nil.
func Render[N comparable](ctx context.Context, t *binarytree.Tree[N], outPath string, opts ...Option) (err error) {
	o := Options{Format: "png", Label: BinaryLabeler, Log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	if o.DotPath == "" {
		o.Log.Debug("no dot binary configured, skipping render",
			zap.String("outPath", outPath))
		return nil
	}

	dotFile := filepath.Join(os.TempDir(), fmt.Sprintf("treedot-%s.dot", uuid.NewString()))

	f, err := os.Create(dotFile)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, os.Remove(dotFile))
	}()

	if err = WriteDot(f, t, o.Label); err != nil {
		return multierr.Append(err, f.Close())
	}
	if err = f.Close(); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, o.DotPath, "-T"+o.Format, dotFile, "-o", outPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("dot failed: %w: %s", err, out)
	}

	o.Log.Debug("rendered tree",
		zap.String("outPath", outPath), zap.String("format", o.Format))

	return nil
}
