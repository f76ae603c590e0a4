// Command canny runs the edge detector on one image file and writes the
// edge map, optionally with every intermediate stage, as JPEG files.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
	"github.com/ironsheep/canny-edge-mcp/internal/imaging"
)

const jpegQuality = 95

func main() {
	opts := imaging.DefaultEdgeOptions()

	var (
		low     = flag.Float64("low", 0.2, "low hysteresis threshold")
		high    = flag.Float64("high", 0.3, "high hysteresis threshold")
		sigma   = flag.Float64("sigma", opts.Sigma, "Gaussian standard deviation")
		ksize   = flag.Int("ksize", opts.KernelSize, "odd Gaussian kernel size")
		gray    = flag.String("gray", string(opts.GrayMode), "gray conversion: bt601 or lightness")
		smooth  = flag.String("smooth", string(opts.Smoothing), "smoothing: kernel or bild")
		workers = flag.Int("workers", 1, "goroutines per detector stage")
		process = flag.Bool("process", false, "also write every intermediate stage")
		outDir  = flag.String("out", "result", "output directory")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: canny [flags] image\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	canny.SetLogger(logger)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	opts.Thresholds = canny.Thresholds{Low: float32(*low), High: float32(*high)}
	opts.Sigma = *sigma
	opts.KernelSize = *ksize
	opts.Workers = *workers
	if opts.GrayMode, err = imaging.ParseGrayMode(*gray); err != nil {
		fatal(logger, "invalid -gray", err)
	}
	if opts.Smoothing, err = imaging.ParseSmoothMethod(*smooth); err != nil {
		fatal(logger, "invalid -smooth", err)
	}

	if err := run(logger, flag.Arg(0), *outDir, *process, opts); err != nil {
		fatal(logger, "edge detection failed", err)
	}
}

func run(logger *slog.Logger, path, outDir string, process bool, opts imaging.EdgeOptions) error {
	img, err := imgio.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}

	a, err := imaging.Analyze(img, opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, s := range a.StageImages() {
		if !process && s.Name != "edges" {
			continue
		}
		dst := filepath.Join(outDir, s.FileName)
		if err := imgio.Save(dst, s.Image, imgio.JPEGEncoder(jpegQuality)); err != nil {
			return fmt.Errorf("failed to save %s stage: %w", s.Name, err)
		}
		logger.Debug("stage written", "stage", s.Name, "path", dst)
	}

	logger.Info("edges detected",
		"image", filepath.Base(path),
		"size", fmt.Sprintf("%dx%d", a.Edges.Bounds().Dx(), a.Edges.Bounds().Dy()),
		"edge_pixels", a.Stats.Edge,
		"promoted", a.Stats.Promoted,
		"out", strings.TrimSuffix(outDir, string(filepath.Separator)))
	return nil
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
