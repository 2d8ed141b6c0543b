package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"mime"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/ytget/favicon-maker/internal/compress"
	"github.com/ytget/favicon-maker/internal/config"
	"github.com/ytget/favicon-maker/internal/export"
	"github.com/ytget/favicon-maker/internal/model"
	"github.com/ytget/favicon-maker/internal/platform"
	"github.com/ytget/favicon-maker/internal/session"
)

// options collects command-line flags
type options struct {
	input       string
	outputDir   string
	size        int
	timeout     int
	profilePath string
	watch       bool
	overwrite   bool
	setFlags    map[string]bool
}

func main() {
	opts := options{setFlags: map[string]bool{}}
	flag.StringVar(&opts.input, "i", "", "source image (png, jpeg, gif, webp, bmp, ico)")
	flag.StringVar(&opts.outputDir, "o", "", "output directory (default from profile, or current directory)")
	flag.IntVar(&opts.size, "size", 0, fmt.Sprintf("export a single favicon, one of %v; 0 follows the profile", model.ExportSizes()))
	flag.IntVar(&opts.timeout, "timeout", config.DefaultExportTimeoutSeconds, "export timeout in seconds")
	flag.StringVar(&opts.profilePath, "config", "", "YAML export profile")
	flag.BoolVar(&opts.watch, "watch", false, "export again whenever the source image changes")
	flag.BoolVar(&opts.overwrite, "overwrite", false, "replace existing files instead of picking a new name")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) { opts.setFlags[f.Name] = true })

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run exports once, then keeps exporting on change when watching
func run(ctx context.Context, opts options) error {
	if opts.input == "" {
		return errors.New("missing -i source image")
	}

	profile, err := resolveProfile(opts)
	if err != nil {
		return err
	}

	specs := profile.Specs()
	bundle := profile.Bundle
	if opts.size != 0 {
		spec, ok := model.FindExportSpec(opts.size)
		if !ok {
			return fmt.Errorf("unsupported size %d, expected one of %v", opts.size, model.ExportSizes())
		}
		specs, bundle = []model.ExportSpec{spec}, false
	}

	sess := session.New(nil)
	sink := &platform.DirectorySink{Dir: profile.OutputDir, Overwrite: profile.Overwrite}
	exporter := export.NewService(sess, compress.NewService(), sink, profile.Timeout())

	var mu sync.Mutex
	exportOnce := func() error {
		mu.Lock()
		defer mu.Unlock()
		return exportFile(ctx, opts.input, sess, exporter, specs, bundle)
	}

	if err := exportOnce(); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	fmt.Printf("Watching %s for changes (Ctrl+C to stop)\n", opts.input)
	return platform.WatchFile(ctx, opts.input, platform.DefaultWatchDebounce, func() {
		if err := exportOnce(); err != nil {
			log.Printf("Export after change failed: %v", err)
		}
	})
}

// resolveProfile loads the profile file, if any, and applies flag overrides
func resolveProfile(opts options) (*config.Profile, error) {
	profile := config.DefaultProfile()
	if opts.profilePath != "" {
		loaded, err := config.LoadProfile(opts.profilePath)
		if err != nil {
			return nil, err
		}
		profile = loaded
	}

	if opts.setFlags["o"] {
		profile.OutputDir = opts.outputDir
	}
	if opts.setFlags["timeout"] {
		profile.TimeoutSeconds = opts.timeout
	}
	if opts.setFlags["overwrite"] {
		profile.Overwrite = opts.overwrite
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return profile, nil
}

// exportFile uploads path into the session and runs the selected exports
func exportFile(ctx context.Context, path string, sess *session.Session, exporter *export.Service, specs []model.ExportSpec, bundle bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	src, err := sess.Upload(ctx, raw, mime.TypeByExtension(filepath.Ext(path)))
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %s (%s, %dx%d)\n", path, src.Format, src.Width, src.Height)

	if bundle {
		task, err := exporter.ExportAll(ctx)
		if err != nil {
			return err
		}
		printTask(task)
		return nil
	}

	for _, spec := range specs {
		task, err := exporter.ExportSingle(ctx, spec)
		if err != nil {
			return err
		}
		printTask(task)
	}
	return nil
}

func printTask(task *model.ExportTask) {
	if task == nil {
		return
	}
	fmt.Printf("Wrote %s (%d bytes, %s)\n", task.OutputPath, task.Size, task.GetDurationString())
}
