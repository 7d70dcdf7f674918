package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/menta2k/watermarker"
	"github.com/menta2k/watermarker/internal/batch"
	"github.com/menta2k/watermarker/internal/config"
	"github.com/menta2k/watermarker/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, config.CurrentPlatform()))
}

func run(args []string, stdout, stderr io.Writer, platform config.Platform) int {
	var opts options
	fs := newFlagSet(&opts)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stdout, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	switch {
	case opts.help:
		usage(stdout, fs)
		return 0
	case opts.version:
		fmt.Fprintf(stdout, "watermarker %s\n", watermarker.GetVersion())
		return 0
	}

	logCfg := logging.DefaultConfig()
	logCfg.Format = opts.logFormat
	if opts.verbose {
		logCfg.Level = "debug"
	}
	if err := logCfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	log := logging.New(stderr, logCfg)
	defer func() { _ = log.Sync() }()

	settings, err := config.Load(opts.configFile, cliLayer(fs, &opts), platform)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	log.Debug("settings resolved",
		zap.String("config", settings.ConfigPath()),
		zap.String("output", settings.OutputPath()),
		zap.String("logo", settings.LogoPath()),
		zap.Stringer("position", settings.Position()),
		zap.Stringer("resolution", settings.Resolution()),
		zap.Bool("force", settings.Force()),
	)

	if opts.show {
		showOptions(stdout, settings)
		return 0
	}

	if _, err := batch.New(settings, log).Run(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// cliLayer keeps only the flags that were given on the command line, so
// the configuration file can fill in the rest.
func cliLayer(fs *pflag.FlagSet, opts *options) config.Layer {
	l := config.Layer{Inputs: fs.Args()}

	if fs.Changed("output-path") {
		l.OutputPath = &opts.outputPath
	}
	if fs.Changed("logo-file-path") {
		l.LogoPath = &opts.logoPath
	}
	if fs.Changed("logo-position") {
		l.Position = &opts.position
	}
	if fs.Changed("resolution") {
		l.Resolution = &opts.resolution
	}
	if fs.Changed("force") {
		l.Force = &opts.force
	}
	return l
}

func showOptions(w io.Writer, s *config.Settings) {
	configPath := s.ConfigPath()
	if configPath == "" {
		configPath = "(none)"
	}

	fmt.Fprintf(w, "config path:       %s\n", configPath)
	fmt.Fprintf(w, "output path:       %s\n", s.OutputPath())
	fmt.Fprintf(w, "logo file path:    %s\n", s.LogoPath())
	fmt.Fprintf(w, "logo position:     %s\n", s.Position())
	fmt.Fprintf(w, "output resolution: %s\n", s.Resolution())
}

func usage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: watermarker [flags] INPUT...\n\n")
	fmt.Fprintf(w, "Resize JPEG images and stamp a logo on them. INPUT is a JPEG file or a\n")
	fmt.Fprintf(w, "directory searched recursively for .jpg and .jpeg files.\n\n")
	fmt.Fprintf(w, "Flags:\n%s", fs.FlagUsages())
}
