package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/menta2k/watermarker/pkg/types"
)

// anchorValue adapts types.Anchor to pflag.Value. It renders empty until
// set so the help output does not show the zero anchor as a default.
type anchorValue struct {
	v   *types.Anchor
	set bool
}

func (a *anchorValue) String() string {
	if !a.set {
		return ""
	}
	return a.v.String()
}

func (a *anchorValue) Set(s string) error {
	if err := a.v.UnmarshalText([]byte(s)); err != nil {
		return err
	}
	a.set = true
	return nil
}

func (a *anchorValue) Type() string { return "POSITION" }

// resolutionValue adapts types.Resolution to pflag.Value
type resolutionValue struct{ v *types.Resolution }

func (r resolutionValue) String() string {
	if r.v.IsZero() {
		return ""
	}
	return r.v.String()
}

func (r resolutionValue) Set(s string) error { return r.v.UnmarshalText([]byte(s)) }

func (r resolutionValue) Type() string { return "RES" }

type options struct {
	configFile string
	outputPath string
	logoPath   string
	position   types.Anchor
	resolution types.Resolution
	force      bool
	show       bool
	verbose    bool
	logFormat  string
	version    bool
	help       bool
}

func newFlagSet(opts *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("watermarker", pflag.ContinueOnError)
	fs.SortFlags = false

	var presets []string
	for _, p := range types.Presets() {
		presets = append(presets, p.Name)
	}
	var anchors []string
	for _, a := range types.Anchors() {
		anchors = append(anchors, a.String())
	}

	fs.StringVarP(&opts.configFile, "config-file", "c", "", "configuration file `FILE`")
	fs.StringVarP(&opts.outputPath, "output-path", "o", "", "output directory `PATH` (default \".\")")
	fs.StringVarP(&opts.logoPath, "logo-file-path", "l", "", "logo image `PATH`, usually a transparent PNG")
	fs.VarP(&anchorValue{v: &opts.position}, "logo-position", "p",
		"logo position: "+strings.Join(anchors, ", ")+" (default BOTTOM-RIGHT)")
	fs.VarP(resolutionValue{&opts.resolution}, "resolution", "r",
		"output resolution: "+strings.Join(presets, ", ")+" or WxH (default HD)")
	fs.BoolVarP(&opts.force, "force", "f", false, "overwrite existing output files")
	fs.BoolVarP(&opts.show, "show-options", "s", false, "print the effective settings and exit")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	fs.StringVar(&opts.logFormat, "log-format", "console", "log format: console or json")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")
	fs.BoolVarP(&opts.help, "help", "h", false, "print this help and exit")

	return fs
}
