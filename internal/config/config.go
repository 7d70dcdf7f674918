package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/pelletier/go-toml/v2"

	"github.com/menta2k/watermarker/pkg/types"
)

// Layer is one precedence tier of settings. Every field is optional; nil
// means "not defined here, ask the next tier".
type Layer struct {
	LogoPath   *string
	Position   *types.Anchor
	Resolution *types.Resolution
	OutputPath *string
	Force      *bool
	Inputs     []string
}

// FileConfig mirrors config.toml
type FileConfig struct {
	Logo   *LogoConfig   `toml:"logo"`
	Output *OutputConfig `toml:"output"`
}

// LogoConfig holds the [logo] table
type LogoConfig struct {
	FilePath *string `toml:"file_path"`
	Position *string `toml:"position"`
}

// OutputConfig holds the [output] table
type OutputConfig struct {
	Resolution *string `toml:"resolution"`
	OutputPath *string `toml:"output_path"`
}

// builtin holds the values used when neither the command line nor the
// configuration file defines a field. The logo path has no default.
type builtin struct {
	Position   string `default:"BOTTOM-RIGHT"`
	Resolution string `default:"HD"`
	OutputPath string `default:"."`
	Force      bool   `default:"false"`
}

// Defaults returns the built-in tier
func Defaults() Layer {
	var b builtin
	defaults.MustSet(&b)

	position, err := types.ParseAnchor(b.Position)
	if err != nil {
		panic(err)
	}
	resolution, err := types.ParseResolution(b.Resolution)
	if err != nil {
		panic(err)
	}

	return Layer{
		Position:   &position,
		Resolution: &resolution,
		OutputPath: &b.OutputPath,
		Force:      &b.Force,
	}
}

// LoadFromFile parses a config.toml file into a Layer
func LoadFromFile(filename string) (Layer, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Layer{}, &Error{Kind: KindConfig, Field: "config file", Path: filename, Err: err}
	}

	var fc FileConfig
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&fc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			err = fmt.Errorf("line %d column %d: %w", row, col, err)
		}
		return Layer{}, &Error{Kind: KindConfig, Field: "config file", Path: filename, Err: err}
	}

	layer, err := fc.Layer()
	if err != nil {
		return Layer{}, &Error{Kind: KindConfig, Field: "config file", Path: filename, Err: err}
	}
	return layer, nil
}

// Layer converts the raw file contents into a typed Layer
func (fc FileConfig) Layer() (Layer, error) {
	var l Layer

	if fc.Logo != nil {
		l.LogoPath = fc.Logo.FilePath
		if fc.Logo.Position != nil {
			a, err := types.ParseAnchor(*fc.Logo.Position)
			if err != nil {
				return Layer{}, fmt.Errorf("logo.position: %w", err)
			}
			l.Position = &a
		}
	}

	if fc.Output != nil {
		l.OutputPath = fc.Output.OutputPath
		if fc.Output.Resolution != nil {
			r, err := types.ParseResolution(*fc.Output.Resolution)
			if err != nil {
				return Layer{}, fmt.Errorf("output.resolution: %w", err)
			}
			l.Resolution = &r
		}
	}

	return l, nil
}

// LoadFileLayer locates and reads the configuration file tier.
//
// An explicit path must exist and be a regular file. Without one, the
// platform default location is tried and a missing file there yields an
// empty layer. The returned path is the file actually read, or "".
func LoadFileLayer(explicit string, p Platform) (Layer, string, error) {
	path := explicit
	if path == "" {
		path = DefaultConfigPath(p)
		if path == "" {
			return Layer{}, "", nil
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		if explicit == "" && errors.Is(err, os.ErrNotExist) {
			return Layer{}, "", nil
		}
		if errors.Is(err, os.ErrNotExist) {
			err = errNotExist
		}
		return Layer{}, "", &Error{Kind: KindConfig, Field: "config file", Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return Layer{}, "", &Error{Kind: KindConfig, Field: "config file", Path: path, Err: errNotFile}
	}

	layer, err := LoadFromFile(path)
	if err != nil {
		return Layer{}, "", err
	}
	return layer, path, nil
}

// Merge takes, for every field, the first value defined in layers, which
// are given highest priority first.
func Merge(layers ...Layer) (Merged, error) {
	var m Merged

	for _, l := range layers {
		if m.LogoPath == "" && l.LogoPath != nil {
			m.LogoPath = *l.LogoPath
		}
		if m.Position == nil && l.Position != nil {
			a := *l.Position
			m.Position = &a
		}
		if m.Resolution == nil && l.Resolution != nil {
			r := *l.Resolution
			m.Resolution = &r
		}
		if m.OutputPath == "" && l.OutputPath != nil {
			m.OutputPath = *l.OutputPath
		}
		if m.Force == nil && l.Force != nil {
			f := *l.Force
			m.Force = &f
		}
		if len(m.Inputs) == 0 && len(l.Inputs) > 0 {
			m.Inputs = append([]string(nil), l.Inputs...)
		}
	}

	switch {
	case m.LogoPath == "":
		return Merged{}, &Error{Kind: KindConfig, Field: "logo file path", Err: errNotSpecified}
	case len(m.Inputs) == 0:
		return Merged{}, &Error{Kind: KindConfig, Field: "input path", Err: errNotSpecified}
	case m.Position == nil:
		return Merged{}, &Error{Kind: KindConfig, Field: "logo position", Err: errNotSpecified}
	case m.Resolution == nil:
		return Merged{}, &Error{Kind: KindConfig, Field: "output resolution", Err: errNotSpecified}
	case m.OutputPath == "":
		return Merged{}, &Error{Kind: KindConfig, Field: "output path", Err: errNotSpecified}
	}

	return m, nil
}

// Resolve merges the three tiers and validates the result
func Resolve(cli, file, fallback Layer) (*Settings, error) {
	m, err := Merge(cli, file, fallback)
	if err != nil {
		return nil, err
	}
	return Validate(m)
}

// Load reads the configuration file tier (explicit path or platform
// default), merges it between cli and the built-in defaults and validates
// the result.
func Load(configFile string, cli Layer, p Platform) (*Settings, error) {
	file, path, err := LoadFileLayer(configFile, p)
	if err != nil {
		return nil, err
	}

	m, err := Merge(cli, file, Defaults())
	if err != nil {
		return nil, err
	}
	m.ConfigPath = path

	return Validate(m)
}
