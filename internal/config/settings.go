package config

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/menta2k/watermarker/internal/utils"
	"github.com/menta2k/watermarker/pkg/processing"
	"github.com/menta2k/watermarker/pkg/types"
)

// Merged is the unvalidated result of merging the tiers. It is only an
// input to Validate; processing always works on *Settings.
type Merged struct {
	ConfigPath string
	OutputPath string   `validate:"dir"`
	LogoPath   string   `validate:"regular"`
	Inputs     []string `validate:"dive,regular|dir"`
	Position   *types.Anchor
	Resolution *types.Resolution
	Force      *bool
}

// Settings is the validated, read-only configuration of one run
type Settings struct {
	configPath string
	outputPath string
	logoPath   string
	logo       *image.NRGBA
	position   types.Anchor
	resolution types.Resolution
	force      bool
	inputs     []string
}

// ConfigPath is the configuration file that was read, or "" if none
func (s *Settings) ConfigPath() string { return s.configPath }

func (s *Settings) OutputPath() string { return s.outputPath }

func (s *Settings) LogoPath() string { return s.logoPath }

// Logo is the decoded logo, shared by every target. Callers must not modify it.
func (s *Settings) Logo() image.Image { return s.logo }

func (s *Settings) Position() types.Anchor { return s.position }

func (s *Settings) Resolution() types.Resolution { return s.resolution }

// Force reports whether existing outputs may be overwritten
func (s *Settings) Force() bool { return s.force }

// Inputs returns a copy of the input files and directories
func (s *Settings) Inputs() []string { return append([]string(nil), s.inputs...) }

var validate = newValidator()

// newValidator adds "regular", which unlike the built-in "file" rejects
// FIFOs, devices and sockets.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("regular", func(fl validator.FieldLevel) bool {
		return utils.FileExists(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks that every path in m exists with the right type and
// decodes the logo. Checks run in field order: output path, logo, inputs.
func Validate(m Merged) (*Settings, error) {
	if m.Position == nil || m.Resolution == nil || m.Resolution.IsZero() {
		return nil, &Error{Kind: KindConfig, Field: "settings", Err: errors.New("position and resolution must be merged before validation")}
	}

	if err := validate.Struct(m); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fieldError(verrs[0])
		}
		return nil, &Error{Kind: KindValidation, Field: "settings", Err: err}
	}

	logo, err := processing.NewProcessor().LoadNRGBA(m.LogoPath)
	if err != nil {
		return nil, &Error{Kind: KindValidation, Field: "logo file path", Path: m.LogoPath, Err: fmt.Errorf("cannot be decoded: %w", err)}
	}

	force := false
	if m.Force != nil {
		force = *m.Force
	}

	return &Settings{
		configPath: m.ConfigPath,
		outputPath: m.OutputPath,
		logoPath:   m.LogoPath,
		logo:       logo,
		position:   *m.Position,
		resolution: *m.Resolution,
		force:      force,
		inputs:     append([]string(nil), m.Inputs...),
	}, nil
}

func fieldError(fe validator.FieldError) error {
	path, _ := fe.Value().(string)

	switch {
	case fe.StructField() == "OutputPath":
		return &Error{Kind: KindValidation, Field: "output path", Path: path, Err: errNotDirectory}
	case fe.StructField() == "LogoPath":
		return &Error{Kind: KindValidation, Field: "logo file path", Path: path, Err: errNotFile}
	case strings.HasPrefix(fe.StructField(), "Inputs"):
		return &Error{Kind: KindValidation, Field: "input path", Path: path, Err: errNotFileOrDir}
	default:
		return &Error{Kind: KindValidation, Field: fe.Field(), Path: path, Err: fmt.Errorf("failed %q check", fe.Tag())}
	}
}
