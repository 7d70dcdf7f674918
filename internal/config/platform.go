package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AppName names the per-application configuration directory.
	AppName = "watermarker"
	// FileName is the configuration file looked up in that directory.
	FileName = "config.toml"
)

// Platform carries the OS facts needed to locate the default config file
type Platform struct {
	GOOS          string
	Home          string
	XDGConfigHome string
	LocalAppData  string
}

// CurrentPlatform reads the running process' OS and environment
func CurrentPlatform() Platform {
	home, _ := os.UserHomeDir()
	return Platform{
		GOOS:          runtime.GOOS,
		Home:          home,
		XDGConfigHome: os.Getenv("XDG_CONFIG_HOME"),
		LocalAppData:  os.Getenv("LOCALAPPDATA"),
	}
}

// DefaultConfigPath returns the per-user config.toml location for p, or ""
// when no base directory can be derived.
//
//	linux and other unix: $XDG_CONFIG_HOME or $HOME/.config
//	darwin:               $HOME/Library/Application Support
//	windows:              %LOCALAPPDATA%
func DefaultConfigPath(p Platform) string {
	var base string

	switch p.GOOS {
	case "windows":
		base = p.LocalAppData
	case "darwin", "ios":
		if p.Home != "" {
			base = filepath.Join(p.Home, "Library", "Application Support")
		}
	default:
		if filepath.IsAbs(p.XDGConfigHome) {
			base = p.XDGConfigHome
		} else if p.Home != "" {
			base = filepath.Join(p.Home, ".config")
		}
	}

	if base == "" {
		return ""
	}
	return filepath.Join(base, AppName, FileName)
}
