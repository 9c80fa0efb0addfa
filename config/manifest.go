package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// MobileManifest is the packaging manifest of the native wrapper around the web client
type MobileManifest struct {
	AppID   string       `yaml:"app_id" json:"app_id"`
	AppName string       `yaml:"app_name" json:"app_name"`
	WebDir  string       `yaml:"web_dir" json:"web_dir"`
	Server  ServerURL    `yaml:"server" json:"server"`
	Splash  SplashScreen `yaml:"splash_screen" json:"splash_screen"`
}

// ServerURL is the remote content URL used for live reload during development
type ServerURL struct {
	URL       string `yaml:"url" json:"url"`
	Cleartext bool   `yaml:"cleartext" json:"cleartext"`
}

// SplashScreen mirrors the splash plugin settings
type SplashScreen struct {
	LaunchShowDuration int    `yaml:"launch_show_duration" json:"launch_show_duration"`
	LaunchAutoHide     bool   `yaml:"launch_auto_hide" json:"launch_auto_hide"`
	BackgroundColor    string `yaml:"background_color" json:"background_color"`
	ShowSpinner        bool   `yaml:"show_spinner" json:"show_spinner"`
	SpinnerColor       string `yaml:"spinner_color" json:"spinner_color"`
	FullScreen         bool   `yaml:"full_screen" json:"full_screen"`
	Immersive          bool   `yaml:"immersive" json:"immersive"`
}

// DefaultMobileManifest returns the manifest shipped with the app
func DefaultMobileManifest() MobileManifest {
	return MobileManifest{
		AppID:   "app.graminsamriddhi.farmer",
		AppName: "gramin-samriddhi",
		WebDir:  "dist",
		Server: ServerURL{
			Cleartext: true,
		},
		Splash: SplashScreen{
			LaunchShowDuration: 3000,
			LaunchAutoHide:     true,
			BackgroundColor:    "#3e7b3e",
			ShowSpinner:        false,
			SpinnerColor:       "#ffffff",
			FullScreen:         true,
			Immersive:          true,
		},
	}
}

// LoadMobileManifest reads the manifest at path over the defaults.
// A missing file is not an error.
func LoadMobileManifest(path string) (MobileManifest, error) {
	manifest := DefaultMobileManifest()
	if path == "" {
		return manifest, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return manifest, nil
	}
	if err != nil {
		return manifest, fmt.Errorf("failed to read mobile manifest %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return DefaultMobileManifest(), fmt.Errorf("failed to parse mobile manifest %s: %w", path, err)
	}
	return manifest, nil
}
