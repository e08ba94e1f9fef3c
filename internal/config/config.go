// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML files via gopkg.in/yaml.v3; missing files yield zero Settings

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/termrt/pkg/tui/capability"
)

// Strip style modes.
const (
	StripAuto   = "auto"
	StripAlways = "always"
	StripNever  = "never"
)

// Settings holds the merged configuration.
type Settings struct {
	// Backend forces a capability backend by name; empty or "auto" selects
	// one for the platform.
	Backend             string `yaml:"backend,omitempty"`
	DefaultWidth        int    `yaml:"default_width,omitempty"`
	DefaultHeight       int    `yaml:"default_height,omitempty"`
	RestoreCursorOnExit *bool  `yaml:"restore_cursor_on_exit,omitempty"`
	StripStyles         string `yaml:"strip_styles,omitempty"`
	Verbose             bool   `yaml:"verbose,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return merge(global, project), nil
}

// LoadFile reads settings from an explicit path. Unlike Load, a missing
// file is an error.
func LoadFile(path string) (*Settings, error) {
	s, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return s, nil
}

// loadFile reads a Settings from a YAML file. Returns zero Settings if file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Backend != "" {
		result.Backend = project.Backend
	}
	if project.DefaultWidth != 0 {
		result.DefaultWidth = project.DefaultWidth
	}
	if project.DefaultHeight != 0 {
		result.DefaultHeight = project.DefaultHeight
	}
	if project.RestoreCursorOnExit != nil {
		v := *project.RestoreCursorOnExit
		result.RestoreCursorOnExit = &v
	}
	if project.StripStyles != "" {
		result.StripStyles = project.StripStyles
	}
	if project.Verbose {
		result.Verbose = true
	}

	return &result
}

// Validate reports the first invalid field.
func (s *Settings) Validate() error {
	if _, _, err := s.BackendKind(); err != nil {
		return err
	}
	switch s.StripStyles {
	case "", StripAuto, StripAlways, StripNever:
	default:
		return fmt.Errorf("invalid strip_styles %q: want auto, always or never", s.StripStyles)
	}
	if s.DefaultWidth < 0 || s.DefaultHeight < 0 {
		return fmt.Errorf("invalid default size %dx%d", s.DefaultWidth, s.DefaultHeight)
	}
	return nil
}

// BackendKind returns the forced backend. ok is false when the backend is
// chosen automatically.
func (s *Settings) BackendKind() (kind capability.Kind, ok bool, err error) {
	if s.Backend == "" || s.Backend == "auto" {
		return capability.KindFallback, false, nil
	}
	kind, err = capability.ParseKind(s.Backend)
	if err != nil {
		return capability.KindFallback, false, err
	}
	return kind, true, nil
}

// FallbackSize is the layout size used when the terminal size is unknown.
func (s *Settings) FallbackSize() capability.Size {
	size := capability.DefaultSize
	if s.DefaultWidth > 0 {
		size.Columns = s.DefaultWidth
	}
	if s.DefaultHeight > 0 {
		size.Rows = s.DefaultHeight
	}
	return size
}

// RestoreCursor reports whether a hidden cursor is restored at exit.
// Defaults to true.
func (s *Settings) RestoreCursor() bool {
	return s.RestoreCursorOnExit == nil || *s.RestoreCursorOnExit
}

// ShouldStripStyles reports whether escape sequences are removed from
// output going to a stream with the given interactivity.
func (s *Settings) ShouldStripStyles(interactive bool) bool {
	switch s.StripStyles {
	case StripAlways:
		return true
	case StripNever:
		return false
	default:
		return !interactive
	}
}
