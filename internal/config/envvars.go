// ABOUTME: TERMRT_* environment variables override file-based settings
// ABOUTME: Values are parsed strictly; a malformed variable is reported, not ignored

package config

import (
	"fmt"
	"strconv"
)

// Environment variable names.
const (
	EnvBackend     = "TERMRT_BACKEND"
	EnvWidth       = "TERMRT_WIDTH"
	EnvHeight      = "TERMRT_HEIGHT"
	EnvStripStyles = "TERMRT_STRIP_STYLES"
	EnvDebug       = "TERMRT_DEBUG"
)

// ApplyEnv overrides fields from environment variables found via lookup.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBackend); ok && v != "" {
		s.Backend = v
	}
	if v, ok := lookup(EnvStripStyles); ok && v != "" {
		s.StripStyles = v
	}
	if err := envInt(lookup, EnvWidth, &s.DefaultWidth); err != nil {
		return err
	}
	if err := envInt(lookup, EnvHeight, &s.DefaultHeight); err != nil {
		return err
	}
	if v, ok := lookup(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvDebug, err)
		}
		s.Verbose = b
	}
	return nil
}

func envInt(lookup func(string) (string, bool), key string, dst *int) error {
	v, ok := lookup(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", key, err)
	}
	*dst = n
	return nil
}
