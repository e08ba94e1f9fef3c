// ABOUTME: Standard filesystem paths for termrt configuration
// ABOUTME: Resolves ~/.termrt/ for global and .termrt/ for project-local settings

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".termrt"
	projectDirName = ".termrt"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.termrt/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.termrt/ in cwd).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global settings file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local settings file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}
