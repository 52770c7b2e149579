// Package config loads and merges application configuration for the
// treegen CLI from global and local YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/treegen/internal/utils"
)

const (
	// ConfigFileName is the local configuration file discovered in the working directory.
	ConfigFileName = ".treegen.yaml"
	// GlobalConfigDirectoryName is the directory under the user configuration root.
	GlobalConfigDirectoryName = "treegen"
	// globalConfigFileName is the file name inside the global configuration directory.
	globalConfigFileName = "config.yaml"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds command-specific configuration defaults.
type ApplicationConfiguration struct {
	Tree TreeCommandConfiguration `mapstructure:"tree"`
}

// TreeCommandConfiguration defines defaults for the tree command. Pointer
// fields distinguish an unset value from an explicit false.
type TreeCommandConfiguration struct {
	IncludeExtensions []string `mapstructure:"include_extensions"`
	ExcludeExtensions []string `mapstructure:"exclude_extensions"`
	IncludeFiles      []string `mapstructure:"include_files"`
	ExcludeFiles      []string `mapstructure:"exclude_files"`
	Sort              []string `mapstructure:"sort"`
	Reverse           *bool    `mapstructure:"reverse"`
	Output            string   `mapstructure:"output"`
	Clipboard         *bool    `mapstructure:"clipboard"`
}

// LoadApplicationConfiguration loads configuration from global and local
// files, with local values overriding global ones. Missing files are not
// errors.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if configRoot, configRootError := os.UserConfigDir(); configRootError == nil && configRoot != "" {
		globalPath := filepath.Join(configRoot, GlobalConfigDirectoryName, globalConfigFileName)
		globalConfiguration, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfiguration)
	}

	localPath, resolveError := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveError != nil {
		return ApplicationConfiguration{}, resolveError
	}
	if localPath != "" {
		localConfiguration, loadError := loadConfigurationFromPath(localPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(localConfiguration)
	}

	merged.Tree.IncludeExtensions = utils.DeduplicateStrings(merged.Tree.IncludeExtensions)
	merged.Tree.ExcludeExtensions = utils.DeduplicateStrings(merged.Tree.ExcludeExtensions)
	merged.Tree.IncludeFiles = utils.DeduplicateStrings(merged.Tree.IncludeFiles)
	merged.Tree.ExcludeFiles = utils.DeduplicateStrings(merged.Tree.ExcludeFiles)

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory string, explicitPath string) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		if workingDirectory == "" {
			absolutePath, absoluteError := filepath.Abs(explicitPath)
			if absoluteError != nil {
				return "", fmt.Errorf("resolve configuration path %s: %w", explicitPath, absoluteError)
			}
			return absolutePath, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	if workingDirectory == "" {
		return "", nil
	}
	return filepath.Join(workingDirectory, ConfigFileName), nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	pathInformation, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statError)
	}
	if pathInformation.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeError)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	result.Tree = result.Tree.merge(override.Tree)
	return result
}

func (configuration TreeCommandConfiguration) merge(override TreeCommandConfiguration) TreeCommandConfiguration {
	result := configuration
	if len(override.IncludeExtensions) > 0 {
		result.IncludeExtensions = append([]string(nil), override.IncludeExtensions...)
	}
	if len(override.ExcludeExtensions) > 0 {
		result.ExcludeExtensions = append([]string(nil), override.ExcludeExtensions...)
	}
	if len(override.IncludeFiles) > 0 {
		result.IncludeFiles = append([]string(nil), override.IncludeFiles...)
	}
	if len(override.ExcludeFiles) > 0 {
		result.ExcludeFiles = append([]string(nil), override.ExcludeFiles...)
	}
	if len(override.Sort) > 0 {
		result.Sort = append([]string(nil), override.Sort...)
	}
	if override.Reverse != nil {
		result.Reverse = cloneBool(override.Reverse)
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
