// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"capital-viability/pkg/constants"
)

// Configuration holds all configuration for capital-viability.
type Configuration struct {
	ProjectsDir string        `yaml:"projectsDir,omitempty"`
	Policy      TaxPolicy     `yaml:"policy,omitempty"`
	Logging     LoggingConfig `yaml:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, xlsx, pdf
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()

	return &configuration, nil
}

// ApplyDefaults fills unset fields with their default values.
func (c *Configuration) ApplyDefaults() {
	if c.ProjectsDir == "" {
		c.ProjectsDir = constants.DefaultProjectsDir
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings alongside any hard error from the tax policy.
func (c *Configuration) ValidateConfiguration() ([]string, error) {
	if err := c.Policy.Validate(); err != nil {
		return nil, err
	}

	var warnings []string
	if c.Policy.TMA == 0 {
		warnings = append(warnings, "TMA is zero; NPV will equal the undiscounted sum of cash flows")
	}
	if c.Policy.EffectiveTaxRate() == 0 {
		warnings = append(warnings, "effective tax rate (IR + CSLL) is zero; no taxes will be applied")
	}
	return warnings, nil
}
