// Package validation provides input validation utilities.
package validation

import (
	"fmt"
	"strings"

	"capital-viability/pkg/constants"
)

// ValidateOutputFormat checks that the requested output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatXLSX, constants.OutputFormatPDF:
		return nil
	}
	return fmt.Errorf("invalid output format: %s (valid formats: %s, %s, %s, %s)",
		format, constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatXLSX, constants.OutputFormatPDF)
}

// ValidateProjectName checks that a project name is non-empty and usable as
// a directory name.
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("project name must not contain path separators: %s", name)
	}
	return nil
}
