package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration.
// Unlike Validate(), this also checks file access. Errors are returned as
// criterio.FieldErrors.
func (c *Config) ValidateDeep(configPath string) ([]ValidationWarning, error) {
	var (
		errs     criterio.FieldErrorsBuilder
		warnings []ValidationWarning
	)

	if configPath != "" {
		info, err := os.Stat(configPath)
		switch {
		case err == nil && info.IsDir():
			errs = errs.Append("config", fmt.Errorf("%s is a directory, not a file", configPath))
		case os.IsNotExist(err):
			warnings = append(warnings, ValidationWarning{
				Category: "File Access",
				Item:     "config file",
				Message:  fmt.Sprintf("%s not found, using defaults", configPath),
			})
		case err != nil:
			errs = errs.Append("config", fmt.Errorf("cannot access %s: %w", configPath, err))
		}
	}

	if c.Serve.DataFile != "" {
		dir := filepath.Dir(c.Serve.DataFile)
		if info, err := os.Stat(dir); err != nil {
			warnings = append(warnings, ValidationWarning{
				Category: "File Access",
				Item:     "serve.data_file",
				Message:  fmt.Sprintf("directory %s does not exist and will be created", dir),
			})
		} else if !info.IsDir() {
			errs = errs.Append("serve.data_file", fmt.Errorf("%s is not a directory", dir))
		}
	}

	errs = c.fieldErrors(errs)
	return warnings, errs.ToError()
}
