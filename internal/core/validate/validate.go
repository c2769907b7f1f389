// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"
)

// Email validates an email is present. The format is left to the service.
func Email(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

// ActivityName validates an activity was chosen.
func ActivityName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("activity is required")
	}
	return nil
}
