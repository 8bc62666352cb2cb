// Package envfile loads environment variables from .env files.
// Variables already set in the environment take precedence.
package envfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads a .env file and sets any variables not already in the environment.
// A variable that is present but empty counts as unset.
// Returns nil if the file doesn't exist. Returns an error only for read or parse failures.
func Load(path string) error {
	if path == "" {
		return nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading env file %s: %w", path, err)
	}

	for key, value := range values {
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
		}
	}
	return nil
}

// LoadAll loads each file in order. The first file to define a variable wins,
// because later files never override what is already set.
// Every file is attempted; the returned error joins the individual failures.
func LoadAll(paths ...string) error {
	var errs []error
	for _, path := range paths {
		if err := Load(path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
