package paths

import (
	"strings"

	"github.com/arthur-debert/fontweak/pkg/errors"
)

// ValidateSchemeName ensures a scheme name is usable as a file name.
// Scheme names must:
// - Not be empty
// - Not contain path separators
// - Not be reserved names (. or ..)
// - Not contain control or shell-hostile characters
func ValidateSchemeName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New(errors.ErrSchemeInvalid, "scheme name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.New(errors.ErrSchemeInvalid, "scheme name cannot contain path separators").
			WithDetail("name", name)
	}

	if name == "." || name == ".." {
		return errors.New(errors.ErrSchemeInvalid, "scheme name cannot be '.' or '..'")
	}

	invalidChars := ":*?\"<>|"
	if strings.ContainsAny(name, invalidChars) {
		return errors.Newf(errors.ErrSchemeInvalid,
			"scheme name contains invalid characters: %s", invalidChars).WithDetail("name", name)
	}

	for _, r := range name {
		if r < 32 {
			return errors.New(errors.ErrSchemeInvalid, "scheme name contains control characters")
		}
	}

	return nil
}
