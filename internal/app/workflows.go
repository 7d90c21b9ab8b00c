package app

import (
	"fmt"
	"regexp"

	"github.com/tacogips/vitesetup/internal/variant"
)

// MaxProjectNameLength is the longest accepted project name.
const MaxProjectNameLength = 50

var projectNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidateProjectName checks that name starts with a letter, contains only
// letters, digits, dashes and underscores, and is at most 50 characters.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if len(name) > MaxProjectNameLength {
		return fmt.Errorf("project name must be at most %d characters", MaxProjectNameLength)
	}
	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf("must start with a letter and contain only letters, numbers, dashes and underscores")
	}
	return nil
}

// resolveVariant turns the stack selection into a registry entry. An explicit
// framework/language pair wins over the stack string.
func resolveVariant(stack string, fw variant.Framework, lang variant.Language) (variant.Config, error) {
	var (
		cfg variant.Config
		err error
	)
	if fw != "" || lang != "" {
		cfg, err = variant.Lookup(fw, lang)
	} else {
		cfg, err = variant.ParseStack(stack)
	}
	if err != nil {
		return variant.Config{}, NewUnknownVariantError("unsupported stack", err)
	}
	return cfg, nil
}
