package core

import (
	"fmt"
	"strings"
)

// ValidateSlug rejects slugs that cannot be used as a single file name
// inside the output directory.
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("slug cannot be empty")
	}

	if strings.ContainsAny(slug, `/\`) {
		return fmt.Errorf("slug cannot contain path separators")
	}

	if slug == "." || slug == ".." {
		return fmt.Errorf("slug cannot be a directory reference")
	}

	if strings.ContainsRune(slug, 0) {
		return fmt.Errorf("slug cannot contain NUL")
	}

	return nil
}
