package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateName reports whether name is a usable element identifier: it must
// be non-empty, start with a letter or underscore and contain only letters,
// digits and underscores. Callers that want to repair a name rather than
// reject it should replace spaces first.
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "element name cannot be empty")
	}

	for i, r := range name {
		if i == 0 && !(unicode.IsLetter(r) || r == '_') {
			return New(ErrCodeInvalidName, "element name must start with a letter or underscore: %q", name)
		}
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return New(ErrCodeInvalidName, "element name contains invalid character %q: %q", r, name)
		}
	}

	return nil
}

// documentExtensions lists the file extensions a layout document may use.
var documentExtensions = map[string]bool{
	".json": true,
	".toml": true,
	".yaml": true,
	".yml":  true,
}

// ValidateDocumentPath validates a layout document path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Extension must be .json, .toml, .yaml or .yml
func ValidateDocumentPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !documentExtensions[ext] {
		return New(ErrCodeUnsupported, "unsupported document extension %q (want .json, .toml, .yaml or .yml)", ext)
	}

	return nil
}
