package layout

import (
	"fmt"
	"strings"

	"github.com/matzehuels/hmibuilder/pkg/errors"
)

// uniqueName turns a requested name into one that is valid and not taken.
//
// Spaces become underscores. An invalid name is replaced by prefix1, prefix2,
// ... using the smallest free number. A valid name that is taken loses any
// trailing "_<digits>" suffix and gets "_1", "_2", ... appended instead.
func uniqueName(requested, prefix string, taken func(string) bool) string {
	name := strings.ReplaceAll(requested, " ", "_")

	if errors.ValidateName(name) != nil {
		for n := 1; ; n++ {
			candidate := fmt.Sprintf("%s%d", prefix, n)
			if !taken(candidate) {
				return candidate
			}
		}
	}

	if !taken(name) {
		return name
	}

	core := name
	if i := strings.LastIndexByte(core, '_'); i > 0 && isDigits(core[i+1:]) {
		core = core[:i]
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d", core, n)
		if !taken(candidate) {
			return candidate
		}
	}
}

// isDigits reports whether s holds only ASCII digits. The empty string
// qualifies, so a bare trailing underscore is stripped too.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
