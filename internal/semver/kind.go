package semver

import "fmt"

// Kind selects which version component advances.
type Kind string

const (
	Patch Kind = "patch"
	Minor Kind = "minor"
	Major Kind = "major"
)

// Kinds lists the canonical increment kinds in prompt order.
var Kinds = []Kind{Patch, Minor, Major}

// kindAliases maps the short answers accepted at the prompt to canonical kinds.
// Matching is exact and case-sensitive.
var kindAliases = map[string]Kind{
	"patch": Patch,
	"minor": Minor,
	"major": Major,
	"p":     Patch,
	"min":   Minor,
	"max":   Major,
}

// ParseKind resolves user input to a canonical Kind. Input is matched as-is;
// callers are expected to trim whitespace first.
func ParseKind(input string) (Kind, error) {
	if kind, ok := kindAliases[input]; ok {
		return kind, nil
	}
	return "", fmt.Errorf("%w: %q (expected patch, minor or major)", ErrInvalidKind, input)
}

// IsValid reports whether k is one of the canonical kinds.
func (k Kind) IsValid() bool {
	switch k {
	case Patch, Minor, Major:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}
