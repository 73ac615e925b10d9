// Package semver implements the version arithmetic behind bumpver.
//
// A Version is a plain major.minor.patch triple of non-negative integers.
// Pre-release and build-metadata suffixes are rejected rather than carried,
// since bumpver only ever produces release versions.
//
// BUMP RULES:
//   - patch: patch+1
//   - minor: minor+1, patch reset to 0
//   - major: major+1, minor and patch reset to 0
//
// Everything in this package is pure: no filesystem, no stdin. The manifest
// package layers the I/O on top.
package semver

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var (
	// ErrMalformedVersion is returned when a version string is not three
	// dot-separated non-negative integers.
	ErrMalformedVersion = errors.New("malformed version")

	// ErrInvalidKind is returned for increment kinds other than patch, minor
	// and major (or one of their aliases).
	ErrInvalidKind = errors.New("invalid version type")
)

// versionRegex matches exactly "<int>.<int>.<int>" with no sign, prefix or suffix
var versionRegex = regexp.MustCompile(`^([0-9]+)\.([0-9]+)\.([0-9]+)$`)

// Version represents a semantic version without pre-release or build metadata.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// Parse parses a "major.minor.patch" string. Leading zeros are accepted and
// dropped ("01.2.3" parses as 1.2.3), matching plain integer parsing.
func Parse(s string) (Version, error) {
	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil {
		return Version{}, fmt.Errorf("%w: %q (expected major.minor.patch)", ErrMalformedVersion, s)
	}

	var parts [3]int
	for i, raw := range matches[1:] {
		n, err := strconv.Atoi(raw)
		if err != nil {
			// Only reachable on overflow, the regex already guarantees digits
			return Version{}, fmt.Errorf("%w: %q component %q out of range", ErrMalformedVersion, s, raw)
		}
		parts[i] = n
	}

	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
}

// String returns the version as "major.minor.patch" with no padding.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Bump returns a new version with the given component incremented and all
// lower components reset to zero. The receiver is never modified.
//
// A component already at math.MaxInt cannot be incremented and is reported
// as ErrMalformedVersion.
func (v Version) Bump(kind Kind) (Version, error) {
	if !kind.IsValid() {
		return v, fmt.Errorf("%w: %q", ErrInvalidKind, string(kind))
	}
	if current := v.component(kind); current == math.MaxInt {
		return v, fmt.Errorf("%w: %s component %d cannot be incremented", ErrMalformedVersion, kind, current)
	}

	switch kind {
	case Patch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	case Minor:
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	default:
		return Version{Major: v.Major + 1}, nil
	}
}

// component returns the field of v that kind increments.
func (v Version) component(kind Kind) int {
	switch kind {
	case Patch:
		return v.Patch
	case Minor:
		return v.Minor
	default:
		return v.Major
	}
}

// Bump parses current and applies the increment rule for kind.
func Bump(current string, kind Kind) (Version, error) {
	v, err := Parse(current)
	if err != nil {
		return Version{}, err
	}
	return v.Bump(kind)
}
