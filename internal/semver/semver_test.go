package semver

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{name: "simple", input: "1.2.3", want: Version{Major: 1, Minor: 2, Patch: 3}},
		{name: "zero", input: "0.0.0", want: Version{}},
		{name: "multi digit", input: "10.20.300", want: Version{Major: 10, Minor: 20, Patch: 300}},
		{name: "leading zeros dropped", input: "01.002.3", want: Version{Major: 1, Minor: 2, Patch: 3}},
		{name: "empty", input: "", wantErr: true},
		{name: "two parts", input: "1.2", wantErr: true},
		{name: "four parts", input: "1.2.3.4", wantErr: true},
		{name: "v prefix", input: "v1.2.3", wantErr: true},
		{name: "prerelease", input: "1.2.3-beta.1", wantErr: true},
		{name: "build metadata", input: "1.2.3+build", wantErr: true},
		{name: "negative", input: "-1.2.3", wantErr: true},
		{name: "non numeric", input: "a.b.c", wantErr: true},
		{name: "whitespace", input: " 1.2.3", wantErr: true},
		{name: "overflow", input: "99999999999999999999.0.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "1.2.3", Version{Major: 1, Minor: 2, Patch: 3}.String())
	assert.Equal(t, "0.0.10", Version{Patch: 10}.String())
}

func TestVersionBump(t *testing.T) {
	base := Version{Major: 4, Minor: 7, Patch: 9}

	tests := []struct {
		kind Kind
		want Version
	}{
		{kind: Patch, want: Version{Major: 4, Minor: 7, Patch: 10}},
		{kind: Minor, want: Version{Major: 4, Minor: 8, Patch: 0}},
		{kind: Major, want: Version{Major: 5, Minor: 0, Patch: 0}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := base.Bump(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	// Receiver is a value, bumping must not leak into it
	assert.Equal(t, Version{Major: 4, Minor: 7, Patch: 9}, base)
}

func TestVersionBumpOverflow(t *testing.T) {
	tests := []struct {
		name string
		v    Version
		kind Kind
	}{
		{name: "patch", v: Version{Major: 1, Minor: 2, Patch: math.MaxInt}, kind: Patch},
		{name: "minor", v: Version{Major: 1, Minor: math.MaxInt, Patch: 3}, kind: Minor},
		{name: "major", v: Version{Major: math.MaxInt, Minor: 2, Patch: 3}, kind: Major},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.Bump(tt.kind)
			require.ErrorIs(t, err, ErrMalformedVersion)
			assert.Equal(t, tt.v, got)
		})
	}
}

func TestBumpLargestComponent(t *testing.T) {
	largest := strconv.Itoa(math.MaxInt)

	// Parses fine, but only the components below it can still move
	v, err := Parse(largest + ".0.0")
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, v.Major)

	_, err = Bump(largest+".0.0", Major)
	require.ErrorIs(t, err, ErrMalformedVersion)

	got, err := Bump(largest+".0.0", Minor)
	require.NoError(t, err)
	assert.Equal(t, Version{Major: math.MaxInt, Minor: 1}, got)
}

func TestVersionBumpInvalidKind(t *testing.T) {
	v := Version{Major: 1, Minor: 2, Patch: 3}

	got, err := v.Bump(Kind("banana"))
	require.ErrorIs(t, err, ErrInvalidKind)
	assert.Equal(t, v, got)
}

func TestBumpIncrementRule(t *testing.T) {
	versions := []Version{
		{}, {Patch: 1}, {Minor: 1}, {Major: 1},
		{Major: 1, Minor: 2, Patch: 3}, {Major: 0, Minor: 0, Patch: 9},
		{Major: 12, Minor: 0, Patch: 99}, {Major: 3, Minor: 41, Patch: 0},
	}

	for _, v := range versions {
		patch, err := Bump(v.String(), Patch)
		require.NoError(t, err)
		assert.Equal(t, Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, patch)

		minor, err := Bump(v.String(), Minor)
		require.NoError(t, err)
		assert.Equal(t, Version{Major: v.Major, Minor: v.Minor + 1}, minor)

		major, err := Bump(v.String(), Major)
		require.NoError(t, err)
		assert.Equal(t, Version{Major: v.Major + 1}, major)
	}
}

func TestBumpScenarios(t *testing.T) {
	got, err := Bump("1.2.3", Minor)
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", got.String())

	got, err = Bump("0.0.9", Patch)
	require.NoError(t, err)
	assert.Equal(t, "0.0.10", got.String())
}

func TestBumpIsNotIdempotent(t *testing.T) {
	first, err := Bump("1.0.0", Patch)
	require.NoError(t, err)

	second, err := Bump(first.String(), Patch)
	require.NoError(t, err)

	assert.Equal(t, "1.0.1", first.String())
	assert.Equal(t, "1.0.2", second.String())
}

func TestBumpMalformed(t *testing.T) {
	_, err := Bump("NaN.0.0", Major)
	require.ErrorIs(t, err, ErrMalformedVersion)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{input: "patch", want: Patch},
		{input: "minor", want: Minor},
		{input: "major", want: Major},
		{input: "p", want: Patch},
		{input: "min", want: Minor},
		{input: "max", want: Major},
		{input: "Patch", wantErr: true},
		{input: "MAJOR", wantErr: true},
		{input: "banana", wantErr: true},
		{input: "", wantErr: true},
		{input: " patch", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestKindIsValid(t *testing.T) {
	for _, k := range Kinds {
		assert.True(t, k.IsValid(), k.String())
	}
	assert.False(t, Kind("p").IsValid())
	assert.False(t, Kind("").IsValid())
}
