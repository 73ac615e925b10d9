package manifest

import (
	"os"

	"github.com/concave-dev/bumpver/internal/logging"
	"github.com/concave-dev/bumpver/internal/semver"
)

// Request describes a single bump of one manifest file.
type Request struct {
	Path   string // Manifest path, conventionally package.json
	Input  string // Increment kind as typed by the user (canonical or alias)
	DryRun bool   // Compute the new version without writing the file
}

// Result is the success side of an update.
type Result struct {
	Path    string      `json:"path"`
	Kind    semver.Kind `json:"kind"`
	Old     string      `json:"old"`
	New     string      `json:"new"`
	Written bool        `json:"written"`
}

// Update bumps the version in the manifest at path and writes it back.
func Update(path string, kind semver.Kind) (Result, error) {
	return Run(Request{Path: path, Input: string(kind)})
}

// Run executes the read, bump, write pipeline for req. The increment kind is
// resolved before the file is opened, so an invalid kind never reaches the
// filesystem. Any returned error is a *Error.
func Run(req Request) (Result, error) {
	kind, err := semver.ParseKind(req.Input)
	if err != nil {
		logging.Debug("Rejected increment kind %q", req.Input)
		return Result{}, &Error{Kind: InvalidVersionKind, Path: req.Path, Err: err}
	}

	m, mode, err := Load(req.Path)
	if err != nil {
		return Result{}, err
	}

	current, err := m.Version()
	if err != nil {
		return Result{}, &Error{Kind: MalformedVersionField, Path: req.Path, Err: err}
	}

	next, err := semver.Bump(current, kind)
	if err != nil {
		return Result{}, &Error{Kind: MalformedVersionField, Path: req.Path, Err: err}
	}
	logging.Debug("Bumping %s version %s -> %s", kind, current, next)

	result := Result{
		Path: req.Path,
		Kind: kind,
		Old:  current,
		New:  next.String(),
	}

	if err := m.SetVersion(result.New); err != nil {
		return Result{}, &Error{Kind: WriteError, Path: req.Path, Err: err}
	}

	if req.DryRun {
		logging.Debug("Dry run, leaving %s untouched", req.Path)
		return result, nil
	}

	if err := Save(req.Path, m, mode); err != nil {
		return Result{}, err
	}
	result.Written = true

	return result, nil
}

// Load reads and parses the manifest at path. The file mode is returned so
// Save can write the file back with the same permissions.
func Load(path string) (*Manifest, os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, &Error{Kind: FileNotFound, Path: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, &Error{Kind: FileNotFound, Path: path, Err: err}
	}
	logging.Debug("Read %d bytes from %s", len(data), path)

	m, err := Parse(data)
	if err != nil {
		return nil, 0, &Error{Kind: ParseError, Path: path, Err: err}
	}

	return m, info.Mode().Perm(), nil
}

// Save encodes m and replaces the contents of path entirely. The write is not
// atomic; an interrupted write can truncate the file.
func Save(path string, m *Manifest, mode os.FileMode) error {
	data, err := m.Encode()
	if err != nil {
		return &Error{Kind: WriteError, Path: path, Err: err}
	}

	if mode == 0 {
		mode = 0o644
	}

	if err := os.WriteFile(path, data, mode); err != nil {
		return &Error{Kind: WriteError, Path: path, Err: err}
	}
	logging.Debug("Wrote %d bytes to %s", len(data), path)

	return nil
}
