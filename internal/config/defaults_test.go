package config

import (
	"testing"

	"github.com/concave-dev/bumpver/internal/logging"
	"github.com/concave-dev/bumpver/internal/validate"
)

// TestDefaultManifestPath validates the default manifest path constant
func TestDefaultManifestPath(t *testing.T) {
	if DefaultManifestPath != "package.json" {
		t.Errorf("DefaultManifestPath = %q, want %q", DefaultManifestPath, "package.json")
	}

	if err := validate.ManifestPath(DefaultManifestPath); err != nil {
		t.Errorf("DefaultManifestPath %q failed validation: %v", DefaultManifestPath, err)
	}
}

// TestDefaultLogLevel validates the default log level is a supported level
func TestDefaultLogLevel(t *testing.T) {
	if err := logging.ValidateLogLevel(DefaultLogLevel); err != nil {
		t.Errorf("DefaultLogLevel %q is not valid: %v", DefaultLogLevel, err)
	}
}
