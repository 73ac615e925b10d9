package validate

import "fmt"

// ManifestPath checks that path is set and names a JSON file.
func ManifestPath(path string) error {
	if err := ValidateRequiredString(path, "manifest path"); err != nil {
		return err
	}
	if err := ValidateField(path, "endswith=.json"); err != nil {
		return fmt.Errorf("manifest path '%s' must point to a .json file", path)
	}
	return nil
}
