package assets

import (
	"fmt"
	"regexp"
)

// maxAssetName bounds asset names; they end up in file paths.
const maxAssetName = 64

var assetNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateAssetName accepts plain stems made of letters, digits, '-' and
// '_'. Separators, dots and anything that could escape the asset directory
// are rejected with ErrInvalidAssetName.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case len(name) > maxAssetName:
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidAssetName, maxAssetName)
	case !assetNamePattern.MatchString(name):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
