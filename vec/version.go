package vec

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Version information for the socow vector library.
const (
	// Version is the current library version, in semver form.
	Version = "v0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info provides build information about the library.
type Info struct {
	// Version is the library version string.
	Version string

	// Design names the storage strategy.
	Design string

	// Concurrent reports whether vectors may be shared across goroutines
	// without external synchronization. Always false.
	Concurrent bool
}

// GetInfo returns information about the library.
//
// Example:
//
//	info := vec.GetInfo()
//	fmt.Printf("socow %s (%s)\n", info.Version, info.Design)
func GetInfo() Info {
	return Info{
		Version:    Version,
		Design:     "small-buffer inline storage + copy-on-write shared blocks",
		Concurrent: false,
	}
}

// CheckVersion reports whether this library satisfies the minimum version
// required, given in semver form ("v0.1.0", "v0.1"). It returns an error
// wrapping ErrVersion when required is malformed or newer than Version.
func CheckVersion(required string) error {
	if !semver.IsValid(required) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrVersion, required)
	}
	if semver.Compare(Version, required) < 0 {
		return fmt.Errorf("%w: have %s, need %s", ErrVersion, Version, required)
	}
	return nil
}
