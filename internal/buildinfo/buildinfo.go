// Package buildinfo holds the engine's identity as reported over UBI.
package buildinfo

import "fmt"

// Engine identity.
const (
	EngineName = "barragoon"
	AuthorName = "the barragoon authors"

	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)

// Version returns the engine version as "major.minor.patch".
func Version() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}
