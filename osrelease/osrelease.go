// Package osrelease provides detection of the host operating system and
// version.
package osrelease

import (
	"strings"
)

// OSRelease describes the host operating system as in the os-release(5)
// format. On non-linux hosts the fields are filled in from the platform's own
// version tooling.
type OSRelease struct {
	// Name is a string identifying the operating system without a version
	// component, like "Ubuntu" or "Windows".
	Name string
	// Version is a string identifying the operating system version.
	Version string
	// ID is a lower-case string identifying the operating system, like
	// "ubuntu" or "darwin".
	ID string
	// IDLike is a whitespace-separated list of operating system IDs this
	// operating system is compatible with, like "debian" for Ubuntu.
	IDLike string
	// VersionID is a lower-case string identifying the version, like "22.04".
	VersionID string
	// PrettyName is a name suitable for presentation, like
	// "Ubuntu 22.04.3 LTS".
	PrettyName string
	// Extra holds any other fields found in the os-release file.
	Extra map[string]string
}

// String returns a printable representation of the OSRelease.
func (o OSRelease) String() string {
	switch {
	case o.PrettyName != "":
		return o.PrettyName
	case o.Name != "" && o.VersionID != "":
		return o.Name + " " + o.VersionID
	case o.Version != "":
		return o.Name + " " + o.Version
	default:
		return o.Name
	}
}

// IsLike returns true if the operating system is or is compatible with the
// given id.
func (o OSRelease) IsLike(id string) bool {
	if o.ID == id {
		return true
	}
	if id == "linux" && o.ID != "windows" && o.ID != "darwin" {
		return true
	}
	for _, v := range strings.Fields(o.IDLike) {
		if v == id {
			return true
		}
	}
	return false
}
