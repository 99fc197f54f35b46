package osrelease_test

import (
	"testing"

	"github.com/aikaryashala/kitup/kituptest"
	"github.com/aikaryashala/kitup/osrelease"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ubuntuOSRelease = `PRETTY_NAME="Ubuntu 22.04.3 LTS"
NAME="Ubuntu"
VERSION_ID="22.04"
VERSION="22.04.3 LTS (Jammy Jellyfish)"
ID=ubuntu
ID_LIKE=debian
HOME_URL="https://www.ubuntu.com/"
`

func TestDecodeString(t *testing.T) {
	osr, err := osrelease.DecodeString(ubuntuOSRelease)
	require.NoError(t, err)
	assert.Equal(t, "Ubuntu", osr.Name)
	assert.Equal(t, "ubuntu", osr.ID)
	assert.Equal(t, "debian", osr.IDLike)
	assert.Equal(t, "22.04", osr.VersionID)
	assert.Equal(t, "Ubuntu 22.04.3 LTS", osr.PrettyName)
	assert.Equal(t, "https://www.ubuntu.com/", osr.Extra["HOME_URL"])
	assert.Equal(t, "Ubuntu 22.04.3 LTS", osr.String())
}

func TestDecodeStringArch(t *testing.T) {
	osr, err := osrelease.DecodeString("NAME=\"Arch Linux\"\nID=arch\n")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0", osr.Version, "arch has no version")
}

func TestDecodeStringMissingFields(t *testing.T) {
	_, err := osrelease.DecodeString("VERSION_ID=1.0\n")
	require.ErrorIs(t, err, osrelease.ErrParseOSRelease)
}

func TestIsLike(t *testing.T) {
	ubuntu := osrelease.OSRelease{ID: "ubuntu", IDLike: "debian"}
	assert.True(t, ubuntu.IsLike("ubuntu"))
	assert.True(t, ubuntu.IsLike("debian"))
	assert.True(t, ubuntu.IsLike("linux"))
	assert.False(t, ubuntu.IsLike("fedora"))

	darwin := osrelease.OSRelease{ID: "darwin", IDLike: "darwin"}
	assert.True(t, darwin.IsLike("darwin"))
	assert.False(t, darwin.IsLike("linux"))

	windows := osrelease.OSRelease{ID: "windows", IDLike: "windows"}
	assert.False(t, windows.IsLike("linux"))
}

func TestGetLinux(t *testing.T) {
	runner := kituptest.NewMockRunner()
	runner.AddCommand(kituptest.Equal("uname | grep -q Linux"), func(_ *kituptest.A) error { return nil })
	runner.AddCommandOutput(kituptest.HasPrefix("cat /etc/os-release"), ubuntuOSRelease)
	runner.AddCommandFailure(kituptest.HasPrefix("uname | grep -q Darwin"), assert.AnError)

	osr, err := osrelease.Get(runner)
	require.NoError(t, err)
	assert.Equal(t, "ubuntu", osr.ID)
}

func TestGetDarwin(t *testing.T) {
	runner := kituptest.NewMockRunner()
	runner.AddCommandFailure(kituptest.Equal("uname | grep -q Linux"), assert.AnError)
	runner.AddCommand(kituptest.Equal("uname | grep -q Darwin"), func(_ *kituptest.A) error { return nil })
	runner.AddCommandOutput(kituptest.Equal("sw_vers -productVersion"), "14.2.1\n")

	osr, err := osrelease.Get(runner)
	require.NoError(t, err)
	assert.Equal(t, "darwin", osr.ID)
	assert.Equal(t, "14.2.1", osr.Version)
}

func TestGetWindows(t *testing.T) {
	runner := kituptest.NewMockRunner()
	runner.Windows = true
	runner.AddCommandOutput(kituptest.Equal("ver"), "Microsoft Windows [Version 10.0.22621.1]\n")

	osr, err := osrelease.Get(runner)
	require.NoError(t, err)
	assert.Equal(t, "windows", osr.ID)
	assert.Equal(t, "10.0.22621.1", osr.Version)
}
