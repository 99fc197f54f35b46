package osrelease

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/aikaryashala/kitup/exec"
	"github.com/aikaryashala/kitup/plumbing"
)

// ErrNotRecognized is returned when the host operating system can not be
// identified.
var ErrNotRecognized = errors.New("operating system not recognized")

// Factory is an alias for plumbing.Factory specialized for OSRelease.
type Factory = plumbing.Factory[exec.ContextRunner, *OSRelease]

// Provider is an alias for plumbing.Provider specialized for OSRelease.
type Provider = plumbing.Provider[exec.ContextRunner, *OSRelease]

// NewProvider creates a new instance of the specialized Provider.
func NewProvider() *Provider {
	return plumbing.NewProvider[exec.ContextRunner, *OSRelease](ErrNotRecognized)
}

// DefaultProvider is the default provider of OS version information.
var DefaultProvider = sync.OnceValue(func() *Provider {
	provider := NewProvider()
	RegisterWindows(provider)
	RegisterDarwin(provider)
	RegisterLinux(provider)
	return provider
})

// Get resolves the host operating system information using the default
// provider.
func Get(runner exec.ContextRunner) (*OSRelease, error) {
	return DefaultProvider().Get(runner)
}

// RegisterLinux registers the linux os-release resolver to a provider. The
// os-release file is read from the standard locations with an lsb_release
// fallback for systems that lack the file.
func RegisterLinux(provider *Provider) {
	provider.Register(func(c exec.ContextRunner) (*OSRelease, bool) {
		ctx := context.Background()
		if c.IsWindows() {
			return nil, false
		}
		if c.ExecContext(ctx, "uname | grep -q Linux") != nil {
			return nil, false
		}
		output, err := c.ExecOutputContext(ctx, `cat /etc/os-release || cat /usr/lib/os-release || (command -v lsb_release >/dev/null 2>&1 && printf "NAME=%s\nID=%s\nVERSION_ID=%s\n" "$(lsb_release -sd | cut -d' ' -f1)" "$(lsb_release -si | tr '[:upper:]' '[:lower:]')" "$(lsb_release -sr)")`)
		if err != nil {
			return nil, false
		}
		osr, err := DecodeString(output)
		if err != nil {
			return nil, false
		}
		return osr, true
	})
}

// RegisterDarwin registers the macOS version resolver to a provider.
func RegisterDarwin(provider *Provider) {
	provider.Register(func(c exec.ContextRunner) (*OSRelease, bool) {
		ctx := context.Background()
		if c.IsWindows() {
			return nil, false
		}
		if c.ExecContext(ctx, "uname | grep -q Darwin") != nil {
			return nil, false
		}
		version, err := c.ExecOutputContext(ctx, "sw_vers -productVersion")
		if err != nil {
			return nil, false
		}
		return &OSRelease{
			ID:        "darwin",
			IDLike:    "darwin",
			Name:      "macOS",
			Version:   version,
			VersionID: version,
		}, true
	})
}

// RegisterWindows registers the windows version resolver to a provider.
func RegisterWindows(provider *Provider) {
	provider.Register(func(c exec.ContextRunner) (*OSRelease, bool) {
		if !c.IsWindows() {
			return nil, false
		}
		osr := &OSRelease{
			ID:     "windows",
			IDLike: "windows",
			Name:   "Windows",
		}
		// output is like "Microsoft Windows [Version 10.0.22621.1]"
		out, err := c.ExecOutputContext(context.Background(), "ver")
		if err != nil {
			return osr, true
		}
		if _, rest, found := strings.Cut(out, "[Version "); found {
			osr.Version = strings.TrimSuffix(strings.TrimSpace(rest), "]")
			osr.VersionID = osr.Version
		}
		osr.PrettyName = strings.TrimSpace(out)
		return osr, true
	})
}
