package packagemanager_test

import (
	"context"
	"testing"

	"github.com/aikaryashala/kitup/kituptest"
	"github.com/aikaryashala/kitup/packagemanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAptResolution(t *testing.T) {
	runner := kituptest.NewMockRunner()
	runner.ErrDefault = assert.AnError
	runner.AddCommand(kituptest.Equal("command -v apt-get"), func(_ *kituptest.A) error { return nil })

	service := packagemanager.NewService(packagemanager.DefaultProvider(), runner)
	pm, err := service.GetPackageManager()
	require.NoError(t, err)
	assert.Equal(t, "apt", pm.Name())
}

func TestAptCommands(t *testing.T) {
	ctx := context.Background()
	runner := kituptest.NewMockRunner()
	runner.AddCommand(kituptest.HasPrefix("DEBIAN_FRONTEND=noninteractive"), func(_ *kituptest.A) error { return nil })

	pm := &packagemanager.Apt{ContextRunner: runner}

	require.NoError(t, pm.Update(ctx))
	kituptest.ReceivedEqual(t, runner, "DEBIAN_FRONTEND=noninteractive apt-get update -y")

	require.NoError(t, pm.Install(ctx, "lldb-15", "python3-lldb-15", "curl"))
	kituptest.ReceivedContains(t, runner, "apt-get install -y lldb-15 python3-lldb-15 curl")
}

func TestUniversalManagerCommands(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		probe   string
		install string
	}{
		{probe: "command -v apk", install: "apk add curl"},
		{probe: "command -v dnf", install: "dnf install -y curl"},
		{probe: "command -v pacman", install: "pacman -S --noconfirm curl"},
		{probe: "command -v zypper", install: "zypper install -y curl"},
		{probe: "command -v brew", install: "brew install curl"},
	}

	for _, tc := range cases {
		t.Run(tc.probe, func(t *testing.T) {
			runner := kituptest.NewMockRunner()
			runner.ErrDefault = assert.AnError
			runner.AddCommand(kituptest.Equal(tc.probe), func(_ *kituptest.A) error { return nil })
			runner.AddCommand(kituptest.Equal(tc.install), func(_ *kituptest.A) error { return nil })

			pm, err := packagemanager.DefaultProvider().Get(runner)
			require.NoError(t, err)

			require.NoError(t, pm.Install(ctx, "curl"))
			kituptest.ReceivedEqual(t, runner, tc.install)
		})
	}
}

func TestWingetCommands(t *testing.T) {
	ctx := context.Background()
	runner := kituptest.NewMockRunner()
	runner.Windows = true
	runner.AddCommand(kituptest.HasPrefix("where.exe winget"), func(_ *kituptest.A) error { return nil })
	runner.AddCommandFailure(kituptest.HasPrefix("where.exe choco"), assert.AnError)
	runner.AddCommandFailure(kituptest.HasPrefix("where.exe scoop"), assert.AnError)

	service := packagemanager.NewService(packagemanager.DefaultProvider(), runner)
	pm, err := service.GetPackageManager()
	require.NoError(t, err)
	assert.Equal(t, "winget", pm.Name())

	require.NoError(t, pm.Install(ctx, "Python.Python.3.12"))
	kituptest.ReceivedEqual(t, runner, "winget install --id Python.Python.3.12 -e --accept-package-agreements --accept-source-agreements")
}

func TestNoPackageManager(t *testing.T) {
	runner := kituptest.NewMockRunner()
	runner.ErrDefault = assert.AnError

	service := packagemanager.NewService(packagemanager.DefaultProvider(), runner)
	_, err := service.GetPackageManager()
	require.ErrorIs(t, err, packagemanager.ErrNoPackageManager)

	null := service.PackageManager()
	assert.Equal(t, "none", null.Name())
	require.Error(t, null.Install(context.Background(), "anything"))
}
