package sudo

import (
	"strings"

	"github.com/aikaryashala/kitup/exec"
)

// RegisterWindowsNoop registers a pass-through runner with the given provider
// which is used when the windows user has administrator rights.
func RegisterWindowsNoop(provider *Provider) {
	provider.Register(func(runner exec.Runner) (exec.Runner, bool) {
		if !runner.IsWindows() {
			return nil, false
		}
		out, err := runner.ExecOutput(`whoami.exe`)
		if err != nil {
			return nil, false
		}
		parts := strings.Split(out, `\`)
		if strings.ToLower(parts[len(parts)-1]) == "administrator" {
			// user is already the administrator
			return runner, true
		}

		if runner.Exec(`cmd.exe /c 'net user "%USERNAME%" | findstr /B /C:"Local Group Memberships" | findstr /C:"*Administrators"'`) != nil {
			// user is not in the Administrators group
			return nil, false
		}

		out, err = runner.ExecOutput(`reg.exe query "HKLM\SOFTWARE\Microsoft\Windows\CurrentVersion\Policies\System" /v "EnableLUA"`)
		if err != nil {
			return nil, false
		}

		if strings.Contains(out, "0x0") {
			// UAC is disabled and the user is in the Administrators group
			return runner, true
		}

		return nil, false
	})
}
