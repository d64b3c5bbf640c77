package launcher

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rojojun/hello-time-man/internal/messages"
)

// EnvLauncherDir overrides the directory payload candidates are derived from.
const EnvLauncherDir = "HTM_LAUNCHER_DIR"

// ResolveDir returns the launcher directory: HTM_LAUNCHER_DIR when set,
// otherwise the directory of the running executable with symlinks resolved,
// so a launcher linked into node_modules/.bin still finds its package.
func ResolveDir(getenv func(string) string, executable func() (string, error)) (string, error) {
	if getenv != nil {
		if dir := strings.TrimSpace(getenv(EnvLauncherDir)); dir != "" {
			return filepath.Abs(dir)
		}
	}
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf(messages.LaunchResolveDirFailedFmt, err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
