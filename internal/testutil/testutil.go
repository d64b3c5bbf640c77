package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return WriteScript(t, dir, name, fmt.Sprintf("exit %d\n", exitCode))
}

// WriteScript writes an executable /bin/sh script with body after the shebang.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteScript(t *testing.T, dir string, name string, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte("#!/bin/sh\n" + body)
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// WriteJavaStub writes a fake java runtime into dir. It exits 0 for -version,
// otherwise appends its arguments (one per line, then "--") to argsFile and
// exits with exitCode. It returns the stub path.
func WriteJavaStub(t *testing.T, dir string, argsFile string, exitCode int) string {
	t.Helper()
	body := fmt.Sprintf(`if [ "$1" = "-version" ]; then
  echo 'openjdk version "17.0.2"' >&2
  exit 0
fi
for arg in "$@"; do
  printf '%%s\n' "$arg" >> '%s'
done
echo '--' >> '%s'
echo "payload ran"
exit %d
`, argsFile, argsFile, exitCode)
	return WriteScript(t, dir, "java", body)
}

// SkipOnWindows skips tests that depend on /bin/sh stubs.
func SkipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}
}

// PrependPath puts dir first on PATH for the duration of the test.
func PrependPath(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}
