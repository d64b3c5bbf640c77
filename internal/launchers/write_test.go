package launchers

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rojojun/hello-time-man/internal/config"
	"github.com/rojojun/hello-time-man/internal/platform"
)

var (
	linux   = platform.Descriptor{OS: platform.Linux, Arch: "amd64"}
	darwin  = platform.Descriptor{OS: platform.Darwin, Arch: "arm64"}
	windows = platform.Descriptor{OS: platform.Windows, Arch: "amd64"}
)

func defaultConfig() *config.Config {
	cfg := config.Default()
	return &cfg
}

func TestWriteShellLaunchers(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	t.Parallel()
	binDir := t.TempDir()

	written, err := Write(RealSystem{}, linux, defaultConfig(), binDir)
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("expected two launchers, got %d", len(written))
	}
	for _, name := range []string{"hello", "hello-time-man"} {
		path := filepath.Join(binDir, name)
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
		if info.Mode().Perm() != 0o755 {
			t.Fatalf("expected 0755 permissions on %s, got %o", name, info.Mode().Perm())
		}
	}
	for _, w := range written {
		if w.Replaced || w.Unchanged || w.ChmodErr != nil {
			t.Fatalf("unexpected state for fresh install: %+v", w)
		}
	}
}

func TestWriteShellLauncherContent(t *testing.T) {
	t.Parallel()
	data, err := Render(linux, defaultConfig(), "hello")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	script := string(data)

	if !strings.HasPrefix(script, "#!/bin/sh\n") {
		t.Fatal("shell launcher missing shebang")
	}
	for _, want := range []string{
		"package_name='hello-time-man'",
		"payload_file='hello-time-man.jar'",
		"runtime=${HTM_JAVA:-}",
		"runtime='java'",
		"npm='npm'",
		`"$runtime" '-version' >/dev/null 2>&1`,
		`"$launcher_dir/../lib/$payload_file"`,
		`"$launcher_dir/../$package_name/lib/$payload_file"`,
		`global_root=$("$npm" 'root' '-g' 2>/dev/null)`,
		`global_root='/usr/local/lib/node_modules'`,
		`exec "$runtime" -jar "$payload" "$@"`,
		"sudo apt install default-jre",
		"npm install -g hello-time-man",
	} {
		if !strings.Contains(script, want) {
			t.Fatalf("shell launcher missing %q:\n%s", want, script)
		}
	}
	if strings.Contains(script, "brew install") {
		t.Fatal("linux launcher must not carry macOS remediation")
	}

	mac, err := Render(darwin, defaultConfig(), "hello")
	if err != nil {
		t.Fatalf("Render darwin error: %v", err)
	}
	if !strings.Contains(string(mac), "brew install openjdk") {
		t.Fatal("macOS launcher missing Homebrew remediation")
	}
}

func TestRenderBatchLauncher(t *testing.T) {
	t.Parallel()
	data, err := Render(windows, defaultConfig(), "hello")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	script := string(data)
	if !strings.HasPrefix(script, "@echo off\r\n") {
		t.Fatal("batch launcher must start with @echo off and use CRLF")
	}
	if strings.Contains(strings.ReplaceAll(script, "\r\n", ""), "\n") {
		t.Fatal("batch launcher has bare LF line endings")
	}
	for _, want := range []string{
		`set "HTM_RUNTIME=java"`,
		`"%HTM_RUNTIME%" -version >nul 2>&1`,
		`set "HTM_PKG=hello-time-man"`,
		`set "HTM_FILE=hello-time-man.jar"`,
		`"%~dp0..\lib\%HTM_FILE%"`,
		`"%~dp0..\%HTM_PKG%\lib\%HTM_FILE%"`,
		`call "%HTM_PM%" root -g 2^>nul`,
		`set "HTM_GLOBAL_ROOT=%APPDATA%\npm\node_modules"`,
		`"%HTM_RUNTIME%" -jar "%HTM_PAYLOAD%" %*`,
		`if "%HTM_EXIT%"=="9009" exit /b 1`,
		"exit /b %HTM_EXIT%",
		"winget install Microsoft.OpenJDK.17",
	} {
		if !strings.Contains(script, want) {
			t.Fatalf("batch launcher missing %q:\n%s", want, script)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()
	for _, desc := range []platform.Descriptor{linux, darwin, windows} {
		first, err := Render(desc, defaultConfig(), "hello")
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		second, err := Render(desc, defaultConfig(), "hello")
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if string(first) != string(second) {
			t.Fatalf("render for %s is not deterministic", desc)
		}
	}
}

func TestRenderUsesConfiguredGlobalRoot(t *testing.T) {
	t.Parallel()
	cfg := defaultConfig()
	cfg.PackageManager.GlobalRoot = "/home/me/.npm-global/lib/node_modules"
	data, err := Render(linux, cfg, "hello")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(string(data), "global_root='/home/me/.npm-global/lib/node_modules'") {
		t.Fatal("expected configured global root fallback")
	}
}

func TestRenderQuotesUnsafeText(t *testing.T) {
	t.Parallel()
	cfg := defaultConfig()
	cfg.Package.Name = "o'brien"
	data, err := Render(linux, cfg, "hello")
	if err != nil {
		t.Fatalf("expected quoted package name to render valid shell: %v", err)
	}
	if !strings.Contains(string(data), `'\''`) {
		t.Fatal("expected single quote to be escaped")
	}
}

func TestRenderBatchEscapesPercentAndMetacharacters(t *testing.T) {
	t.Parallel()
	cfg := defaultConfig()
	cfg.Payload.File = "time%PATH%&man.jar"
	data, err := Render(windows, cfg, "hello")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	script := string(data)
	if !strings.Contains(script, `set "HTM_FILE=time%%PATH%%&man.jar"`) {
		t.Fatalf("payload file not quoted for cmd.exe:\n%s", script)
	}
	if !strings.Contains(script, "rem Runs time%%PATH%%^&man.jar") {
		t.Fatalf("payload file not escaped in comment:\n%s", script)
	}
}

func TestValidateShellRejectsBrokenScript(t *testing.T) {
	t.Parallel()
	if err := ValidateShell("broken", []byte("if [ -f x ]; then\n  echo\n")); err == nil {
		t.Fatal("expected parse error for unterminated if")
	}
}

func TestReinstallReplacesAndMatchesFreshInstall(t *testing.T) {
	t.Parallel()
	binDir := t.TempDir()
	path := filepath.Join(binDir, "hello")
	if err := os.WriteFile(path, []byte("#!/bin/sh\necho stale\n"), 0o755); err != nil {
		t.Fatalf("seed: %v", err)
	}

	written, err := Write(RealSystem{}, linux, defaultConfig(), binDir)
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !written[0].Replaced || written[0].Diff == "" {
		t.Fatalf("expected replacement with diff, got %+v", written[0])
	}
	if !strings.Contains(written[0].Diff, "-echo stale") {
		t.Fatalf("diff should show removed line:\n%s", written[0].Diff)
	}

	fresh, err := Render(linux, defaultConfig(), "hello")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(fresh) {
		t.Fatal("reinstalled launcher differs from a fresh render")
	}

	again, err := Write(RealSystem{}, linux, defaultConfig(), binDir)
	if err != nil {
		t.Fatalf("second Write error: %v", err)
	}
	if !again[0].Unchanged || again[0].Replaced {
		t.Fatalf("expected unchanged launcher on identical reinstall, got %+v", again[0])
	}
}

func TestWriteDirectoryMissing(t *testing.T) {
	t.Parallel()
	binDir := filepath.Join(t.TempDir(), "missing")
	if _, err := Write(RealSystem{}, linux, defaultConfig(), binDir); err == nil {
		t.Fatal("expected error when bin directory does not exist")
	}
}

// mockSystem implements System for testing.
type mockSystem struct {
	ReadFileFunc        func(path string) ([]byte, error)
	WriteFileAtomicFunc func(path string, data []byte, perm os.FileMode) error
	ChmodFunc           func(path string, mode os.FileMode) error
	chmods              []string
}

func (m *mockSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(path)
	}
	return nil, os.ErrNotExist
}

func (m *mockSystem) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if m.WriteFileAtomicFunc != nil {
		return m.WriteFileAtomicFunc(path, data, perm)
	}
	return nil
}

func (m *mockSystem) Chmod(path string, mode os.FileMode) error {
	m.chmods = append(m.chmods, path)
	if m.ChmodFunc != nil {
		return m.ChmodFunc(path, mode)
	}
	return nil
}

func TestWriteChmodFailureIsReported(t *testing.T) {
	t.Parallel()
	sys := &mockSystem{
		ChmodFunc: func(string, os.FileMode) error { return errors.New("operation not permitted") },
	}
	written, err := Write(sys, linux, defaultConfig(), "/pkg/bin")
	if err != nil {
		t.Fatalf("chmod failure must not fail the write: %v", err)
	}
	for _, w := range written {
		if w.ChmodErr == nil {
			t.Fatalf("expected ChmodErr on %s", w.Path)
		}
	}
}

func TestWriteSkipsChmodOnWindows(t *testing.T) {
	t.Parallel()
	var paths []string
	sys := &mockSystem{
		WriteFileAtomicFunc: func(path string, data []byte, perm os.FileMode) error {
			paths = append(paths, path)
			return nil
		},
	}
	if _, err := Write(sys, windows, defaultConfig(), "bin"); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if len(sys.chmods) != 0 {
		t.Fatalf("expected no chmod on windows, got %v", sys.chmods)
	}
	want := []string{filepath.Join("bin", "hello.cmd"), filepath.Join("bin", "hello-time-man.cmd")}
	if strings.Join(paths, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected paths %v", paths)
	}
}

func TestWriteFileError(t *testing.T) {
	t.Parallel()
	sys := &mockSystem{
		WriteFileAtomicFunc: func(path string, data []byte, perm os.FileMode) error {
			if filepath.Base(path) == "hello-time-man" {
				return errors.New("write fail")
			}
			return nil
		},
	}
	written, err := Write(sys, linux, defaultConfig(), "bin")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(written) != 1 {
		t.Fatalf("expected the first launcher to be reported, got %d", len(written))
	}
}

func TestWriteReadExistingError(t *testing.T) {
	t.Parallel()
	sys := &mockSystem{
		ReadFileFunc: func(string) ([]byte, error) { return nil, errors.New("permission denied") },
	}
	if _, err := Write(sys, linux, defaultConfig(), "bin"); err == nil {
		t.Fatal("expected error when existing launcher cannot be read")
	}
}
