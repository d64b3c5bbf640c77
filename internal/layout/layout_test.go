package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rojojun/hello-time-man/internal/config"
	"github.com/rojojun/hello-time-man/internal/platform"
)

func TestNew(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	root := filepath.Join("opt", "pkg")

	l := New(root, &cfg, platform.Descriptor{OS: platform.Linux})
	assert.Equal(t, filepath.Join(root, "bin"), l.BinDir)
	assert.Equal(t, filepath.Join(root, "lib"), l.LibDir)
	assert.Equal(t, filepath.Join(root, "lib", "hello-time-man.jar"), l.PayloadPath)
	assert.Equal(t, []string{
		filepath.Join(root, "bin", "hello"),
		filepath.Join(root, "bin", "hello-time-man"),
	}, l.Launchers)
	assert.Equal(t, filepath.Join(root, "bin", "hello"), l.PrimaryLauncher())

	win := New(root, &cfg, platform.Descriptor{OS: platform.Windows})
	assert.Equal(t, filepath.Join(root, "bin", "hello.cmd"), win.PrimaryLauncher())

	assert.Empty(t, Layout{}.PrimaryLauncher())
}

func existsIn(paths ...string) func(string) bool {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[filepath.Clean(p)] = true
	}
	return func(p string) bool { return set[p] }
}

func input(dir string) Input {
	return Input{LauncherDir: dir, PackageName: "hello-time-man", PayloadFile: "hello-time-man.jar"}
}

func TestResolveSiblingLib(t *testing.T) {
	t.Parallel()
	bin := filepath.Join("/", "pkg", "bin")
	want := filepath.Join("/", "pkg", "lib", "hello-time-man.jar")
	globalCalls := 0
	r := Resolver{
		Exists:     existsIn(want),
		GlobalRoot: func() string { globalCalls++; return "/global" },
	}

	got, tried, err := r.Resolve(input(bin))
	require.NoError(t, err)
	assert.Equal(t, Candidate{Strategy: StrategySiblingLib, Path: want}, got)
	assert.Len(t, tried, 1)
	assert.Zero(t, globalCalls, "global root must not be queried when a local candidate matches")
}

func TestResolveNodeModulesBin(t *testing.T) {
	t.Parallel()
	bin := filepath.Join("/", "proj", "node_modules", ".bin")
	want := filepath.Join("/", "proj", "node_modules", "hello-time-man", "lib", "hello-time-man.jar")
	r := Resolver{Exists: existsIn(want)}

	got, tried, err := r.Resolve(input(bin))
	require.NoError(t, err)
	assert.Equal(t, StrategyNodeModulesBin, got.Strategy)
	assert.Equal(t, want, got.Path)
	assert.Len(t, tried, 2)
}

func TestResolveGlobalRootQueriedOnce(t *testing.T) {
	t.Parallel()
	global := filepath.Join("/", "usr", "local", "lib", "node_modules")
	want := filepath.Join(global, "hello-time-man", "lib", "hello-time-man.jar")
	calls := 0
	strategies := append(DefaultStrategies(), Strategy{
		Name:            "second-global",
		NeedsGlobalRoot: true,
		Candidate:       func(in Input) string { return filepath.Join(in.GlobalRoot, "other.jar") },
	})
	r := Resolver{
		Strategies: strategies,
		Exists:     existsIn(filepath.Join(global, "other.jar")),
		GlobalRoot: func() string { calls++; return global },
	}

	got, tried, err := r.Resolve(input(filepath.Join("/", "somewhere", "bin")))
	require.NoError(t, err)
	assert.Equal(t, "second-global", got.Strategy)
	assert.Equal(t, want, tried[2].Path)
	assert.Equal(t, 1, calls)
}

func TestResolveNotFound(t *testing.T) {
	t.Parallel()
	r := Resolver{
		Exists:     func(string) bool { return false },
		GlobalRoot: func() string { return "" },
	}
	_, tried, err := r.Resolve(input(filepath.Join("/", "x", "bin")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPayloadNotFound))
	// the global-root strategy yields no candidate without a root
	assert.Len(t, tried, 2)
}

func TestResolveOrderIsRespected(t *testing.T) {
	t.Parallel()
	bin := filepath.Join("/", "pkg", "bin")
	sibling := filepath.Join("/", "pkg", "lib", "hello-time-man.jar")
	nodeModules := filepath.Join("/", "pkg", "hello-time-man", "lib", "hello-time-man.jar")
	r := Resolver{Exists: existsIn(sibling, nodeModules)}

	got, _, err := r.Resolve(input(bin))
	require.NoError(t, err)
	assert.Equal(t, StrategySiblingLib, got.Strategy)
}

func TestResolveDefaultsToFilesystem(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	bin := filepath.Join(root, "bin")
	require.NoError(t, os.MkdirAll(bin, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "lib"), 0o755))
	payload := filepath.Join(root, "lib", "hello-time-man.jar")
	require.NoError(t, os.WriteFile(payload, []byte("jar"), 0o644))

	got, _, err := Resolver{}.Resolve(input(bin))
	require.NoError(t, err)
	assert.Equal(t, payload, got.Path)
}

func TestFileExists(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))
}
