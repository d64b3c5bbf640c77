package layout

import (
	"errors"
	"os"
	"path/filepath"
)

// Strategy names, in default probing order.
const (
	StrategySiblingLib     = "sibling-lib"
	StrategyNodeModulesBin = "node-modules-bin"
	StrategyGlobalRoot     = "global-root"
)

// ErrPayloadNotFound is returned when no candidate path exists.
var ErrPayloadNotFound = errors.New("payload archive not found in any candidate location")

// Input is everything a strategy may derive a candidate from.
type Input struct {
	LauncherDir string
	PackageName string
	PayloadFile string
	// GlobalRoot is filled in lazily, only for strategies that need it.
	GlobalRoot string
}

// Strategy derives one candidate payload path. Candidate must be pure.
type Strategy struct {
	Name            string
	NeedsGlobalRoot bool
	Candidate       func(in Input) string
}

// Candidate is a probed path and the strategy that produced it.
type Candidate struct {
	Strategy string
	Path     string
}

// DefaultStrategies returns the probing order used by installed launchers:
// the package's own lib/ next to bin/, the package inside node_modules when
// the launcher sits in node_modules/.bin, then the global module root.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{
			Name: StrategySiblingLib,
			Candidate: func(in Input) string {
				return filepath.Join(in.LauncherDir, "..", LibDirName, in.PayloadFile)
			},
		},
		{
			Name: StrategyNodeModulesBin,
			Candidate: func(in Input) string {
				return filepath.Join(in.LauncherDir, "..", in.PackageName, LibDirName, in.PayloadFile)
			},
		},
		{
			Name:            StrategyGlobalRoot,
			NeedsGlobalRoot: true,
			Candidate: func(in Input) string {
				if in.GlobalRoot == "" {
					return ""
				}
				return filepath.Join(in.GlobalRoot, in.PackageName, LibDirName, in.PayloadFile)
			},
		},
	}
}

// Resolver evaluates strategies in order and returns the first existing candidate.
type Resolver struct {
	Strategies []Strategy
	// Exists reports whether a candidate path is a usable file.
	Exists func(path string) bool
	// GlobalRoot is called at most once, and only when a strategy needs it.
	GlobalRoot func() string
}

// Resolve returns the first matching candidate and every candidate probed.
func (r Resolver) Resolve(in Input) (Candidate, []Candidate, error) {
	exists := r.Exists
	if exists == nil {
		exists = FileExists
	}
	strategies := r.Strategies
	if strategies == nil {
		strategies = DefaultStrategies()
	}

	globalRootLoaded := in.GlobalRoot != ""
	tried := make([]Candidate, 0, len(strategies))
	for _, strategy := range strategies {
		if strategy.NeedsGlobalRoot && !globalRootLoaded {
			if r.GlobalRoot != nil {
				in.GlobalRoot = r.GlobalRoot()
			}
			globalRootLoaded = true
		}
		path := strategy.Candidate(in)
		if path == "" {
			continue
		}
		candidate := Candidate{Strategy: strategy.Name, Path: filepath.Clean(path)}
		tried = append(tried, candidate)
		if exists(candidate.Path) {
			return candidate, tried, nil
		}
	}
	return Candidate{}, tried, ErrPayloadNotFound
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
