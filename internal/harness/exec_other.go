//go:build !unix

package harness

// No execute bit to inspect; Windows .cmd launchers run through cmd.exe.
func isExecutable(string) bool {
	return true
}
