package messages

// CLI messages for user-facing commands.
const (
	// RootUse is the CLI command name.
	RootUse   = "htm"
	RootShort = "Install, launch, and smoke-test the hello-time-man Java CLI"

	RootLong = "htm installs the hello-time-man launcher next to its bundled Java archive,\n" +
		"runs the archive through that launcher, and smoke-tests an installation."

	RootFlagRoot    = "Package root containing bin/ and lib/ (defaults to the directory above the executable's bin/, or the working directory)"
	RootFlagVerbose = "Enable debug logging on stderr"
	RootFlagNoColor = "Disable colored output"

	RootResolveRootFailedFmt = "resolve package root: %w"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	InstallUse   = "install"
	InstallShort = "Create bin/ and lib/, verify the bundled archive, and write the launcher"

	LaunchUse   = "launch [args...]"
	LaunchShort = "Run the bundled archive with the Java runtime, forwarding every argument"

	LaunchLong = "launch is the native form of the generated launcher script. It checks the Java\n" +
		"runtime, locates the archive relative to the launcher directory (HTM_LAUNCHER_DIR or the\n" +
		"directory of this executable), and relays the archive's exit code. The package root,\n" +
		"where htm.toml is read, is the parent of that directory. Flags are not interpreted;\n" +
		"every argument is passed to the archive untouched."

	TestUse   = "test"
	TestShort = "Smoke-test the Java runtime, the bundled archive, and the installed launcher"

	RenderUse      = "render"
	RenderShort    = "Print the launcher script that install would write for a platform"
	RenderFlagOS   = "Target operating system (linux, darwin, windows, ...)"
	RenderFlagArch = "Target architecture"
	RenderFlagName = "Launcher name to render"

	ConfigLoadFailedFmt = "load configuration: %w"
)

// Package root messages.
const RootMarkerIsDirFmt = "package root marker %s is a directory"
