package messages

// Launcher messages shared by the native launcher and the generated scripts.
const (
	LaunchRuntimeMissingFmt   = "❌ Java runtime %q is not installed or not runnable."
	LaunchRuntimeNeededFmt    = "%s requires Java 17 or newer."
	LaunchPayloadNotFound     = "❌ Could not find the hello-time-man archive."
	LaunchTriedFmt            = "   tried: %s (%s)"
	LaunchReinstallHintFmt    = "Reinstall the package: npm install -g %s"
	LaunchSpawnFailedFmt      = "failed to start %s: %w"
	LaunchResolveDirFailedFmt = "resolve launcher directory: %w"
	LaunchRunnerRequired      = "launch runner is required"
	LaunchConfigRequired      = "launch configuration is required"
	LaunchDirRequired         = "launcher directory is required"

	RunnerCommandRequired = "command name is required"
)
