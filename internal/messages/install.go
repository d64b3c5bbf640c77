package messages

// Installer messages.
const (
	InstallRootRequired   = "package root is required"
	InstallSystemRequired = "install system is required"
	InstallConfigRequired = "install configuration is required"

	InstallStartFmt             = "🕐 Installing %s...\n"
	InstallCreateDirFailedFmt   = "failed to create directory %s: %w"
	InstallStatPayloadFailedFmt = "failed to stat payload %s: %w"
	InstallPayloadMissingFmt    = "payload archive not found in package (expected at %s)"
	InstallPayloadIsDirFmt      = "payload path %s is a directory"
	InstallPackagingErrorFmt    = "❌ Error: %v"
	InstallPackagingHint        = "This is a packaging issue. Please report it at:"
	InstallPayloadSizeFmt       = "📦 Payload archive: %s\n📊 Payload size: %dKB\n"
	InstallLauncherWrittenFmt   = "✅ Launcher written: %s\n"
	InstallLauncherReplacedFmt  = "✅ Launcher replaced: %s\n"
	InstallLauncherUnchangedFmt = "✅ Launcher up to date: %s\n"
	InstallChmodGranted         = "✅ Execute permission granted"
	InstallChmodWarnFmt         = "could not set execute permission on %s: %v (run chmod 755 manually)"
	InstallWarningFmt           = "⚠️  %s\n"
	InstallCompleted            = "✅ Installation completed!"

	InstallUsageFmt = "\n🚀 Usage:\n" +
		"  %[1]s                          # Show current time\n" +
		"  %[1]s --help                   # Show help\n" +
		"  %[1]s --format short           # Short format\n" +
		"  %[1]s --timezone UTC           # Specific timezone\n" +
		"  %[1]s --debug                  # Debug information\n"

	InstallAliasTipFmt = "\n💡 Tip: %s all run the same launcher.\n"

	LaunchersRenderTemplateFailedFmt = "failed to render launcher template %s: %w"
	LaunchersInvalidShellFmt         = "generated launcher %s is not valid shell: %w"
	LaunchersWriteFileFailedFmt      = "failed to write launcher %s: %w"
	LaunchersReadExistingFailedFmt   = "failed to read existing launcher %s: %w"
	LaunchersDiffDebugFmt            = "launcher %s replaced"

	LauncherGeneratorComment = "generated by htm install; reinstalling the package regenerates this file"
)
