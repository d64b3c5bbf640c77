package messages

// Test harness messages.
const (
	HarnessStartFmt = "🧪 Testing %s in %s...\n"

	HarnessStageRuntime  = "Runtime"
	HarnessStagePayload  = "Payload"
	HarnessStageLauncher = "Launcher"

	HarnessRuntimeOKFmt          = "%s is installed and runnable"
	HarnessRuntimeUnavailableFmt = "Java runtime %q is not available"
	HarnessPayloadMissingFmt     = "payload archive not found: %s"
	HarnessPayloadOKFmt          = "archive runs directly (%s)"
	HarnessLauncherMissingFmt    = "launcher not found: %s"
	HarnessLauncherNotExecFmt    = "launcher %s is not executable"
	HarnessLauncherNotExecHint   = "Run `htm install` again or chmod 755 the launcher."
	HarnessProbeOKFmt            = "`%s` exited 0"
	HarnessProbeExitFmt          = "`%s` exited %d"
	HarnessProbeTimeoutFmt       = "`%s` timed out after %s"
	HarnessProbeStderrFmt        = "stderr: %s"
	HarnessRunnerRequired        = "harness runner is required"
	HarnessConfigRequired        = "harness configuration is required"

	HarnessStatusOKLabel   = "[OK]  "
	HarnessStatusWarnLabel = "[WARN]"
	HarnessStatusFailLabel = "[FAIL]"
	HarnessResultLineFmt   = "%s %-9s %s\n"
	HarnessDetailPrefix    = "       > "

	HarnessSuccessSummary    = "🎉 All tests passed!"
	HarnessWarningSummaryFmt = "✅ Tests completed with %d warning(s)."
	HarnessFailureSummaryFmt = "❌ Test failed: %v"
)
