package messages

// Configuration messages.
const (
	ConfigReadFailedFmt          = "failed to read %s: %w"
	ConfigInvalidFmt             = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt    = "config %s has unrecognized keys: %w"
	ConfigInvalidEnvIntFmt       = "%s must be an integer: %w"
	ConfigExpandPathFmt          = "expand %s: %w"
	ConfigPackageNameRequired    = "package.name is required"
	ConfigPayloadFileRequired    = "payload.file is required"
	ConfigPayloadFileNotBase     = "payload.file must be a file name, not a path: %q"
	ConfigLauncherNameRequired   = "launcher.names must list at least one launcher"
	ConfigLauncherNameInvalid    = "launcher name %q must be a plain file name"
	ConfigRuntimeRequired        = "runtime.command is required"
	ConfigPackageManagerRequired = "package_manager.command is required"
	ConfigUnsafeValueFmt         = "%s must not contain control characters or double quotes: %q"
	ConfigTimeoutInvalidFmt      = "harness.timeout_seconds must be positive, got %d"
)
