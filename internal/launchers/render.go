package launchers

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/rojojun/hello-time-man/internal/config"
	"github.com/rojojun/hello-time-man/internal/messages"
	"github.com/rojojun/hello-time-man/internal/platform"
	"github.com/rojojun/hello-time-man/internal/templates"
)

// Data is the template input for a launcher script.
type Data struct {
	Name               string
	Generator          string
	PackageName        string
	PayloadFile        string
	RuntimeCommand     string
	RuntimeVersionArg  string
	NpmCommand         string
	GlobalRootArgs     []string
	FallbackGlobalRoot string
	RuntimeMissing     string
	PayloadMissing     string
}

// NewData derives template input for launcher name on desc.
func NewData(desc platform.Descriptor, cfg *config.Config, name string) Data {
	fallback := cfg.PackageManager.GlobalRoot
	if fallback == "" {
		fallback = desc.ScriptGlobalRoot()
	}
	return Data{
		Name:               name,
		Generator:          messages.LauncherGeneratorComment,
		PackageName:        cfg.Package.Name,
		PayloadFile:        cfg.Payload.File,
		RuntimeCommand:     cfg.Runtime.Command,
		RuntimeVersionArg:  cfg.Runtime.VersionArg,
		NpmCommand:         cfg.PackageManager.Command,
		GlobalRootArgs:     append([]string(nil), cfg.PackageManager.GlobalRootArgs...),
		FallbackGlobalRoot: fallback,
		RuntimeMissing:     RuntimeMissingText(desc, cfg.Runtime.Command, cfg.Package.Name),
		PayloadMissing:     PayloadMissingText(cfg.Package.Name),
	}
}

// RuntimeMissingText is the message printed when the Java runtime cannot run.
func RuntimeMissingText(desc platform.Descriptor, runtimeCommand string, packageName string) string {
	return strings.Join([]string{
		fmt.Sprintf(messages.LaunchRuntimeMissingFmt, runtimeCommand),
		fmt.Sprintf(messages.LaunchRuntimeNeededFmt, packageName),
		desc.RuntimeRemediation(),
	}, "\n")
}

// PayloadMissingText is the message printed when no archive candidate exists.
func PayloadMissingText(packageName string) string {
	return messages.LaunchPayloadNotFound + "\n" + fmt.Sprintf(messages.LaunchReinstallHintFmt, packageName)
}

// Render produces the launcher script for name on desc. Output depends only on
// its inputs, so rendering twice yields identical bytes.
func Render(desc platform.Descriptor, cfg *config.Config, name string) ([]byte, error) {
	path := desc.TemplatePath()
	data, err := templates.Render(path, NewData(desc, cfg, name))
	if err != nil {
		return nil, fmt.Errorf(messages.LaunchersRenderTemplateFailedFmt, path, err)
	}
	switch desc.LauncherKind() {
	case platform.LauncherShell:
		if err := ValidateShell(name, data); err != nil {
			return nil, err
		}
	case platform.LauncherBatch:
		data = []byte(strings.ReplaceAll(string(data), "\n", "\r\n"))
	}
	return data, nil
}

// ValidateShell parses a POSIX shell launcher and reports syntax errors.
func ValidateShell(name string, script []byte) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangPOSIX))
	if _, err := parser.Parse(strings.NewReader(string(script)), name); err != nil {
		return fmt.Errorf(messages.LaunchersInvalidShellFmt, name, err)
	}
	return nil
}
