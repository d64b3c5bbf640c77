// Package templates exposes the embedded launcher templates.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed launchers
var files embed.FS

// Read returns the raw template at path.
func Read(path string) ([]byte, error) {
	return files.ReadFile(path)
}

// Render executes the template at path with data.
func Render(path string, data any) ([]byte, error) {
	raw, err := Read(path)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(path).Funcs(funcs).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute %s: %w", path, err)
	}
	return buf.Bytes(), nil
}

var funcs = template.FuncMap{
	"sh":    ShellQuote,
	"bat":   BatchEscape,
	"batq":  BatchQuoted,
	"lines": func(s string) []string { return strings.Split(s, "\n") },
}

// ShellQuote single-quotes s for POSIX sh.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// BatchEscape escapes s for use as literal text in a cmd.exe echo.
func BatchEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '^', '&', '|', '<', '>', '(', ')':
			b.WriteRune('^')
			b.WriteRune(r)
		case '%':
			b.WriteString("%%")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BatchQuoted escapes s for use inside a double-quoted cmd.exe set statement,
// where only percent expansion still applies.
func BatchQuoted(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}
