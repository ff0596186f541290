// Package integration provides embedded shell integration snippets.
package integration

import (
	"bytes"
	_ "embed"
	"fmt"
	"os/exec"
	"path/filepath"
	"text/template"
)

// ZshFzf contains the zsh shell integration script with fzf support. It
// defines the `fsz` widget, which sizes the subfolders of the current
// directory and cds into the one picked through fzf.
//
//go:embed zsh-fzf.sh
var ZshFzf string

// Render produces the integration script, substituting the local zsh
// interpreter path into its shebang.
func Render() (string, error) {
	zsh, err := exec.LookPath("zsh")
	if err != nil {
		return "", fmt.Errorf("locating zsh: %w", err)
	}

	tmpl, err := template.New("zsh-fzf").Parse(ZshFzf)
	if err != nil {
		return "", fmt.Errorf("parsing integration template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"ZSH": filepath.ToSlash(zsh),
	}); err != nil {
		return "", fmt.Errorf("rendering integration template: %w", err)
	}

	return buf.String(), nil
}
