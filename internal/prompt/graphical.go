// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prompt

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/labfont/labconf/internal/env"
)

const dialogTitle = "labconf"

// dialect drives one platform's native dialog helper.
type dialect struct {
	command string
	confirm func(question string) []string
	choose  func(what string) []string
	// yes interprets the output of a confirm dialog that exited successfully.
	yes func(out []byte) bool
}

var (
	zenity = dialect{
		command: "zenity",
		confirm: func(q string) []string {
			return []string{"--question", "--title=" + dialogTitle, "--text=" + q}
		},
		choose: func(what string) []string {
			return []string{"--file-selection", "--directory", "--title=Select " + what}
		},
		yes: func([]byte) bool { return true },
	}

	osascript = dialect{
		command: "osascript",
		confirm: func(q string) []string {
			return []string{"-e", fmt.Sprintf(
				`display dialog %s with title %s buttons {"No", "Yes"} default button "Yes"`,
				appleString(q), appleString(dialogTitle))}
		},
		choose: func(what string) []string {
			return []string{"-e", fmt.Sprintf(
				`POSIX path of (choose folder with prompt %s)`, appleString("Select "+what))}
		},
		yes: func(out []byte) bool {
			return bytes.Contains(out, []byte("button returned:Yes"))
		},
	}

	powershell = dialect{
		command: "powershell",
		confirm: func(q string) []string {
			return psArgs(fmt.Sprintf(
				`[System.Windows.Forms.MessageBox]::Show(%s, %s, 'YesNo')`,
				psString(q), psString(dialogTitle)))
		},
		choose: func(what string) []string {
			return psArgs(fmt.Sprintf(
				`$d = New-Object System.Windows.Forms.FolderBrowserDialog; $d.Description = %s; `+
					`if ($d.ShowDialog() -eq 'OK') { $d.SelectedPath }`,
				psString("Select "+what)))
		},
		yes: func(out []byte) bool {
			return strings.TrimSpace(string(out)) == "Yes"
		},
	}
)

func appleString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func psString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func psArgs(script string) []string {
	return []string{"-NoProfile", "-NonInteractive", "-Command",
		"Add-Type -AssemblyName System.Windows.Forms; " + script}
}

// GraphicalPrompter shows native dialogs through the platform's helper
// command: zenity, osascript or powershell.
type GraphicalPrompter struct {
	host *env.Host
	d    dialect
}

// NewGraphical reports whether h can show native dialogs and returns the
// prompter that shows them.
func NewGraphical(h *env.Host) (*GraphicalPrompter, bool) {
	var d dialect
	switch h.OS {
	case env.Windows:
		d = powershell
	case env.Darwin:
		d = osascript
	case "android", "ios", "js", "wasip1", "plan9":
		return nil, false
	default:
		if h.Getenv("DISPLAY") == "" && h.Getenv("WAYLAND_DISPLAY") == "" {
			return nil, false
		}
		d = zenity
	}
	if !h.HasCommand(d.command) {
		return nil, false
	}
	return &GraphicalPrompter{host: h, d: d}, true
}

func (p *GraphicalPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	out, cancelled, err := p.run(ctx, p.d.confirm(question))
	if err != nil || cancelled {
		return false, err
	}
	return p.d.yes(out), nil
}

func (p *GraphicalPrompter) Directory(ctx context.Context, what string) (string, error) {
	out, cancelled, err := p.run(ctx, p.d.choose(what))
	if err != nil || cancelled {
		return "", err
	}
	return strings.TrimRight(string(out), "\r\n"), nil
}

// run shows a dialog. Exit status 1 is how every helper reports that the
// operator dismissed it.
func (p *GraphicalPrompter) run(ctx context.Context, args []string) (out []byte, cancelled bool, err error) {
	out, err = p.host.Output(ctx, p.d.command, args...)
	if err == nil {
		return out, false, nil
	}
	if code, ok := env.ExitCode(err); ok && code == 1 {
		return nil, true, nil
	}
	return nil, false, fmt.Errorf("%s dialog: %w", p.d.command, err)
}
