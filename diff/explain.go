/*
Copyright © 2025 Benny Powers

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package diff

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Style selects how a Breakage renders itself, a strategy chosen
// independently of the walk that found it (spec §4.7).
type Style int

const (
	StyleOneLine Style = iota
	StyleVerbose
	StyleMarkdown
	StyleGitHub
)

// ParseStyle maps a CLI flag value to a Style, defaulting to StyleOneLine
// on an unrecognized value.
func ParseStyle(s string) Style {
	switch strings.ToLower(s) {
	case "verbose":
		return StyleVerbose
	case "markdown":
		return StyleMarkdown
	case "github":
		return StyleGitHub
	default:
		return StyleOneLine
	}
}

// Explain renders b according to style.
func (b Breakage) Explain(style Style) string {
	switch style {
	case StyleVerbose:
		return b.explainVerbose()
	case StyleMarkdown:
		return b.explainMarkdown()
	case StyleGitHub:
		return b.explainGitHub()
	default:
		return b.explainOneLine()
	}
}

func (b Breakage) explainOneLine() string {
	return fmt.Sprintf("%s: %s", b.Kind, b.Details)
}

func (b Breakage) explainVerbose() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", pterm.FgRed.Sprint(b.Kind.String()))
	fmt.Fprintf(&sb, "  path:    %s\n", b.Path)
	if b.Old != "" {
		fmt.Fprintf(&sb, "  old:     %s\n", b.Old)
	}
	if b.New != "" {
		fmt.Fprintf(&sb, "  new:     %s\n", b.New)
	}
	fmt.Fprintf(&sb, "  details: %s\n", b.Details)
	return sb.String()
}

func (b Breakage) explainMarkdown() string {
	return fmt.Sprintf("- **%s** `%s`: %s", b.Kind, b.Path, b.Details)
}

// explainGitHub renders a GitHub Actions workflow-command annotation, so
// `check` output surfaces directly in a pull request's Files Changed tab
// when run from a workflow step.
func (b Breakage) explainGitHub() string {
	level := "error"
	if b.Kind.Severity() == SeveritySoft {
		level = "warning"
	}
	return fmt.Sprintf("::%s title=%s::%s (%s)", level, b.Kind, b.Details, b.Path)
}

// ExplainAll joins every breakage's rendering with style, plus (for
// StyleVerbose only) a pterm-colored summary line counting breaking vs.
// soft findings.
func ExplainAll(breakages []Breakage, style Style) string {
	if len(breakages) == 0 {
		return pterm.Success.Sprint("no breaking changes found")
	}
	var sb strings.Builder
	for _, b := range breakages {
		sb.WriteString(b.Explain(style))
		sb.WriteString("\n")
	}
	if style == StyleVerbose {
		breaking, soft := countBySeverity(breakages)
		fmt.Fprintf(&sb, "%s\n", pterm.Warning.Sprintf("%d breaking, %d soft", breaking, soft))
	}
	return sb.String()
}

func countBySeverity(breakages []Breakage) (breaking, soft int) {
	for _, b := range breakages {
		if b.Kind.Severity() == SeveritySoft {
			soft++
		} else {
			breaking++
		}
	}
	return
}
