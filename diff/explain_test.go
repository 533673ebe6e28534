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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStyle(t *testing.T) {
	assert.Equal(t, StyleVerbose, ParseStyle("verbose"))
	assert.Equal(t, StyleMarkdown, ParseStyle("markdown"))
	assert.Equal(t, StyleGitHub, ParseStyle("github"))
	assert.Equal(t, StyleOneLine, ParseStyle("oneline"))
	assert.Equal(t, StyleOneLine, ParseStyle("garbage"))
}

func TestExplainOneLine(t *testing.T) {
	b := Breakage{Kind: ObjectRemoved, Path: "widgets.Widget.resize", Details: "widgets.Widget.resize was removed"}
	out := b.Explain(StyleOneLine)
	assert.Contains(t, out, "OBJECT_REMOVED")
	assert.Contains(t, out, "widgets.Widget.resize was removed")
}

func TestExplainMarkdown(t *testing.T) {
	b := Breakage{Kind: ParameterRemoved, Path: "widgets.resize", Details: "parameter removed"}
	out := b.Explain(StyleMarkdown)
	assert.True(t, strings.HasPrefix(out, "- **PARAMETER_REMOVED**"))
}

func TestExplainGitHubSeverity(t *testing.T) {
	breaking := Breakage{Kind: ObjectRemoved, Path: "a", Details: "removed"}
	soft := Breakage{Kind: ParameterChangedDefault, Path: "b", Details: "default changed"}

	assert.Contains(t, breaking.Explain(StyleGitHub), "::error")
	assert.Contains(t, soft.Explain(StyleGitHub), "::warning")
}

func TestExplainAllEmptyIsSuccess(t *testing.T) {
	out := ExplainAll(nil, StyleOneLine)
	assert.Contains(t, out, "no breaking changes")
}
