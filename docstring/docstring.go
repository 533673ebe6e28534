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

// Package docstring parses a model.Docstring's raw text into an ordered
// list of sections, on demand rather than at load time (spec §4.1's
// "parsed sections are computed on demand"). Three independent textual
// parsers — Google, Numpy, Sphinx — are dispatched by style; none of
// them touch tree-sitter or the model package, since docstrings are
// prose, not Python source.
package docstring

import (
	"strings"

	"github.com/apitree/apitree/model"
)

// Kind is one entry of spec §6's closed docstring-section vocabulary.
type Kind int

const (
	KindText Kind = iota
	KindParameters
	KindOtherParameters
	KindTypeParameters
	KindRaises
	KindWarns
	KindReturns
	KindYields
	KindReceives
	KindExamples
	KindAttributes
	KindFunctions
	KindClasses
	KindModules
	KindTypeAliases
	KindDeprecated
	KindAdmonition
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindParameters:
		return "parameters"
	case KindOtherParameters:
		return "other_parameters"
	case KindTypeParameters:
		return "type_parameters"
	case KindRaises:
		return "raises"
	case KindWarns:
		return "warns"
	case KindReturns:
		return "returns"
	case KindYields:
		return "yields"
	case KindReceives:
		return "receives"
	case KindExamples:
		return "examples"
	case KindAttributes:
		return "attributes"
	case KindFunctions:
		return "functions"
	case KindClasses:
		return "classes"
	case KindModules:
		return "modules"
	case KindTypeAliases:
		return "type_aliases"
	case KindDeprecated:
		return "deprecated"
	case KindAdmonition:
		return "admonition"
	default:
		return "unknown"
	}
}

// Element is one named entry of a parameters/raises/attributes/... list
// (spec's "named-element list" value shape).
type Element struct {
	Name        string
	Annotation  string
	Description string
	Default     string
}

// Admonition is the structured value of a KindAdmonition/KindDeprecated
// section: a titled callout (Note, Warning, Deprecated since 1.2, ...).
type Admonition struct {
	Title   string
	Content string
}

// Section is one entry of a parsed docstring, in source order. Value
// holds a []Element, an Admonition, or a plain string, depending on
// Kind: named-element kinds (parameters/raises/attributes/...) hold
// []Element; deprecated/admonition hold Admonition; text/examples hold
// a string.
type Section struct {
	Kind  Kind
	Title string
	Value any
}

// Parse dispatches text to the parser style selects, defaulting to
// Google when style is DocstringStyleAuto and no Numpy/Sphinx markers
// are detected.
func Parse(text string, style model.DocstringStyle) []Section {
	switch style {
	case model.DocstringStyleNumpy:
		return ParseNumpy(text)
	case model.DocstringStyleSphinx:
		return ParseSphinx(text)
	case model.DocstringStyleGoogle:
		return ParseGoogle(text)
	default:
		return ParseAuto(text)
	}
}

// ParseAuto guesses a style from structural markers: a Numpy-style
// underline (a line of `---`/`===` under a section title) beats a
// Sphinx field list (`:param x:`) beats the Google default.
func ParseAuto(text string) []Section {
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		if looksLikeNumpyUnderline(lines[i-1], lines[i]) {
			return ParseNumpy(text)
		}
	}
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			return ParseSphinx(text)
		}
	}
	return ParseGoogle(text)
}

func looksLikeNumpyUnderline(title, underline string) bool {
	u := strings.TrimSpace(underline)
	if len(u) == 0 || len(u) < len(strings.TrimSpace(title)) {
		return false
	}
	for _, r := range u {
		if r != '-' && r != '=' {
			return false
		}
	}
	return strings.TrimSpace(title) != ""
}

// textSection wraps leading free-form prose (everything before the first
// recognized section header) as a KindText section, omitted entirely
// when empty.
func textSection(body string) []Section {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil
	}
	return []Section{{Kind: KindText, Value: body}}
}
