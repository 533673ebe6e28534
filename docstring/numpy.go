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
package docstring

import "strings"

var numpyHeaders = map[string]Kind{
	"parameters":       KindParameters,
	"other parameters": KindOtherParameters,
	"raises":           KindRaises,
	"warns":            KindWarns,
	"returns":          KindReturns,
	"yields":           KindYields,
	"receives":         KindReceives,
	"examples":         KindExamples,
	"attributes":       KindAttributes,
	"methods":          KindFunctions,
	"notes":            KindAdmonition,
	"warnings":         KindAdmonition,
	"deprecated":       KindDeprecated,
}

// ParseNumpy parses Numpy-style docstrings: a section title on its own
// line, underlined on the next line by a run of `-` (or `=`) at least as
// long as the title.
func ParseNumpy(text string) []Section {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var sections []Section
	var bodyLines []string
	i := 0
	for i < len(lines)-1 {
		if _, ok := matchNumpyHeader(lines[i], lines[i+1]); ok {
			break
		}
		bodyLines = append(bodyLines, lines[i])
		i++
	}
	if i >= len(lines)-1 {
		bodyLines = append(bodyLines, lines[i:]...)
		return textSection(strings.Join(bodyLines, "\n"))
	}
	sections = append(sections, textSection(strings.Join(bodyLines, "\n"))...)

	for i < len(lines) {
		kind, title, ok := numpyHeaderAt(lines, i)
		if !ok {
			break
		}
		i += 2
		start := i
		for i < len(lines)-1 {
			if _, ok := matchNumpyHeader(lines[i], lines[i+1]); ok {
				break
			}
			i++
		}
		if i == len(lines)-1 {
			i = len(lines)
		}
		block := dedent(lines[start:i])
		sections = append(sections, buildNumpySection(kind, title, block))
	}
	return sections
}

func matchNumpyHeader(title, underline string) (Kind, bool) {
	t := strings.ToLower(strings.TrimSpace(title))
	if t == "" {
		return 0, false
	}
	kind, ok := numpyHeaders[t]
	if !ok || !looksLikeNumpyUnderline(title, underline) {
		return 0, false
	}
	return kind, true
}

func numpyHeaderAt(lines []string, i int) (Kind, string, bool) {
	if i+1 >= len(lines) {
		return 0, "", false
	}
	kind, ok := matchNumpyHeader(lines[i], lines[i+1])
	return kind, strings.TrimSpace(lines[i]), ok
}

func buildNumpySection(kind Kind, title string, block []string) Section {
	switch kind {
	case KindParameters, KindOtherParameters, KindRaises, KindWarns, KindAttributes:
		return Section{Kind: kind, Title: title, Value: parseNumpyElements(block)}
	case KindReturns, KindYields, KindReceives:
		return Section{Kind: kind, Title: title, Value: parseNumpyElements(block)}
	case KindDeprecated, KindAdmonition:
		return Section{Kind: kind, Title: title, Value: Admonition{Title: title, Content: strings.Join(block, "\n")}}
	default:
		return Section{Kind: kind, Title: title, Value: strings.Join(block, "\n")}
	}
}

// parseNumpyElements parses "name : type" header lines (the colon is
// optional when there's no type) followed by an indented description,
// the Numpy convention for Parameters/Returns/Raises/Attributes blocks.
func parseNumpyElements(block []string) []Element {
	var elements []Element
	for _, line := range block {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if isContinuation(line) && len(elements) > 0 {
			last := &elements[len(elements)-1]
			last.Description = strings.TrimSpace(last.Description + " " + strings.TrimSpace(line))
			continue
		}
		name, annotation := splitNumpyHeader(line)
		elements = append(elements, Element{Name: name, Annotation: annotation})
	}
	return elements
}

func splitNumpyHeader(line string) (name, annotation string) {
	line = strings.TrimSpace(line)
	if idx := strings.Index(line, ":"); idx >= 0 {
		return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:])
	}
	return line, ""
}
