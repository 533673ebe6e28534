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

import (
	"regexp"
	"strings"
)

// googleHeaders maps a recognized Google-style section header (matched
// case-insensitively, trailing colon stripped) to its Kind.
var googleHeaders = map[string]Kind{
	"args":             KindParameters,
	"arguments":        KindParameters,
	"parameters":       KindParameters,
	"other parameters": KindOtherParameters,
	"raises":           KindRaises,
	"exceptions":       KindRaises,
	"warns":            KindWarns,
	"returns":          KindReturns,
	"yields":           KindYields,
	"receives":         KindReceives,
	"example":          KindExamples,
	"examples":         KindExamples,
	"attributes":       KindAttributes,
	"functions":        KindFunctions,
	"methods":          KindFunctions,
	"classes":          KindClasses,
	"modules":          KindModules,
	"note":             KindAdmonition,
	"notes":            KindAdmonition,
	"warning":          KindAdmonition,
	"important":        KindAdmonition,
	"tip":              KindAdmonition,
	"deprecated":       KindDeprecated,
}

var googleHeaderRe = regexp.MustCompile(`^([A-Za-z][A-Za-z ]*):\s*$`)

// ParseGoogle parses Google-style docstrings: a colon-terminated header
// on its own line, followed by an indented block.
func ParseGoogle(text string) []Section {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var sections []Section
	var bodyLines []string
	i := 0
	for ; i < len(lines); i++ {
		if _, ok := matchGoogleHeader(lines[i]); ok {
			break
		}
		bodyLines = append(bodyLines, lines[i])
	}
	sections = append(sections, textSection(strings.Join(bodyLines, "\n"))...)

	for i < len(lines) {
		kind, title := mustMatchGoogleHeader(lines[i])
		i++
		start := i
		for i < len(lines) {
			if _, ok := matchGoogleHeader(lines[i]); ok {
				break
			}
			i++
		}
		block := dedent(lines[start:i])
		sections = append(sections, buildGoogleSection(kind, title, block))
	}
	return sections
}

func matchGoogleHeader(line string) (Kind, bool) {
	m := googleHeaderRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	kind, ok := googleHeaders[strings.ToLower(strings.TrimSpace(m[1]))]
	return kind, ok
}

func mustMatchGoogleHeader(line string) (Kind, string) {
	m := googleHeaderRe.FindStringSubmatch(line)
	title := strings.TrimSpace(m[1])
	return googleHeaders[strings.ToLower(title)], title
}

func buildGoogleSection(kind Kind, title string, block []string) Section {
	switch kind {
	case KindParameters, KindOtherParameters, KindRaises, KindWarns, KindAttributes:
		return Section{Kind: kind, Title: title, Value: parseGoogleElements(dedent(block))}
	case KindReturns, KindYields, KindReceives:
		return Section{Kind: kind, Title: title, Value: parseGoogleReturn(block)}
	case KindDeprecated:
		return Section{Kind: kind, Title: title, Value: Admonition{Title: title, Content: strings.Join(block, "\n")}}
	case KindAdmonition:
		return Section{Kind: kind, Title: title, Value: Admonition{Title: title, Content: strings.Join(block, "\n")}}
	default:
		return Section{Kind: kind, Title: title, Value: strings.Join(block, "\n")}
	}
}

// googleElementRe matches "name (type): description" or "name: description".
var googleElementRe = regexp.MustCompile(`^(\*{0,2}[\w.]+)\s*(?:\(([^)]*)\))?\s*:\s*(.*)$`)

// parseGoogleElements groups a Google parameters/raises/attributes block
// into one Element per top-level (non-indented-continuation) line.
func parseGoogleElements(block []string) []Element {
	var elements []Element
	for _, line := range block {
		if line == "" {
			continue
		}
		if isContinuation(line) && len(elements) > 0 {
			last := &elements[len(elements)-1]
			last.Description = strings.TrimSpace(last.Description + " " + strings.TrimSpace(line))
			continue
		}
		m := googleElementRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		elements = append(elements, Element{
			Name:        m[1],
			Annotation:  m[2],
			Description: strings.TrimSpace(m[3]),
		})
	}
	return elements
}

// parseGoogleReturn parses a returns/yields/receives block, which may be
// "type: description" (named) or just "description" (unnamed).
func parseGoogleReturn(block []string) []Element {
	joined := strings.TrimSpace(strings.Join(dedent(block), "\n"))
	if joined == "" {
		return nil
	}
	if idx := strings.Index(joined, ":"); idx > 0 && !strings.Contains(joined[:idx], " ") {
		return []Element{{Annotation: joined[:idx], Description: strings.TrimSpace(joined[idx+1:])}}
	}
	return []Element{{Description: joined}}
}

// isContinuation reports whether line is an indented continuation of the
// previous element (more leading whitespace than a fresh entry would have).
func isContinuation(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	indent := len(line) - len(trimmed)
	return indent >= 4
}

// dedent strips the common leading whitespace from a block of lines,
// matching how Google-style section bodies are indented relative to
// their header.
func dedent(lines []string) []string {
	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		trimmed := strings.TrimLeft(line, " \t")
		indent := len(line) - len(trimmed)
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if len(line) >= minIndent {
			out[i] = line[minIndent:]
		} else {
			out[i] = strings.TrimLeft(line, " \t")
		}
	}
	return out
}
