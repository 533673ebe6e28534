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

// sphinxFieldRe matches one reST field-list line: `:tag arg: body` or
// `:tag: body`.
var sphinxFieldRe = regexp.MustCompile(`^:(\w+)(?:\s+([^:]+))?:\s*(.*)$`)

// ParseSphinx parses Sphinx/reST field-list docstrings: free text
// followed by zero or more `:param name:`/`:type name:`/`:returns:`/
// `:rtype:`/`:raises Exc:` fields, each optionally continued on
// subsequent indented lines.
func ParseSphinx(text string) []Section {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var bodyLines []string
	i := 0
	for i < len(lines) {
		if sphinxFieldRe.MatchString(lines[i]) {
			break
		}
		bodyLines = append(bodyLines, lines[i])
		i++
	}

	params := map[string]*Element{}
	var paramOrder []string
	raises := map[string]*Element{}
	var raiseOrder []string
	var returnsDesc, returnsType string
	haveReturns := false

	for i < len(lines) {
		m := sphinxFieldRe.FindStringSubmatch(lines[i])
		if m == nil {
			i++
			continue
		}
		tag, arg, body := strings.ToLower(m[1]), strings.TrimSpace(m[2]), m[3]
		i++
		for i < len(lines) && !sphinxFieldRe.MatchString(lines[i]) && strings.TrimSpace(lines[i]) != "" {
			body += " " + strings.TrimSpace(lines[i])
			i++
		}
		body = strings.TrimSpace(body)

		switch tag {
		case "param", "parameter", "arg", "argument", "keyword", "key":
			ensureElement(params, &paramOrder, arg).Description = body
		case "type":
			ensureElement(params, &paramOrder, arg).Annotation = body
		case "raises", "raise", "except", "exception":
			ensureElement(raises, &raiseOrder, arg).Description = body
		case "returns", "return":
			returnsDesc, haveReturns = body, true
		case "rtype":
			returnsType = body
		}
	}

	var sections []Section
	sections = append(sections, textSection(strings.Join(bodyLines, "\n"))...)
	if len(paramOrder) > 0 {
		sections = append(sections, Section{Kind: KindParameters, Title: "Parameters", Value: orderedElements(params, paramOrder)})
	}
	if len(raiseOrder) > 0 {
		sections = append(sections, Section{Kind: KindRaises, Title: "Raises", Value: orderedElements(raises, raiseOrder)})
	}
	if haveReturns || returnsType != "" {
		sections = append(sections, Section{Kind: KindReturns, Title: "Returns", Value: []Element{{Annotation: returnsType, Description: returnsDesc}}})
	}
	return sections
}

func ensureElement(m map[string]*Element, order *[]string, name string) *Element {
	if e, ok := m[name]; ok {
		return e
	}
	e := &Element{Name: name}
	m[name] = e
	*order = append(*order, name)
	return e
}

func orderedElements(m map[string]*Element, order []string) []Element {
	out := make([]Element, 0, len(order))
	for _, name := range order {
		out = append(out, *m[name])
	}
	return out
}
