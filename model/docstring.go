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
package model

// DocstringStyle selects which section parser interprets a Docstring's
// raw text. Parsing itself lives in the independent docstring package
// (an external collaborator per the system's scope) and is invoked on
// demand, not at load time.
type DocstringStyle int

const (
	DocstringStyleAuto DocstringStyle = iota
	DocstringStyleGoogle
	DocstringStyleNumpy
	DocstringStyleSphinx
)

func (s DocstringStyle) String() string {
	switch s {
	case DocstringStyleGoogle:
		return "google"
	case DocstringStyleNumpy:
		return "numpy"
	case DocstringStyleSphinx:
		return "sphinx"
	default:
		return "auto"
	}
}

// Docstring is plain text plus parser selection and options. Section
// parsing is deferred: call a parser from the docstring package against
// Value when sections are actually needed.
type Docstring struct {
	Value     string
	Style     DocstringStyle
	Lineno    int
	Endlineno int
}
