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
package expr

// Tuple is (a, b, c).
type Tuple struct {
	Elements []Expr
}

func (t *Tuple) Kind() NodeKind  { return KindTuple }
func (t *Tuple) Precedence() int { return precAtom }

// List is [a, b, c].
type List struct {
	Elements []Expr
}

func (l *List) Kind() NodeKind  { return KindList }
func (l *List) Precedence() int { return precAtom }

// Set is {a, b, c}.
type Set struct {
	Elements []Expr
}

func (s *Set) Kind() NodeKind  { return KindSet }
func (s *Set) Precedence() int { return precAtom }

// DictEntry is one key: value pair. Key is nil for a **spread entry.
type DictEntry struct {
	Key   Expr
	Value Expr
}

// Dict is {k: v, ...}.
type Dict struct {
	Entries []DictEntry
}

func (d *Dict) Kind() NodeKind  { return KindDict }
func (d *Dict) Precedence() int { return precAtom }

// ComprehensionKind distinguishes the container a comprehension produces.
type ComprehensionKind int

const (
	ComprehensionList ComprehensionKind = iota
	ComprehensionSet
	ComprehensionDict
	ComprehensionGenerator
)

// CompClause is one `for ... in ... [if ...]*` clause of a comprehension.
type CompClause struct {
	Target Expr
	Iter   Expr
	Ifs    []Expr
	Async  bool
}

// Comprehension is [x for x in y if z], its set/dict/generator variants.
// Element holds the produced value for list/set/generator forms; Key is
// additionally set for dict comprehensions.
type Comprehension struct {
	CompKind ComprehensionKind
	Key      Expr
	Element  Expr
	Clauses  []CompClause
}

func (c *Comprehension) Kind() NodeKind  { return KindComprehension }
func (c *Comprehension) Precedence() int { return precAtom }
