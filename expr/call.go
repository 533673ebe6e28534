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

// Keyword is a `name=value` call argument. Name is "" for a `**kwargs`
// spread, in which case Value is the DoubleStarred expression itself.
type Keyword struct {
	Name  string
	Value Expr
}

func (k *Keyword) Kind() NodeKind  { return KindKeyword }
func (k *Keyword) Precedence() int { return precAtom }

// Call is `f(args, *starred, kw=v, **kwargs)`. Positional args (including
// Starred nodes) live in Args; keyword args (including a trailing
// DoubleStarred spread) live in Keywords.
type Call struct {
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
}

func (c *Call) Kind() NodeKind  { return KindCall }
func (c *Call) Precedence() int { return precAtom }

// Starred is `*x` used as a call argument or in an assignment target.
type Starred struct {
	Value Expr
}

func (s *Starred) Kind() NodeKind  { return KindStarred }
func (s *Starred) Precedence() int { return precAtom }

// DoubleStarred is `**x` used as a call argument or dict spread.
type DoubleStarred struct {
	Value Expr
}

func (d *DoubleStarred) Kind() NodeKind  { return KindDoubleStarred }
func (d *DoubleStarred) Precedence() int { return precAtom }
