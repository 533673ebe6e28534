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

import (
	"sync"

	"github.com/apitree/apitree/expr"
)

// Class is a `class` statement. Bases are kept both as unresolved
// expressions (for rendering/diffing the declared source) and, once the
// alias resolver walks them, as resolved Class pointers for MRO.
type Class struct {
	*Base

	BaseExprs  []expr.Expr
	Decorators []expr.Expr
	Metaclass  expr.Expr

	resolvedBases []*Class
	mroOnce       sync.Once
	mro           []*Class
	inheritedOnce sync.Once
	inherited     *Members
}

// NewClass constructs a Class attached to parent.
func NewClass(name, path string, parent Object) *Class {
	return &Class{Base: NewBase(name, path, parent)}
}

func (c *Class) Kind() Kind { return KindClass }

func (c *Class) resolve(name string) (string, error) { return resolve(c, name) }
func (c *Class) ResolveName(name string) (string, error) { return c.resolve(name) }
func (c *Class) IsPublic() bool { return IsPublic(c) }

// SetResolvedBases is called by the alias resolver once base-class
// expressions have been walked to concrete Class objects (unresolvable
// bases, e.g. from unloaded external packages, are simply omitted; MRO
// computation skips them with a warning per spec §4.5).
func (c *Class) SetResolvedBases(bases []*Class) {
	c.resolvedBases = bases
	c.mroOnce = sync.Once{}
	c.inheritedOnce = sync.Once{}
}

// ResolvedBases returns the classes SetResolvedBases last recorded.
func (c *Class) ResolvedBases() []*Class { return c.resolvedBases }

// MRO returns this class's C3 linearization, computed once and cached
// (mirrors the teacher's lazy attributeFieldMap caching, generalized from
// single-chain mixin composition to full C3 as spec §4.5 requires).
func (c *Class) MRO() []*Class {
	c.mroOnce.Do(func() {
		c.mro = c3Linearize(c)
	})
	return c.mro
}

// InheritedMembers flattens this class's own members with every ancestor's
// members in MRO order, nearest ancestor winning on name collision. Lazily
// computed and cached with sync.Once, per the teacher's
// CustomElementDeclaration.attributeFieldMap pattern.
func (c *Class) InheritedMembers() *Members {
	c.inheritedOnce.Do(func() {
		c.inherited = NewMembers()
		mro := c.MRO()
		for i := len(mro) - 1; i >= 0; i-- {
			ancestor := mro[i]
			if ancestor == c {
				continue
			}
			for _, name := range ancestor.Members().Names() {
				member, _ := ancestor.Members().Get(name)
				c.inherited.Set(name, member)
			}
		}
		for _, name := range c.Members().Names() {
			member, _ := c.Members().Get(name)
			c.inherited.Set(name, member)
		}
	})
	return c.inherited
}
