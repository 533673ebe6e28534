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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassKind(t *testing.T) {
	cls := NewClass("Button", "widgets.Button", nil)
	assert.Equal(t, KindClass, cls.Kind())
}

func TestMROSingleInheritance(t *testing.T) {
	mod := NewModule("widgets", "widgets", nil)
	base := NewClass("Widget", "widgets.Widget", mod)
	child := NewClass("Button", "widgets.Button", mod)
	child.SetResolvedBases([]*Class{base})

	assert.Equal(t, []*Class{child, base}, child.MRO())
}

func TestMROWithNoBasesIsJustSelf(t *testing.T) {
	cls := NewClass("Widget", "widgets.Widget", nil)
	assert.Equal(t, []*Class{cls}, cls.MRO())
}

func TestInheritedMembersNearestAncestorWins(t *testing.T) {
	mod := NewModule("widgets", "widgets", nil)
	base := NewClass("Widget", "widgets.Widget", mod)
	baseAttr := NewAttribute("color", "widgets.Widget.color", base)
	base.Members().Set(baseAttr.Name(), baseAttr)

	child := NewClass("Button", "widgets.Button", mod)
	child.SetResolvedBases([]*Class{base})
	childAttr := NewAttribute("color", "widgets.Button.color", child)
	child.Members().Set(childAttr.Name(), childAttr)
	label := NewAttribute("label", "widgets.Button.label", child)
	child.Members().Set(label.Name(), label)

	inherited := child.InheritedMembers()

	got, ok := inherited.Get("color")
	assert.True(t, ok)
	assert.Same(t, childAttr, got, "own member must win over an inherited one of the same name")

	_, ok = inherited.Get("label")
	assert.True(t, ok)
}

func TestInheritedMembersIsCachedUntilBasesChange(t *testing.T) {
	mod := NewModule("widgets", "widgets", nil)
	base := NewClass("Widget", "widgets.Widget", mod)
	attr := NewAttribute("color", "widgets.Widget.color", base)
	base.Members().Set(attr.Name(), attr)
	child := NewClass("Button", "widgets.Button", mod)
	child.SetResolvedBases([]*Class{base})

	first := child.InheritedMembers()
	_, ok := first.Get("color")
	assert.True(t, ok)

	child.SetResolvedBases(nil)
	second := child.InheritedMembers()
	_, ok = second.Get("color")
	assert.False(t, ok, "SetResolvedBases resets the cache so MRO/inherited members are recomputed")
}
