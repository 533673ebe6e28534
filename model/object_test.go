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
	"github.com/stretchr/testify/require"
)

func TestResolveFindsOwnMember(t *testing.T) {
	mod := NewModule("widgets", "widgets", nil)
	fn := NewFunction("resize", "widgets.resize", mod)
	mod.Members().Set(fn.Name(), fn)

	path, err := mod.ResolveName("resize")

	require.NoError(t, err)
	assert.Equal(t, "widgets.resize", path)
}

func TestResolveWalksUpToParent(t *testing.T) {
	mod := NewModule("widgets", "widgets", nil)
	helper := NewFunction("helper", "widgets.helper", mod)
	mod.Members().Set(helper.Name(), helper)
	cls := NewClass("Button", "widgets.Button", mod)
	mod.Members().Set(cls.Name(), cls)
	method := NewFunction("click", "widgets.Button.click", cls)
	cls.Members().Set(method.Name(), method)

	path, err := method.ResolveName("helper")

	require.NoError(t, err)
	assert.Equal(t, "widgets.helper", path)
}

func TestResolveSelfReferenceFromOwnMethod(t *testing.T) {
	mod := NewModule("widgets", "widgets", nil)
	cls := NewClass("Button", "widgets.Button", mod)
	mod.Members().Set(cls.Name(), cls)
	method := NewFunction("click", "widgets.Button.click", cls)
	cls.Members().Set(method.Name(), method)

	path, err := method.ResolveName("Button")

	require.NoError(t, err)
	assert.Equal(t, "widgets.Button", path)
}

func TestResolveDereferencesAlias(t *testing.T) {
	mod := NewModule("widgets", "widgets", nil)
	target := NewFunction("resize", "widgets.resize", mod)
	mod.Members().Set(target.Name(), target)
	a := NewAlias("resize_widget", "widgets.resize_widget", "widgets.resize", mod)
	a.SetTarget(target)
	mod.Members().Set(a.Name(), a)

	path, err := mod.ResolveName("resize_widget")

	require.NoError(t, err)
	assert.Equal(t, "widgets.resize", path)
}

func TestResolveUnboundNameReturnsNameResolutionError(t *testing.T) {
	mod := NewModule("widgets", "widgets", nil)

	_, err := mod.ResolveName("ghost")

	require.Error(t, err)
	var nre *NameResolutionError
	require.ErrorAs(t, err, &nre)
	assert.Equal(t, "ghost", nre.Name)
}

func TestResolveFindsTypeParameterWithMangledPrefix(t *testing.T) {
	cls := NewClass("Box", "widgets.Box", nil)
	cls.SetTypeParameters([]*TypeParameter{{Name: "T", Kind: TypeParamTypeVarTuple}})

	path, err := cls.ResolveName("T")

	require.NoError(t, err)
	assert.Equal(t, "widgets.Box[*T]", path)
}

func TestIsPublicExplicitFlagWins(t *testing.T) {
	mod := NewModule("widgets", "widgets", nil)
	fn := NewFunction("_private", "widgets._private", mod)
	fn.SetPublicFlag(VisibilityPublic)

	assert.True(t, fn.IsPublic())
}

func TestIsPublicUnderscorePrefixIsPrivateByDefault(t *testing.T) {
	mod := NewModule("widgets", "widgets", nil)
	fn := NewFunction("_private", "widgets._private", mod)
	mod.Members().Set(fn.Name(), fn)

	assert.False(t, fn.IsPublic())
}

func TestIsPublicDunderIsAlwaysPublic(t *testing.T) {
	mod := NewModule("widgets", "widgets", nil)
	fn := NewFunction("__init__", "widgets.__init__", mod)
	mod.Members().Set(fn.Name(), fn)

	assert.True(t, fn.IsPublic())
}

func TestIsPublicNoParentDoesNotPanic(t *testing.T) {
	mod := NewModule("widgets", "widgets", nil)
	assert.True(t, mod.IsPublic())
}

func TestIsPublicRespectsExportsAllowlist(t *testing.T) {
	mod := NewModule("widgets", "widgets", nil)
	fn := NewFunction("resize", "widgets.resize", mod)
	mod.Members().Set(fn.Name(), fn)
	other := NewFunction("rotate", "widgets.rotate", mod)
	mod.Members().Set(other.Name(), other)
	mod.SetExports([]string{"resize"})

	assert.True(t, fn.IsPublic())
	assert.False(t, other.IsPublic())
}

func TestIsPublicImportedNameIsNotPublic(t *testing.T) {
	mod := NewModule("widgets", "widgets", nil)
	mod.AddImport("helper", "otherpkg.helper")
	fn := NewFunction("helper", "widgets.helper", mod)
	mod.Members().Set(fn.Name(), fn)

	assert.False(t, fn.IsPublic())
}

func TestAddAliasRefAndRemoveAliasRef(t *testing.T) {
	mod := NewModule("widgets", "widgets", nil)
	target := NewFunction("resize", "widgets.resize", mod)
	a := NewAlias("resize_widget", "widgets.resize_widget", "widgets.resize", mod)

	target.AddAliasRef(a)
	assert.Equal(t, []*Alias{a}, target.Aliases())

	target.RemoveAliasRef(a)
	assert.Empty(t, target.Aliases())
}

func TestAnalysisKindString(t *testing.T) {
	assert.Equal(t, "static", AnalysisStatic.String())
	assert.Equal(t, "dynamic", AnalysisDynamic.String())
	assert.Equal(t, "", AnalysisNone.String())
}
