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
package alias

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apitree/apitree/collection"
	"github.com/apitree/apitree/expr"
	"github.com/apitree/apitree/model"
)

func TestResolveClassBasesPopulatesResolvedBases(t *testing.T) {
	col := collection.New()
	mod := model.NewModule("widgets", "widgets", nil)
	base := model.NewClass("Widget", "widgets.Widget", mod)
	mod.Members().Set(base.Name(), base)
	button := model.NewClass("Button", "widgets.Button", mod)
	button.BaseExprs = []expr.Expr{&expr.Name{Identifier: "Widget", Scope: mod}}
	mod.Members().Set(button.Name(), button)
	require.NoError(t, col.Attach(mod))

	r := NewResolver(col, nil, nil)
	r.ResolveClassBases(context.Background())

	require.Len(t, button.ResolvedBases(), 1)
	assert.Same(t, base, button.ResolvedBases()[0])
}

func TestResolveClassBasesSkipsUnresolvedBase(t *testing.T) {
	col := collection.New()
	mod := model.NewModule("widgets", "widgets", nil)
	button := model.NewClass("Button", "widgets.Button", mod)
	button.BaseExprs = []expr.Expr{&expr.Name{Identifier: "Ghost", Scope: mod}}
	mod.Members().Set(button.Name(), button)
	require.NoError(t, col.Attach(mod))

	r := NewResolver(col, nil, nil)
	r.ResolveClassBases(context.Background())

	assert.Empty(t, button.ResolvedBases())
}

func TestResolveClassBasesSkipsNonClassTarget(t *testing.T) {
	col := collection.New()
	mod := model.NewModule("widgets", "widgets", nil)
	fn := model.NewFunction("resize", "widgets.resize", mod)
	mod.Members().Set(fn.Name(), fn)
	button := model.NewClass("Button", "widgets.Button", mod)
	button.BaseExprs = []expr.Expr{&expr.Name{Identifier: "resize", Scope: mod}}
	mod.Members().Set(button.Name(), button)
	require.NoError(t, col.Attach(mod))

	r := NewResolver(col, nil, nil)
	r.ResolveClassBases(context.Background())

	assert.Empty(t, button.ResolvedBases())
}

func TestResolveClassBasesFindsNestedClasses(t *testing.T) {
	col := collection.New()
	mod := model.NewModule("widgets", "widgets", nil)
	outer := model.NewClass("Outer", "widgets.Outer", mod)
	base := model.NewClass("Base", "widgets.Base", mod)
	mod.Members().Set(base.Name(), base)
	inner := model.NewClass("Inner", "widgets.Outer.Inner", outer)
	inner.BaseExprs = []expr.Expr{&expr.Name{Identifier: "Base", Scope: mod}}
	outer.Members().Set(inner.Name(), inner)
	mod.Members().Set(outer.Name(), outer)
	require.NoError(t, col.Attach(mod))

	r := NewResolver(col, nil, nil)
	r.ResolveClassBases(context.Background())

	require.Len(t, inner.ResolvedBases(), 1)
	assert.Same(t, base, inner.ResolvedBases()[0])
}
