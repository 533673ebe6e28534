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
package loader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apitree/apitree/collection"
	"github.com/apitree/apitree/model"
)

func TestAttachAllMergesStubAndImplSharingAName(t *testing.T) {
	col := collection.New()
	impl := model.NewModule("widgets", "widgets", nil)
	impl.SetDocstring(&model.Docstring{Value: "runtime"})
	stub := model.NewModule("widgets", "widgets", nil)
	stub.Stub = true

	outcomes := []visitOutcome{
		{module: impl},
		{module: stub},
	}

	root, err := attachAll(col, outcomes, "widgets")

	require.NoError(t, err)
	require.NotNil(t, root)
	assert.True(t, root.Stub, "merged module keeps the stub's declared surface")
	got, ok := col.Get("widgets")
	require.True(t, ok)
	assert.Same(t, root, got)
}

func TestAttachAllSkipsNilModulesFromFailedVisits(t *testing.T) {
	col := collection.New()
	ok := model.NewModule("widgets", "widgets", nil)

	outcomes := []visitOutcome{
		{module: nil, err: errors.New("parse failed")},
		{module: ok},
	}

	root, err := attachAll(col, outcomes, "widgets")

	require.NoError(t, err)
	require.NotNil(t, root)
	assert.Equal(t, 1, len(col.Paths()))
}

func TestAttachAllIdentifiesRootByRequestedPackage(t *testing.T) {
	col := collection.New()
	root := model.NewModule("pkg", "pkg", nil)
	child := model.NewModule("pkg.sub", "pkg.sub", root)

	outcomes := []visitOutcome{{module: child}, {module: root}}

	got, err := attachAll(col, outcomes, "pkg")

	require.NoError(t, err)
	assert.Same(t, root, got)
}

func TestAttachAllReturnsErrorOnDuplicateAttach(t *testing.T) {
	col := collection.New()
	first := model.NewModule("widgets", "widgets", nil)
	require.NoError(t, col.Attach(first))

	dup := model.NewModule("widgets", "widgets", nil)
	outcomes := []visitOutcome{{module: dup}}

	_, err := attachAll(col, outcomes, "widgets")

	assert.Error(t, err)
}
