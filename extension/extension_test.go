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
package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apitree/apitree/model"
)

type recordingHook struct {
	events []Event
}

func (h *recordingHook) Observe(event Event, mod *model.Module) {
	h.events = append(h.events, event)
}

type panickingHook struct{}

func (panickingHook) Observe(event Event, mod *model.Module) {
	panic("boom")
}

func TestHooksFireInvokesInOrder(t *testing.T) {
	var order []string
	first := &orderedHook{name: "first", order: &order}
	second := &orderedHook{name: "second", order: &order}
	hooks := Hooks{first, second}

	err := hooks.Fire(EventLoadComplete, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

type orderedHook struct {
	name  string
	order *[]string
}

func (h *orderedHook) Observe(event Event, mod *model.Module) {
	*h.order = append(*h.order, h.name)
}

func TestHooksFireRecoversPanic(t *testing.T) {
	hooks := Hooks{panickingHook{}}

	err := hooks.Fire(EventModuleVisited, nil)

	require.Error(t, err)
	var extErr *ExtensionError
	require.ErrorAs(t, err, &extErr)
	assert.Contains(t, extErr.Error(), "boom")
}

func TestHooksFireEmptyIsNoOp(t *testing.T) {
	var hooks Hooks
	assert.NoError(t, hooks.Fire(EventAliasesResolved, nil))
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	hook := &recordingHook{}
	r.Register("tracer", hook)

	got, err := r.Get("tracer")

	require.NoError(t, err)
	assert.Same(t, hook, got)
}

func TestRegistryGetMissingReturnsNotLoadedError(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("missing")

	require.Error(t, err)
	var notLoaded *ExtensionNotLoadedError
	require.ErrorAs(t, err, &notLoaded)
	assert.Equal(t, "missing", notLoaded.Name)
}
