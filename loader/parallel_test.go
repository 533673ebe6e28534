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
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apitree/apitree/finder"
	"github.com/apitree/apitree/model"
	"github.com/apitree/apitree/visitor"
)

func TestVisitAllEmptyJobsReturnsNil(t *testing.T) {
	outcomes := visitAll(context.Background(), nil, func(context.Context, visitJob) (*model.Module, []visitor.PendingWildcard, error) {
		t.Fatal("visit should never be called for an empty job list")
		return nil, nil, nil
	})
	assert.Nil(t, outcomes)
}

func TestVisitAllRunsEveryJobAndCollectsResults(t *testing.T) {
	jobs := []visitJob{
		{found: finder.Found{ModuleName: "a"}},
		{found: finder.Found{ModuleName: "b"}},
		{found: finder.Found{ModuleName: "c"}},
	}

	var calls int64
	outcomes := visitAll(context.Background(), jobs, func(ctx context.Context, job visitJob) (*model.Module, []visitor.PendingWildcard, error) {
		atomic.AddInt64(&calls, 1)
		return model.NewModule(job.found.ModuleName, job.found.ModuleName, nil), nil, nil
	})

	assert.EqualValues(t, 3, calls)
	require.Len(t, outcomes, 3)
	var names []string
	for _, o := range outcomes {
		require.NotNil(t, o.module)
		names = append(names, o.module.Name())
	}
	assert.ElementsMatch(t, []string{"a", "b", "c"}, names)
}

func TestVisitAllCapturesPerJobErrors(t *testing.T) {
	jobs := []visitJob{{found: finder.Found{ModuleName: "broken", Path: "broken.py"}}}
	boom := errors.New("parse failed")

	outcomes := visitAll(context.Background(), jobs, func(ctx context.Context, job visitJob) (*model.Module, []visitor.PendingWildcard, error) {
		return nil, nil, boom
	})

	require.Len(t, outcomes, 1)
	assert.ErrorIs(t, outcomes[0].err, boom)
	assert.Nil(t, outcomes[0].module)
}

func TestJoinErrorsNilWhenNoFailures(t *testing.T) {
	outcomes := []visitOutcome{
		{job: visitJob{found: finder.Found{Path: "a.py"}}},
		{job: visitJob{found: finder.Found{Path: "b.py"}}},
	}
	assert.NoError(t, joinErrors(outcomes))
}

func TestJoinErrorsWrapsAndJoinsFailures(t *testing.T) {
	boom := errors.New("boom")
	outcomes := []visitOutcome{
		{job: visitJob{found: finder.Found{Path: "a.py"}}},
		{job: visitJob{found: finder.Found{Path: "b.py"}}, err: boom},
	}

	err := joinErrors(outcomes)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "b.py")
}
