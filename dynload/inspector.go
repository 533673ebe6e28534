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

// Package dynload is the narrow external-collaborator boundary for the
// dynamic-inspection fallback (spec §9: "dynamic-inspection kept as an
// external collaborator behind dynload.Inspector"): when ForceInspection is
// set, or a module fails to load statically and AllowInspection is set,
// the loader asks an
// Inspector to import the module in a real interpreter and report its
// members by runtime reflection instead. This package ships the interface
// and a "not available" stub only; an actual interpreter bridge (a CPython
// subprocess protocol, a cgo embedding, ...) is out of scope here, same as
// the teacher keeps `lsp.Server`'s wire protocol behind an interface
// without shipping every client.
package dynload

import (
	"context"
	"errors"

	"github.com/apitree/apitree/model"
)

// ErrNotAvailable is returned by Unavailable for every inspection request.
var ErrNotAvailable = errors.New("dynload: dynamic inspection is not available in this build")

// Inspector imports modulePath in a live Python process and reports its
// public members as a synthetic Module, for callers that accept runtime
// fidelity over static-analysis safety.
type Inspector interface {
	Inspect(ctx context.Context, modulePath string) (*model.Module, error)
}

// Unavailable is the zero-cost Inspector every build ships by default: it
// always fails, so AllowInspection degrades to "static analysis only"
// rather than panicking when no real inspector is wired in.
type Unavailable struct{}

func (Unavailable) Inspect(ctx context.Context, modulePath string) (*model.Module, error) {
	return nil, ErrNotAvailable
}
