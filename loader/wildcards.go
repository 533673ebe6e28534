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
	"github.com/apitree/apitree/collection"
	"github.com/apitree/apitree/internal/logging"
	"github.com/apitree/apitree/model"
	"github.com/apitree/apitree/visitor"
)

// expandWildcards consumes every `from X import *` the visitors recorded
// (spec §4.4 step 1, §4.6 step 5), binding each name X currently exposes
// into the importing module as a wildcard Alias. Wildcard imports that
// form a cycle (A imports * from B, B imports * from A) are a load-time
// error per the open-question resolution in spec §9: ErrCircularWildcard.
// An acyclic chain is expanded source-first.
func expandWildcards(col *collection.ModulesCollection, wildcards []visitor.PendingWildcard, log *logging.Logger) error {
	byOwner := make(map[string][]visitor.PendingWildcard)
	for _, pw := range wildcards {
		byOwner[pw.Owner.Path()] = append(byOwner[pw.Owner.Path()], pw)
	}

	ready := make(map[string]bool)
	inProgress := make(map[string]bool)

	var expand func(ownerPath string) error
	expand = func(ownerPath string) error {
		if ready[ownerPath] {
			return nil
		}
		if inProgress[ownerPath] {
			return ErrCircularWildcard
		}
		inProgress[ownerPath] = true

		for _, pw := range byOwner[ownerPath] {
			if _, hasPending := byOwner[pw.FromModule]; hasPending && !ready[pw.FromModule] {
				if err := expand(pw.FromModule); err != nil {
					return err
				}
			}
			fromMod, ok := col.Get(pw.FromModule)
			if !ok {
				log.Warning("wildcard import `from %s import *` in %q: module did not load", pw.FromModule, ownerPath)
				continue
			}
			bindWildcard(pw.Owner, fromMod)
		}

		delete(inProgress, ownerPath)
		ready[ownerPath] = true
		return nil
	}

	for ownerPath := range byOwner {
		if err := expand(ownerPath); err != nil {
			return err
		}
	}
	return nil
}

// bindWildcard binds every name fromMod currently exposes into owner as a
// wildcard Alias, already resolved since fromMod's members are concrete.
func bindWildcard(owner model.Object, fromMod *model.Module) {
	for _, obj := range fromMod.WildcardExposed() {
		path := owner.Path() + "." + obj.Name()
		a := model.NewAlias(obj.Name(), path, obj.Path(), owner)
		a.Wildcard = true
		a.SetTarget(obj)
		owner.Members().Set(obj.Name(), a)
	}
}
