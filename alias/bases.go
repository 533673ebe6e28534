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

	"github.com/apitree/apitree/expr"
	"github.com/apitree/apitree/model"
)

// ResolveClassBases walks every class in the collection, resolving its
// declared base-class expressions to concrete *model.Class pointers via
// SetResolvedBases, so Class.MRO()/InheritedMembers() have something to
// linearize (spec §4.5's "unresolved bases skipped with a warning").
// Must run after ResolveAll, since a base-class Name may itself route
// through an already-resolved import alias.
func (r *Resolver) ResolveClassBases(ctx context.Context) {
	for _, mod := range r.col.Modules() {
		for _, c := range collectClasses(mod) {
			var bases []*model.Class
			for _, be := range c.BaseExprs {
				for _, path := range expr.SafeResolve(be, r.log.Warning) {
					obj, err := r.Lookup(ctx, path)
					if err != nil || obj == nil {
						r.log.Warning("class %q: base %q did not resolve, skipped for MRO", c.Path(), path)
						continue
					}
					cls, ok := obj.(*model.Class)
					if !ok {
						r.log.Warning("class %q: base %q resolved to a non-class, skipped for MRO", c.Path(), path)
						continue
					}
					bases = append(bases, cls)
				}
			}
			c.SetResolvedBases(bases)
		}
	}
}

// collectClasses walks owner's member tree gathering every *model.Class
// reachable from it, including nested classes.
func collectClasses(owner model.Object) []*model.Class {
	var out []*model.Class
	var walk func(o model.Object)
	walk = func(o model.Object) {
		for _, name := range o.Members().Names() {
			member, _ := o.Members().Get(name)
			if cls, ok := member.(*model.Class); ok {
				out = append(out, cls)
				walk(cls)
				continue
			}
			if member.Members().Len() > 0 {
				walk(member)
			}
		}
	}
	walk(owner)
	return out
}
