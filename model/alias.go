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

import "fmt"

// Alias is the indirection node an import or re-export produces: `from X
// import Y as Z` binds Z to an Alias with TargetPath "X.Y". Resolution is
// lazy and owned by the alias package (an external collaborator relative
// to model, since it needs cross-module lookup and cycle detection); this
// type only stores the outcome once resolved.
type Alias struct {
	*Base

	TargetPath string
	Wildcard   bool
	Inherited  bool

	target   Object
	resolved bool
}

// NewAlias constructs an Alias attached to parent, pointing at targetPath.
func NewAlias(name, path, targetPath string, parent Object) *Alias {
	return &Alias{Base: NewBase(name, path, parent), TargetPath: targetPath}
}

func (a *Alias) Kind() Kind { return KindAlias }

func (a *Alias) resolve(name string) (string, error) { return resolve(a, name) }
func (a *Alias) ResolveName(name string) (string, error) { return a.resolve(name) }
func (a *Alias) IsPublic() bool { return IsPublic(a) }

// SetTarget records the object this alias was resolved to. Called by the
// alias resolver once it has walked TargetPath to a concrete, non-alias
// object (spec §4.1 step 2: "if alias, return its (fully walked) target
// path"). Replaces any previous target, invalidating the alias's
// contribution to the old target's reverse index — the caller is
// responsible for calling RemoveAliasRef on the previous target first.
func (a *Alias) SetTarget(target Object) {
	a.target = target
	a.resolved = true
}

// Target returns the resolved target object, if any.
func (a *Alias) Target() (Object, bool) { return a.target, a.resolved }

// ResolveTarget returns the fully walked target path. If the alias has not
// yet been resolved by the alias package, it returns an error rather than
// the raw, possibly-relative TargetPath, since callers rely on this always
// being a canonical dotted path once the tree is frozen.
func (a *Alias) ResolveTarget() (string, error) {
	if !a.resolved {
		return "", fmt.Errorf("alias %q (-> %s) has not been resolved yet", a.Path(), a.TargetPath)
	}
	return a.target.Path(), nil
}
