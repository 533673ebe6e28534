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

import "github.com/apitree/apitree/model"

// mergeGroup folds every module visited under the same dotted name (at
// most one stub, one runtime module, per spec's uniqueness invariant) into
// a single merged Module.
func mergeGroup(mods []*model.Module) *model.Module {
	var stub, impl *model.Module
	for _, m := range mods {
		if m.Stub {
			stub = m
		} else {
			impl = m
		}
	}
	if stub != nil && impl != nil {
		return mergeModuleStub(stub, impl)
	}
	if stub != nil {
		return stub
	}
	return impl
}

// mergeModuleStub merges stub (a .pyi module) and impl (its .py
// counterpart) per spec §4.1/§4.6: "signatures, annotations, and __all__
// are taken from the stub; docstrings and members present only in the
// runtime module survive. Merging is recursive into classes."
func mergeModuleStub(stub, impl *model.Module) *model.Module {
	if stub == nil {
		return impl
	}
	if impl == nil {
		return stub
	}

	if stub.Docstring() == nil && impl.Docstring() != nil {
		stub.SetDocstring(impl.Docstring())
	}
	mergeMembers(stub, impl)

	// Filepath keeps pointing at the runtime module, since that's where
	// bodies, defaults, and docstrings actually live; Stub/IsPackage stay
	// the stub's, since the merged module's declared surface is the
	// stub's from here on.
	stub.Filepath = impl.Filepath
	return stub
}

// mergeMembers merges impl's members into stub's in place: members only
// in impl are added as-is; members in both are merged per-kind; members
// only in stub are left untouched.
func mergeMembers(stub, impl model.Object) {
	for _, name := range impl.Members().Names() {
		implMember, _ := impl.Members().Get(name)
		stubMember, inStub := stub.Members().Get(name)
		if !inStub {
			stub.Members().Set(name, implMember)
			continue
		}
		mergeMember(stubMember, implMember)
	}
}

// mergeMember merges one same-named pair of members in place.
func mergeMember(stubMember, implMember model.Object) {
	if stubMember.Kind() != implMember.Kind() {
		// A stub redeclaring a name as a different kind of object than the
		// runtime module is a contradiction the stub wins outright on,
		// since its signatures are authoritative.
		return
	}

	if stubMember.Docstring() == nil && implMember.Docstring() != nil {
		stubMember.SetDocstring(implMember.Docstring())
	}

	switch stub := stubMember.(type) {
	case *model.Class:
		impl := implMember.(*model.Class)
		if stub.Metaclass == nil {
			stub.Metaclass = impl.Metaclass
		}
		mergeMembers(stub, impl)
	case *model.Function:
		impl := implMember.(*model.Function)
		if stub.Returns == nil {
			stub.Returns = impl.Returns
		}
		if stub.Deprecated == nil {
			stub.Deprecated = impl.Deprecated
		}
	case *model.Attribute:
		impl := implMember.(*model.Attribute)
		if stub.Annotation == nil {
			stub.Annotation = impl.Annotation
		}
		if stub.Value == nil {
			stub.Value = impl.Value
		}
		if stub.Deprecated == nil {
			stub.Deprecated = impl.Deprecated
		}
	case *model.TypeAlias:
		impl := implMember.(*model.TypeAlias)
		if stub.Value == nil {
			stub.Value = impl.Value
		}
	}
}
