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
package diff

import (
	"fmt"
	"sort"

	"github.com/apitree/apitree/internal/set"
	"github.com/apitree/apitree/model"
)

// FindBreakingChanges walks old and new recursively, pairing members by
// name and emitting a Breakage for every incompatibility spec §4.7
// recognizes. Traversal order follows old's member insertion order so
// output is deterministic given deterministic input (spec §5).
func FindBreakingChanges(old, new model.Object) []Breakage {
	var out []Breakage
	walk(old, new, &out)
	return out
}

func walk(old, new model.Object, out *[]Breakage) {
	if old.Kind() != new.Kind() {
		*out = append(*out, Breakage{
			Kind:    ObjectChangedKind,
			Path:    new.Path(),
			Old:     old.Kind().String(),
			New:     new.Kind().String(),
			Details: fmt.Sprintf("%s changed kind from %s to %s", new.Path(), old.Kind(), new.Kind()),
		})
		return
	}

	switch oldObj := old.(type) {
	case *model.Class:
		newObj := new.(*model.Class)
		walkClass(oldObj, newObj, out)
	case *model.Function:
		newObj := new.(*model.Function)
		walkFunction(oldObj, newObj, out)
	case *model.Attribute:
		newObj := new.(*model.Attribute)
		walkAttribute(oldObj, newObj, out)
	}

	walkMembers(old, new, out)
}

// walkMembers pairs members by name: a member public in old and absent
// in new is OBJECT_REMOVED; members only added are never breakages.
func walkMembers(old, new model.Object, out *[]Breakage) {
	for _, name := range old.Members().Names() {
		oldMember, _ := old.Members().Get(name)
		if !oldMember.IsPublic() {
			continue
		}
		newMember, ok := new.Members().Get(name)
		if !ok {
			*out = append(*out, Breakage{
				Kind:    ObjectRemoved,
				Path:    oldMember.Path(),
				Old:     oldMember.Kind().String(),
				Details: fmt.Sprintf("%s was removed", oldMember.Path()),
			})
			continue
		}
		walk(oldMember, newMember, out)
	}
}

func walkClass(old, new *model.Class, out *[]Breakage) {
	oldBases := set.NewSet[string]()
	for _, b := range old.ResolvedBases() {
		oldBases.Add(b.Path())
	}
	newBases := set.NewSet[string]()
	for _, b := range new.ResolvedBases() {
		newBases.Add(b.Path())
	}
	removed := oldBases.Difference(newBases).Members()
	sort.Strings(removed)
	for _, removed := range removed {
		*out = append(*out, Breakage{
			Kind:    ClassRemovedBase,
			Path:    new.Path(),
			Old:     removed,
			Details: fmt.Sprintf("%s no longer inherits from %s", new.Path(), removed),
		})
	}
}

func walkAttribute(old, new *model.Attribute, out *[]Breakage) {
	if !exprEqual(old.Annotation, new.Annotation) {
		*out = append(*out, Breakage{
			Kind:    AttributeChangedType,
			Path:    new.Path(),
			Old:     exprText(old.Annotation),
			New:     exprText(new.Annotation),
			Details: fmt.Sprintf("%s annotation changed from %s to %s", new.Path(), exprText(old.Annotation), exprText(new.Annotation)),
		})
	}
	if old.Value != nil && new.Value != nil && !exprEqual(old.Value, new.Value) {
		*out = append(*out, Breakage{
			Kind:    AttributeChangedValue,
			Path:    new.Path(),
			Old:     exprText(old.Value),
			New:     exprText(new.Value),
			Details: fmt.Sprintf("%s value changed from %s to %s", new.Path(), exprText(old.Value), exprText(new.Value)),
		})
	}
}

func walkFunction(old, new *model.Function, out *[]Breakage) {
	if !exprEqual(old.Returns, new.Returns) {
		*out = append(*out, Breakage{
			Kind:    ReturnChangedType,
			Path:    new.Path(),
			Old:     exprText(old.Returns),
			New:     exprText(new.Returns),
			Details: fmt.Sprintf("%s return type changed from %s to %s", new.Path(), exprText(old.Returns), exprText(new.Returns)),
		})
	}
	walkParameters(new.Path(), old.Parameters, new.Parameters, out)
}

// walkParameters pairs parameters by name: unmatched old parameters are
// removed, unmatched new required parameters are additions that break
// positional callers, matched pairs compare kind/default/position.
func walkParameters(path string, old, new []*model.Parameter, out *[]Breakage) {
	oldByName := make(map[string]*model.Parameter, len(old))
	oldIndex := make(map[string]int, len(old))
	for i, p := range old {
		oldByName[p.Name] = p
		oldIndex[p.Name] = i
	}
	newByName := make(map[string]*model.Parameter, len(new))
	for _, p := range new {
		newByName[p.Name] = p
	}

	for _, p := range old {
		if _, ok := newByName[p.Name]; !ok {
			*out = append(*out, Breakage{
				Kind:    ParameterRemoved,
				Path:    path,
				Old:     p.Name,
				Details: fmt.Sprintf("%s: parameter %q was removed", path, p.Name),
			})
		}
	}

	for i, p := range new {
		oldParam, ok := oldByName[p.Name]
		if !ok {
			if p.Required() {
				*out = append(*out, Breakage{
					Kind:    ParameterAddedRequired,
					Path:    path,
					New:     p.Name,
					Details: fmt.Sprintf("%s: required parameter %q was added", path, p.Name),
				})
			}
			continue
		}
		comparePair(path, oldParam, p, oldIndex[p.Name], i, out)
	}
}

func comparePair(path string, old, new *model.Parameter, oldIdx, newIdx int, out *[]Breakage) {
	if old.ParamKind != new.ParamKind {
		*out = append(*out, Breakage{
			Kind:    ParameterChangedKind,
			Path:    path,
			Old:     old.ParamKind.String(),
			New:     new.ParamKind.String(),
			Details: fmt.Sprintf("%s: parameter %q changed kind from %s to %s", path, new.Name, old.ParamKind, new.ParamKind),
		})
	}

	positional := new.ParamKind == model.ParamPositionalOnly || new.ParamKind == model.ParamPositionalOrKeyword
	if positional && old.ParamKind == new.ParamKind && oldIdx != newIdx {
		*out = append(*out, Breakage{
			Kind:    ParameterMoved,
			Path:    path,
			Old:     fmt.Sprintf("%d", oldIdx),
			New:     fmt.Sprintf("%d", newIdx),
			Details: fmt.Sprintf("%s: parameter %q moved from position %d to %d", path, new.Name, oldIdx, newIdx),
		})
	}

	if old.Default != nil && new.Default == nil {
		*out = append(*out, Breakage{
			Kind:    ParameterChangedRequired,
			Path:    path,
			Details: fmt.Sprintf("%s: parameter %q lost its default and is now required", path, new.Name),
		})
	} else if old.Default != nil && new.Default != nil && !exprEqual(old.Default, new.Default) {
		*out = append(*out, Breakage{
			Kind:    ParameterChangedDefault,
			Path:    path,
			Old:     exprText(old.Default),
			New:     exprText(new.Default),
			Details: fmt.Sprintf("%s: parameter %q default changed from %s to %s", path, new.Name, exprText(old.Default), exprText(new.Default)),
		})
	}
}
