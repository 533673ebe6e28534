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

// Package diff compares two loaded model.Object trees (an "old" and a
// "new" revision of the same package) and reports Breakage records: a
// closed set of kinds recognized by §4.7, each with an explanation
// strategy selectable independently of the walk that found it.
package diff

// Kind is the closed set of breakage classifications the walk can emit.
type Kind int

const (
	ObjectRemoved Kind = iota
	ObjectChangedKind
	ClassRemovedBase
	AttributeChangedType
	AttributeChangedValue
	ReturnChangedType
	ParameterRemoved
	ParameterMoved
	ParameterAddedRequired
	ParameterChangedRequired
	ParameterChangedKind
	ParameterChangedDefault
)

func (k Kind) String() string {
	switch k {
	case ObjectRemoved:
		return "OBJECT_REMOVED"
	case ObjectChangedKind:
		return "OBJECT_CHANGED_KIND"
	case ClassRemovedBase:
		return "CLASS_REMOVED_BASE"
	case AttributeChangedType:
		return "ATTRIBUTE_CHANGED_TYPE"
	case AttributeChangedValue:
		return "ATTRIBUTE_CHANGED_VALUE"
	case ReturnChangedType:
		return "RETURN_CHANGED_TYPE"
	case ParameterRemoved:
		return "PARAMETER_REMOVED"
	case ParameterMoved:
		return "PARAMETER_MOVED"
	case ParameterAddedRequired:
		return "PARAMETER_ADDED_REQUIRED"
	case ParameterChangedRequired:
		return "PARAMETER_CHANGED_REQUIRED"
	case ParameterChangedKind:
		return "PARAMETER_CHANGED_KIND"
	case ParameterChangedDefault:
		return "PARAMETER_CHANGED_DEFAULT"
	default:
		return "UNKNOWN"
	}
}

// Severity buckets a Kind for callers that want a coarser signal than
// the full closed set (e.g. a suggested semver bump in cmd/check.go).
type Severity int

const (
	SeverityBreaking Severity = iota
	SeveritySoft
)

// Severity reports whether k is a hard API break or a soft signal. Only
// PARAMETER_CHANGED_DEFAULT is soft; everything else in the closed set is
// breaking. Soft findings render as warnings rather than errors and only
// suggest a patch bump.
func (k Kind) Severity() Severity {
	if k == ParameterChangedDefault {
		return SeveritySoft
	}
	return SeverityBreaking
}

// Breakage is one detected incompatibility between an old and new
// Object, at a specific canonical path.
type Breakage struct {
	Kind    Kind
	Path    string
	Old     string
	New     string
	Details string
}
