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

// Deprecated models a member's `deprecated` marker, which the visitor
// produces either as a bare boolean (recognized `warnings.deprecated()`
// decorator with no message) or a string (a deprecation message).
type Deprecated interface {
	isDeprecated()
	Value() any
}

// DeprecatedFlag is the boolean form: deprecated, no message recorded.
type DeprecatedFlag bool

func (DeprecatedFlag) isDeprecated()   {}
func (d DeprecatedFlag) Value() any    { return bool(d) }

// DeprecatedReason is the string form: deprecated with an explanatory message.
type DeprecatedReason string

func (DeprecatedReason) isDeprecated() {}
func (d DeprecatedReason) Value() any  { return string(d) }

// NewDeprecated builds a Deprecated from an untyped value, as produced by
// the visitor when lowering a deprecation marker. Returns nil for false
// and for any x that is neither a bool nor a string.
func NewDeprecated(x any) Deprecated {
	switch v := x.(type) {
	case bool:
		if !v {
			return nil
		}
		return DeprecatedFlag(v)
	case string:
		return DeprecatedReason(v)
	default:
		return nil
	}
}
