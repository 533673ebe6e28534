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

import "github.com/apitree/apitree/internal/set"

// AnalysisKind records how an object's information was obtained.
type AnalysisKind int

const (
	AnalysisNone AnalysisKind = iota
	AnalysisStatic
	AnalysisDynamic
)

func (a AnalysisKind) String() string {
	switch a {
	case AnalysisStatic:
		return "static"
	case AnalysisDynamic:
		return "dynamic"
	default:
		return ""
	}
}

// Object is the thin common interface every tagged-variant node in the
// tree satisfies: members, parent, path, kind, docstring, per the
// REDESIGN FLAGS guidance to favor a tagged variant with a narrow shared
// interface over a deep class hierarchy. Variant-specific fields (bases,
// parameters, annotation/value, target_path...) live on the concrete
// Module/Class/Function/Attribute/TypeAlias/Alias types.
//
// Object also satisfies expr.Scope via ResolveName, so expression Name
// nodes parsed anywhere in the tree can hold a plain Object as their
// bound scope without this package importing expr's Scope type.
type Object interface {
	Kind() Kind
	Name() string
	Path() string
	Parent() Object
	Members() *Members
	Docstring() *Docstring
	SetDocstring(d *Docstring)
	Labels() set.Set[string]
	Lineno() (int, bool)
	Endlineno() (int, bool)
	Imports() map[string]string
	Exports() ([]string, bool)
	Aliases() []*Alias
	Runtime() bool
	PublicFlag() Visibility
	TypeParameters() []*TypeParameter
	Analysis() AnalysisKind

	// IsPublic implements the tri-state decision of spec §4.1.
	IsPublic() bool
	// resolve implements the five-step lookup algorithm of spec §4.1.
	// It is unexported: callers use ResolveName, which adapts it to the
	// expr.Scope signature.
	resolve(name string) (string, error)
	// ResolveName adapts resolve to expr.Scope's method signature.
	ResolveName(name string) (string, error)
}

// Base holds the fields common to every Object variant. Concrete types
// embed *Base and add their own Kind() and variant-specific fields.
type Base struct {
	name      string
	path      string
	parent    Object
	members   *Members
	docstring *Docstring
	labels    set.Set[string]

	lineno    int
	hasLineno bool
	endlineno int
	hasEnd    bool

	imports map[string]string
	exports []string
	hasAll  bool

	aliases []*Alias
	runtime bool
	public  Visibility

	typeParameters []*TypeParameter
	analysis       AnalysisKind
}

// NewBase constructs a Base with name, path, and parent set; all other
// fields take their zero value until the visitor or loader populates them.
func NewBase(name, path string, parent Object) *Base {
	return &Base{
		name:    name,
		path:    path,
		parent:  parent,
		members: NewMembers(),
		labels:  set.NewSet[string](),
		imports: make(map[string]string),
		runtime: true,
	}
}

func (b *Base) Name() string              { return b.name }
func (b *Base) Path() string              { return b.path }
func (b *Base) Parent() Object            { return b.parent }
func (b *Base) Members() *Members         { return b.members }
func (b *Base) Docstring() *Docstring     { return b.docstring }
func (b *Base) Labels() set.Set[string]   { return b.labels }
func (b *Base) Imports() map[string]string { return b.imports }
func (b *Base) Aliases() []*Alias         { return b.aliases }
func (b *Base) Runtime() bool             { return b.runtime }
func (b *Base) PublicFlag() Visibility    { return b.public }
func (b *Base) TypeParameters() []*TypeParameter { return b.typeParameters }
func (b *Base) Analysis() AnalysisKind    { return b.analysis }

func (b *Base) Lineno() (int, bool)    { return b.lineno, b.hasLineno }
func (b *Base) Endlineno() (int, bool) { return b.endlineno, b.hasEnd }

// Exports returns the module's declared __all__ list and whether __all__
// was declared at all (nil, false means "no __all__ statement").
func (b *Base) Exports() ([]string, bool) { return b.exports, b.hasAll }

func (b *Base) SetDocstring(d *Docstring)          { b.docstring = d }
func (b *Base) SetLineno(line int)                 { b.lineno, b.hasLineno = line, true }
func (b *Base) SetEndlineno(line int)               { b.endlineno, b.hasEnd = line, true }
func (b *Base) SetRuntime(runtime bool)             { b.runtime = runtime }
func (b *Base) SetPublicFlag(v Visibility)          { b.public = v }
func (b *Base) SetTypeParameters(tp []*TypeParameter) { b.typeParameters = tp }
func (b *Base) SetAnalysis(a AnalysisKind)          { b.analysis = a }
func (b *Base) SetExports(names []string)           { b.exports, b.hasAll = names, true }
func (b *Base) AddImport(local, dotted string)      { b.imports[local] = dotted }
func (b *Base) AddAliasRef(a *Alias)                { b.aliases = append(b.aliases, a) }

// RemoveAliasRef drops a from the reverse alias index; called when a's
// target is reassigned or a is deleted, per the lifecycle "deletion
// propagates" invariant.
func (b *Base) RemoveAliasRef(a *Alias) {
	for i, existing := range b.aliases {
		if existing == a {
			b.aliases = append(b.aliases[:i], b.aliases[i+1:]...)
			return
		}
	}
}

// resolve implements spec §4.1's five-step algorithm against a concrete
// owner object (needed so step 2's "return its own path" and step 4's
// self-reference check use the owner's identity, not Base's).
func resolve(owner Object, name string) (string, error) {
	for _, tp := range owner.TypeParameters() {
		if tp.Name == name {
			return owner.Path() + "[" + tp.Kind.Prefix() + name + "]", nil
		}
	}

	if member, ok := owner.Members().Get(name); ok {
		if alias, isAlias := member.(*Alias); isAlias {
			return alias.ResolveTarget()
		}
		return member.Path(), nil
	}

	parent := owner.Parent()
	if parent == nil {
		return "", NewNameResolutionError(name, owner.Path())
	}
	if parent.Kind() == KindClass && parent.Name() == name {
		return parent.Path(), nil
	}
	return parent.resolve(name)
}

// IsPublic implements spec §4.1's public/export decision tree: explicit
// flag wins; else __all__ membership; else private-prefix/import rules;
// else public by default.
func IsPublic(owner Object) bool {
	switch owner.PublicFlag() {
	case VisibilityPublic:
		return true
	case VisibilityPrivate:
		return false
	}

	if module := enclosingModule(owner); module != nil {
		if exports, ok := module.Exports(); ok {
			return contains(exports, owner.Name())
		}
	}

	name := owner.Name()
	if isDunder(name) {
		return true
	}
	if len(name) > 0 && name[0] == '_' {
		return false
	}
	if parent := owner.Parent(); parent != nil {
		if _, imported := parent.Imports()[name]; imported {
			return false
		}
	}
	return true
}

func enclosingModule(o Object) Object {
	for cur := o; cur != nil; cur = cur.Parent() {
		if cur.Kind() == KindModule {
			return cur
		}
	}
	return nil
}

func isDunder(name string) bool {
	return len(name) > 4 && name[:2] == "__" && name[len(name)-2:] == "__"
}

func contains(list []string, target string) bool {
	for _, v := range list {
		if v == target {
			return true
		}
	}
	return false
}
