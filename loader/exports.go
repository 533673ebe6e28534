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
	"strings"

	"github.com/apitree/apitree/collection"
	"github.com/apitree/apitree/internal/logging"
)

// expandExportRefs consumes every Module.PendingExportRefs entry the
// visitor left behind (spec §4.4 step 2, §4.6 step 4): references to
// another module's __all__, e.g. `__all__ = [*utils.__all__, "extra"]`.
// Only the `<module>.__all__` shape is resolved here; a bare name
// referencing some other local list constant is left unexpanded and
// logged, since spec's worked scenarios only exercise the cross-module
// __all__ splice.
func expandExportRefs(col *collection.ModulesCollection, log *logging.Logger) {
	for _, mod := range col.Modules() {
		if len(mod.PendingExportRefs) == 0 {
			continue
		}
		names, _ := mod.Exports()
		names = append([]string(nil), names...)

		for _, ref := range mod.PendingExportRefs {
			modRef, ok := strings.CutSuffix(ref, ".__all__")
			if !ok {
				log.Warning("module %q: __all__ entry %q does not reference another module's __all__, left unexpanded", mod.Path(), ref)
				continue
			}
			dotted := modRef
			if imported, ok := mod.Imports()[modRef]; ok {
				dotted = imported
			}
			other, ok := col.Get(dotted)
			if !ok {
				log.Warning("module %q: __all__ references %q, which did not load", mod.Path(), dotted)
				continue
			}
			if exports, hasAll := other.Exports(); hasAll {
				names = append(names, exports...)
				continue
			}
			for _, obj := range other.WildcardExposed() {
				names = append(names, obj.Name())
			}
		}
		mod.PendingExportRefs = nil
		mod.SetExports(dedupeStrings(names))
	}
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
