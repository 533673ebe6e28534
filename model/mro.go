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

// c3Linearize computes the C3 method resolution order for c: c itself
// followed by its ancestors in the order Python would search them,
// generalized from a single resolveSuperclass chain walk into full
// multiple-inheritance merge (spec §4.5). Bases the alias resolver could
// not resolve are simply absent from c.resolvedBases and so never
// participate; on a genuine C3 conflict (no candidate head is clean
// across all tails) the head of the first remaining sequence is taken
// anyway and the merge goes on, since a best-effort flattened view is
// preferable to raising out of what is otherwise a read-only query.
func c3Linearize(c *Class) []*Class {
	if c == nil {
		return nil
	}
	if len(c.resolvedBases) == 0 {
		return []*Class{c}
	}

	sequences := make([][]*Class, 0, len(c.resolvedBases)+1)
	for _, base := range c.resolvedBases {
		sequences = append(sequences, c3Linearize(base))
	}
	sequences = append(sequences, append([]*Class{}, c.resolvedBases...))

	merged := []*Class{c}
	for {
		sequences = dropEmpty(sequences)
		if len(sequences) == 0 {
			break
		}
		head := pickC3Head(sequences)
		if head == nil {
			// genuine conflict: no candidate head is clean across all
			// tails. Fall back to draining the first sequence in order
			// rather than failing the whole query.
			head = sequences[0][0]
		}
		merged = append(merged, head)
		for i, seq := range sequences {
			sequences[i] = removeFirstOccurrence(seq, head)
		}
	}
	return merged
}

func pickC3Head(sequences [][]*Class) *Class {
	for _, seq := range sequences {
		candidate := seq[0]
		if isValidC3Head(candidate, sequences) {
			return candidate
		}
	}
	return nil
}

func isValidC3Head(candidate *Class, sequences [][]*Class) bool {
	for _, seq := range sequences {
		for _, c := range seq[1:] {
			if c == candidate {
				return false
			}
		}
	}
	return true
}

func dropEmpty(sequences [][]*Class) [][]*Class {
	out := sequences[:0]
	for _, seq := range sequences {
		if len(seq) > 0 {
			out = append(out, seq)
		}
	}
	return out
}

func removeFirstOccurrence(seq []*Class, target *Class) []*Class {
	out := make([]*Class, 0, len(seq))
	removed := false
	for _, c := range seq {
		if !removed && c == target {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out
}
