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
package jsonmodel

import (
	"encoding/json"

	"github.com/apitree/apitree/model"
)

// Marshal encodes obj to indented JSON, the shape `apitree dump` writes to
// stdout or a file.
func Marshal(obj model.Object, full bool) ([]byte, error) {
	return json.MarshalIndent(Encode(obj, full), "", "  ")
}

// Unmarshal parses JSON previously produced by Marshal(obj, false) back
// into a model.Object tree.
func Unmarshal(data []byte) (model.Object, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return Decode(raw)
}
