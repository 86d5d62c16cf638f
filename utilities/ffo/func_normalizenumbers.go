// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ffo

import (
	"encoding/json"
)

// NormalizeNumbers walks a decoded JSON value and converts json.Number to int64 when integral, float64 otherwise
func NormalizeNumbers(value interface{}) interface{} {
	switch v := value.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		f, err := v.Float64()
		if err != nil {
			// out of float64 range, keep the literal
			return v.String()
		}
		return f
	case map[string]interface{}:
		for key, child := range v {
			v[key] = NormalizeNumbers(child)
		}
		return v
	case []interface{}:
		for i, child := range v {
			v[i] = NormalizeNumbers(child)
		}
		return v
	}
	return value
}
