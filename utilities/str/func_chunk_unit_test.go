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

package str

import (
	"reflect"
	"testing"
)

func TestUnitChunk(t *testing.T) {
	var testCases = []struct {
		name   string
		values []string
		size   int
		want   [][]string
	}{
		{
			name:   "empty",
			values: []string{},
			size:   2,
			want:   nil,
		},
		{
			name:   "lessThanSize",
			values: []string{"a", "b"},
			size:   3,
			want:   [][]string{{"a", "b"}},
		},
		{
			name:   "exactSize",
			values: []string{"a", "b", "c"},
			size:   3,
			want:   [][]string{{"a", "b", "c"}},
		},
		{
			name:   "lastChunkPartial",
			values: []string{"a", "b", "c", "d", "e"},
			size:   2,
			want:   [][]string{{"a", "b"}, {"c", "d"}, {"e"}},
		},
		{
			name:   "zeroSizeIsOne",
			values: []string{"a", "b"},
			size:   0,
			want:   [][]string{{"a"}, {"b"}},
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := Chunk(tc.values, tc.size)
			if !reflect.DeepEqual(tc.want, result) {
				t.Errorf("Want %v have %v", tc.want, result)
			}
		})
	}
}
