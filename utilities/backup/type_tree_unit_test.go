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

package backup

import (
	"testing"
)

func TestUnitCountDocuments(t *testing.T) {
	var testCases = []struct {
		name string
		tree Tree
		want int64
	}{
		{
			name: "empty",
			want: 0,
		},
		{
			name: "flat",
			tree: Tree{
				{ID: "users", Documents: Collection{"u1": {}, "u2": {}}},
				{ID: "products", Documents: Collection{"p1": {}}},
			},
			want: 3,
		},
		{
			name: "nested",
			tree: Tree{
				{ID: "users", Documents: Collection{
					"u1": {
						"name": "Ann",
						"__subcollections": map[string]interface{}{
							"orders": map[string]interface{}{
								"o1": map[string]interface{}{
									"__subcollections": map[string]interface{}{
										"lines": map[string]interface{}{
											"l1": map[string]interface{}{},
											"l2": map[string]interface{}{},
										},
									},
								},
								"o2": map[string]interface{}{},
							},
						},
					},
				}},
			},
			want: 5,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if result := tc.tree.CountDocuments("__subcollections"); result != tc.want {
				t.Errorf("Want %d have %d", tc.want, result)
			}
		})
	}
}

func TestUnitCheckID(t *testing.T) {
	var testCases = []struct {
		name      string
		id        string
		wantError bool
	}{
		{name: "valid", id: "u1"},
		{name: "empty", id: "", wantError: true},
		{name: "slash", id: "u1/orders", wantError: true},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := CheckID(tc.id)
			if tc.wantError != (err != nil) {
				t.Errorf("Want error %v got %v", tc.wantError, err)
			}
		})
	}
}
