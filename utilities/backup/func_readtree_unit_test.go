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
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "firestore_backup.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUnitReadTree(t *testing.T) {
	var testCases = []struct {
		name        string
		content     string
		wantError   bool
		wantIDs     []string
		wantCounts  []int
		wantRecords map[string]Record
	}{
		{
			name:       "fileOrderKept",
			content:    `{"users": {"u1": {}}, "products": {"p1": {}, "p2": {}}, "orders": {}}`,
			wantIDs:    []string{"users", "products", "orders"},
			wantCounts: []int{1, 2, 0},
		},
		{
			name:       "duplicateKeepsFirstPositionLastValue",
			content:    `{"a": {"x": {}}, "b": {}, "a": {"y": {}, "z": {}}}`,
			wantIDs:    []string{"a", "b"},
			wantCounts: []int{2, 0},
		},
		{
			name:    "numbersAndSubcollections",
			content: `{"users": {"u1": {"name": "Ann", "age": 42, "ratio": 0.5, "__subcollections": {"orders": {"o1": {"qty": 3}}}}}}`,
			wantIDs: []string{"users"},
			wantRecords: map[string]Record{
				"u1": {
					"name":  "Ann",
					"age":   int64(42),
					"ratio": 0.5,
					"__subcollections": map[string]interface{}{
						"orders": map[string]interface{}{
							"o1": map[string]interface{}{"qty": int64(3)},
						},
					},
				},
			},
			wantCounts: []int{1},
		},
		{
			name:    "emptyTree",
			content: ` {} `,
		},
		{
			name:      "topLevelArray",
			content:   `[{"users": {}}]`,
			wantError: true,
		},
		{
			name:      "topLevelNull",
			content:   `null`,
			wantError: true,
		},
		{
			name:      "documentNotAnObject",
			content:   `{"users": {"u1": "Ann"}}`,
			wantError: true,
		},
		{
			name:      "collectionNotAnObject",
			content:   `{"users": 12}`,
			wantError: true,
		},
		{
			name:      "rootIDWithSlash",
			content:   `{"users/u1/orders": {}}`,
			wantError: true,
		},
		{
			name:      "truncated",
			content:   `{"users": {"u1": {}}`,
			wantError: true,
		},
		{
			name:      "trailingData",
			content:   `{"users": {}} {}`,
			wantError: true,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tree, err := ReadTree(writeFile(t, tc.content))
			if tc.wantError {
				if err == nil {
					t.Errorf("Want an error got NONE")
				}
				return
			}
			if err != nil {
				t.Fatalf("Want NO error got %v", err)
			}
			var ids []string
			var counts []int
			for _, rootCollection := range tree {
				ids = append(ids, rootCollection.ID)
				counts = append(counts, len(rootCollection.Documents))
			}
			if !reflect.DeepEqual(tc.wantIDs, ids) {
				t.Errorf("Want ids %v got %v", tc.wantIDs, ids)
			}
			if !reflect.DeepEqual(tc.wantCounts, counts) {
				t.Errorf("Want counts %v got %v", tc.wantCounts, counts)
			}
			for id, wantRecord := range tc.wantRecords {
				if !reflect.DeepEqual(wantRecord, tree[0].Documents[id]) {
					t.Errorf("Want record %v got %v", wantRecord, tree[0].Documents[id])
				}
			}
		})
	}
}

func TestUnitReadTreeMissingFile(t *testing.T) {
	if _, err := ReadTree(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("Want an error on a missing file")
	}
}

func TestUnitReadCollection(t *testing.T) {
	documents, err := ReadCollection(writeFile(t, `{"p2": {"price": 12.5}, "p1": {"price": 10, "__subcollections": {}}}`))
	if err != nil {
		t.Fatalf("Want NO error got %v", err)
	}
	if !reflect.DeepEqual([]string{"p1", "p2"}, documents.IDs()) {
		t.Errorf("Want sorted ids [p1 p2] got %v", documents.IDs())
	}
	if documents["p1"]["price"] != int64(10) || documents["p2"]["price"] != 12.5 {
		t.Errorf("Unexpected prices %v %v", documents["p1"]["price"], documents["p2"]["price"])
	}
	if _, ok := documents["p1"]["__subcollections"]; !ok {
		t.Errorf("Want flat records read as-is")
	}
	if _, err := ReadCollection(writeFile(t, `null`)); err == nil {
		t.Errorf("Want an error on null")
	}
	if _, err := ReadCollection(writeFile(t, `{"p1": [1, 2]}`)); err == nil {
		t.Errorf("Want an error on a document that is not an object")
	}
}
