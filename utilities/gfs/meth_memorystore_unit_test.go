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

package gfs

import (
	"context"
	"fmt"
	"reflect"
	"testing"
)

func TestUnitMemoryBatchCommit(t *testing.T) {
	var testCases = []struct {
		name          string
		documentPaths []string
		wantError     bool
		wantCommits   []int
	}{
		{
			name:          "oneWrite",
			documentPaths: []string{"users/u1"},
			wantCommits:   []int{1},
		},
		{
			name:          "nestedPath",
			documentPaths: []string{"users/u1", "users/u1/orders/o1"},
			wantCommits:   []int{2},
		},
		{
			name:      "empty",
			wantError: true,
		},
		{
			name:          "collectionPathIsNotADocument",
			documentPaths: []string{"users/u1", "users"},
			wantError:     true,
		},
		{
			name:          "emptySegment",
			documentPaths: []string{"users//orders/o1"},
			wantError:     true,
		},
		{
			name:          "tooManyWrites",
			documentPaths: makeDocumentPaths("big", MaxBatchWrites+1),
			wantError:     true,
		},
		{
			name:          "maxWrites",
			documentPaths: makeDocumentPaths("big", MaxBatchWrites),
			wantCommits:   []int{MaxBatchWrites},
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			store := NewMemoryStore()
			batch := store.Batch()
			for _, documentPath := range tc.documentPaths {
				batch.Set(documentPath, map[string]interface{}{"path": documentPath})
			}
			if batch.Len() != len(tc.documentPaths) {
				t.Errorf("Want Len %d got %d", len(tc.documentPaths), batch.Len())
			}
			err := batch.Commit(context.Background())
			if tc.wantError {
				if err == nil {
					t.Errorf("Want an error got NONE")
				}
				if len(store.DocumentPaths()) != 0 {
					t.Errorf("Want no document written on a failed commit, got %v", store.DocumentPaths())
				}
				return
			}
			if err != nil {
				t.Fatalf("Want NO error got %v", err)
			}
			if !reflect.DeepEqual(tc.wantCommits, store.Commits()) {
				t.Errorf("Want commits %v got %v", tc.wantCommits, store.Commits())
			}
			for _, documentPath := range tc.documentPaths {
				data, ok := store.Document(documentPath)
				if !ok {
					t.Errorf("Want document %s", documentPath)
					continue
				}
				if data["path"] != documentPath {
					t.Errorf("Want data path '%s' got '%v'", documentPath, data["path"])
				}
			}
		})
	}
}

func TestUnitMemoryStoreSet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	if err := store.Set(ctx, "products/p1", map[string]interface{}{"name": "book"}); err != nil {
		t.Fatalf("Want NO error got %v", err)
	}
	if err := store.Set(ctx, "products", map[string]interface{}{}); err == nil {
		t.Errorf("Want an error on a collection path")
	}
	if store.Sets() != 1 {
		t.Errorf("Want 1 set got %d", store.Sets())
	}
	if len(store.Commits()) != 0 {
		t.Errorf("Want no commit got %v", store.Commits())
	}
	canceledCtx, cancel := context.WithCancel(ctx)
	cancel()
	if err := store.Set(canceledCtx, "products/p2", map[string]interface{}{}); err == nil {
		t.Errorf("Want an error on a canceled context")
	}
}

func makeDocumentPaths(collectionID string, n int) (documentPaths []string) {
	for i := 0; i < n; i++ {
		documentPaths = append(documentPaths, fmt.Sprintf("%s/d%04d", collectionID, i))
	}
	return documentPaths
}
