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

package importflat

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/BrunoReboul/fsmigrate/utilities/backup"
	"github.com/BrunoReboul/fsmigrate/utilities/gfs"
	"github.com/BrunoReboul/fsmigrate/utilities/logging"
)

func makeCollection(n int) backup.Collection {
	documents := make(backup.Collection, n)
	for i := 0; i < n; i++ {
		documents[fmt.Sprintf("p%04d", i)] = backup.Record{"price": float64(i) + 0.5}
	}
	return documents
}

func TestUnitWriteCollection(t *testing.T) {
	var testCases = []struct {
		name          string
		documents     backup.Collection
		batchSize     int
		wantDocuments int64
		wantCommits   []int
		wantSets      int
	}{
		{
			name:          "perDocument",
			documents:     makeCollection(3),
			wantDocuments: 3,
			wantSets:      3,
		},
		{
			name:          "oneBatch",
			documents:     makeCollection(3),
			batchSize:     499,
			wantDocuments: 3,
			wantCommits:   []int{3},
		},
		{
			name:          "finalPartialBatch",
			documents:     makeCollection(1200),
			batchSize:     499,
			wantDocuments: 1200,
			wantCommits:   []int{499, 499, 202},
		},
		{
			name:      "empty",
			documents: backup.Collection{},
			batchSize: 499,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			store := gfs.NewMemoryStore()
			documentsWritten, batchesCommitted, err := writeCollection(context.Background(), store, "products", tc.documents, tc.batchSize, logging.Entry{})
			if err != nil {
				t.Fatalf("Want NO error got %v", err)
			}
			if documentsWritten != tc.wantDocuments {
				t.Errorf("Want %d documents got %d", tc.wantDocuments, documentsWritten)
			}
			if batchesCommitted != int64(len(tc.wantCommits)) {
				t.Errorf("Want %d batches got %d", len(tc.wantCommits), batchesCommitted)
			}
			if !reflect.DeepEqual(tc.wantCommits, store.Commits()) {
				t.Errorf("Want commits %v got %v", tc.wantCommits, store.Commits())
			}
			if store.Sets() != tc.wantSets {
				t.Errorf("Want %d sets got %d", tc.wantSets, store.Sets())
			}
			if int64(len(store.DocumentPaths())) != tc.wantDocuments {
				t.Errorf("Want %d stored documents got %d", tc.wantDocuments, len(store.DocumentPaths()))
			}
		})
	}
}

func TestUnitWriteCollectionRecordsAsIs(t *testing.T) {
	store := gfs.NewMemoryStore()
	documents := backup.Collection{"o1": backup.Record{"qty": int64(2), "__subcollections": map[string]interface{}{}}}
	if _, _, err := writeCollection(context.Background(), store, "orders", documents, 0, logging.Entry{}); err != nil {
		t.Fatalf("Want NO error got %v", err)
	}
	order, _ := store.Document("orders/o1")
	if !reflect.DeepEqual(map[string]interface{}(documents["o1"]), order) {
		t.Errorf("Want the record written as-is got %v", order)
	}
}

func TestUnitWriteCollectionInvalidDocuments(t *testing.T) {
	var testCases = []struct {
		name         string
		documents    backup.Collection
		wantErrorMsg string
	}{
		{
			name:         "idWithSlash",
			documents:    backup.Collection{"a": {}, "b/c": {}},
			wantErrorMsg: "contains '/'",
		},
		{
			name:         "nullDocument",
			documents:    backup.Collection{"a": {}, "b": nil},
			wantErrorMsg: "is null",
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			store := gfs.NewMemoryStore()
			_, _, err := writeCollection(context.Background(), store, "users", tc.documents, 499, logging.Entry{})
			if err == nil || !strings.Contains(err.Error(), tc.wantErrorMsg) {
				t.Errorf("Want an error containing '%s' got %v", tc.wantErrorMsg, err)
			}
			if len(store.DocumentPaths()) != 0 {
				t.Errorf("Want nothing written got %v", store.DocumentPaths())
			}
		})
	}
}
