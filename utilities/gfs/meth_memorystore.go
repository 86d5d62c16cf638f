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
	"sort"
	"strings"
)

// Batch opens a new in memory batch
func (store *MemoryStore) Batch() WriteBatch {
	return &memoryBatch{store: store}
}

// Set writes one document immediately
func (store *MemoryStore) Set(ctx context.Context, documentPath string, data map[string]interface{}) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}
	if err = checkDocumentPath(documentPath); err != nil {
		return err
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	store.documents[documentPath] = data
	store.sets++
	return nil
}

// Document returns the data of a document and whether it exists
func (store *MemoryStore) Document(documentPath string) (data map[string]interface{}, ok bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	data, ok = store.documents[documentPath]
	return data, ok
}

// DocumentPaths sorted paths of the stored documents
func (store *MemoryStore) DocumentPaths() (documentPaths []string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for documentPath := range store.documents {
		documentPaths = append(documentPaths, documentPath)
	}
	sort.Strings(documentPaths)
	return documentPaths
}

// Commits the number of writes of each committed batch, in commit order
func (store *MemoryStore) Commits() []int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return append([]int(nil), store.commits...)
}

// Sets the number of single document writes
func (store *MemoryStore) Sets() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.sets
}

// Set stages a full document write
func (batch *memoryBatch) Set(documentPath string, data map[string]interface{}) {
	batch.units = append(batch.units, WriteUnit{DocumentPath: documentPath, Data: data})
}

// Len number of staged writes
func (batch *memoryBatch) Len() int {
	return len(batch.units)
}

// Commit applies all staged writes or none
func (batch *memoryBatch) Commit(ctx context.Context) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}
	if len(batch.units) == 0 {
		return fmt.Errorf("cannot commit an empty batch")
	}
	if len(batch.units) > MaxBatchWrites {
		return fmt.Errorf("batch holds %d writes, max is %d", len(batch.units), MaxBatchWrites)
	}
	for _, unit := range batch.units {
		if err = checkDocumentPath(unit.DocumentPath); err != nil {
			return err
		}
	}
	batch.store.mu.Lock()
	defer batch.store.mu.Unlock()
	for _, unit := range batch.units {
		batch.store.documents[unit.DocumentPath] = unit.Data
	}
	batch.store.commits = append(batch.store.commits, len(batch.units))
	return nil
}

// checkDocumentPath a document path has an even, non zero, number of non empty segments
func checkDocumentPath(documentPath string) error {
	segments := strings.Split(documentPath, "/")
	if documentPath == "" || len(segments)%2 != 0 {
		return fmt.Errorf("invalid document path '%s'", documentPath)
	}
	for _, segment := range segments {
		if segment == "" {
			return fmt.Errorf("invalid document path '%s'", documentPath)
		}
	}
	return nil
}
