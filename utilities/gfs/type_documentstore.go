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

import "context"

// MaxBatchWrites Firestore refuses batches holding more writes
const MaxBatchWrites = 500

// DocumentStore a document database addressed by slash separated document paths
type DocumentStore interface {
	Batch() WriteBatch
	Set(ctx context.Context, documentPath string, data map[string]interface{}) error
}

// WriteBatch stages writes applied atomically by Commit
type WriteBatch interface {
	Set(documentPath string, data map[string]interface{})
	Len() int
	Commit(ctx context.Context) error
}

// WriteUnit one staged write
type WriteUnit struct {
	DocumentPath string
	Data         map[string]interface{}
}
