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
)

// Batch opens a new firestore write batch
func (client *Client) Batch() WriteBatch {
	return &clientBatch{
		firestoreClient: client.firestoreClient,
		writeBatch:      client.firestoreClient.Batch(),
	}
}

// Set stages a full document write
func (batch *clientBatch) Set(documentPath string, data map[string]interface{}) {
	batch.size++
	docRef := batch.firestoreClient.Doc(documentPath)
	if docRef == nil {
		if batch.err == nil {
			batch.err = fmt.Errorf("invalid document path '%s'", documentPath)
		}
		return
	}
	batch.writeBatch.Set(docRef, data)
}

// Len number of staged writes
func (batch *clientBatch) Len() int {
	return batch.size
}

// Commit applies the staged writes in one call
func (batch *clientBatch) Commit(ctx context.Context) (err error) {
	if batch.err != nil {
		return batch.err
	}
	_, err = batch.writeBatch.Commit(ctx)
	if err != nil {
		return fmt.Errorf("writeBatch.Commit %d writes %v", batch.size, err)
	}
	return nil
}
