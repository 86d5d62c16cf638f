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
	"log"

	"github.com/BrunoReboul/fsmigrate/utilities/backup"
	"github.com/BrunoReboul/fsmigrate/utilities/gfs"
	"github.com/BrunoReboul/fsmigrate/utilities/logging"
	"github.com/BrunoReboul/fsmigrate/utilities/str"
)

// writeCollection writes documents under collectionName in id order
// batchSize <= 0 writes one document per call
func writeCollection(ctx context.Context, store gfs.DocumentStore, collectionName string, documents backup.Collection, batchSize int, logEntry logging.Entry) (documentsWritten int64, batchesCommitted int64, err error) {
	ids := documents.IDs()
	for _, id := range ids {
		if err = backup.CheckID(id); err != nil {
			return 0, 0, fmt.Errorf("%s document %v", collectionName, err)
		}
		if documents[id] == nil {
			return 0, 0, fmt.Errorf("%s document '%s' is null", collectionName, id)
		}
	}

	if batchSize <= 0 {
		for _, id := range ids {
			err = store.Set(ctx, fmt.Sprintf("%s/%s", collectionName, id), documents[id])
			if err != nil {
				return documentsWritten, batchesCommitted, fmt.Errorf("%s/%s set %v", collectionName, id, err)
			}
			documentsWritten++
		}
		return documentsWritten, batchesCommitted, nil
	}

	for _, chunk := range str.Chunk(ids, batchSize) {
		batch := store.Batch()
		for _, id := range chunk {
			batch.Set(fmt.Sprintf("%s/%s", collectionName, id), documents[id])
		}
		if err = batch.Commit(ctx); err != nil {
			return documentsWritten, batchesCommitted, fmt.Errorf("%s commit of %d documents %v", collectionName, batch.Len(), err)
		}
		documentsWritten += int64(batch.Len())
		batchesCommitted++

		entry := logEntry
		entry.Message = fmt.Sprintf("committed batch of %d documents", batch.Len())
		entry.CollectionPath = collectionName
		entry.DocumentsWritten = documentsWritten
		entry.BatchesCommitted = batchesCommitted
		log.Println(entry)
	}
	return documentsWritten, batchesCommitted, nil
}
