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

package importtree

import (
	"context"
	"fmt"
	"log"

	"github.com/BrunoReboul/fsmigrate/utilities/backup"
	"github.com/BrunoReboul/fsmigrate/utilities/str"
)

// ImportCollection writes documents under collectionPath, chunk by chunk, then returns the updated tally
// Subcollections of a chunk are imported before the chunk batch is committed
// depth is 0 for a root collection
func (importer *Importer) ImportCollection(ctx context.Context, tally Tally, collectionPath string, documents backup.Collection, depth int) (Tally, error) {
	if len(documents) == 0 {
		return tally, nil
	}
	if depth > importer.maxDepth {
		return tally, fmt.Errorf("%s is nested %d levels deep, max is %d", collectionPath, depth, importer.maxDepth)
	}
	entry := importer.logEntry
	entry.Message = fmt.Sprintf("importing %d documents", len(documents))
	entry.CollectionPath = collectionPath
	log.Println(entry)

	var err error
	for _, ids := range str.Chunk(documents.IDs(), importer.batchSize) {
		batch := importer.store.Batch()
		for _, id := range ids {
			if err = backup.CheckID(id); err != nil {
				return tally, fmt.Errorf("%s document %v", collectionPath, err)
			}
			record := documents[id]
			if record == nil {
				return tally, fmt.Errorf("%s document '%s' is null", collectionPath, id)
			}
			payload, subcollections, names, err := importer.splitRecord(record)
			if err != nil {
				return tally, fmt.Errorf("%s/%s %v", collectionPath, id, err)
			}
			documentPath := fmt.Sprintf("%s/%s", collectionPath, id)
			batch.Set(documentPath, payload)
			tally.DocumentsWritten++

			for _, name := range names {
				if err = backup.CheckID(name); err != nil {
					return tally, fmt.Errorf("%s subcollection %v", documentPath, err)
				}
				tally, err = importer.ImportCollection(ctx, tally, fmt.Sprintf("%s/%s", documentPath, name), subcollections[name], depth+1)
				if err != nil {
					return tally, err
				}
			}
		}
		if err = batch.Commit(ctx); err != nil {
			return tally, fmt.Errorf("%s commit of %d documents %v", collectionPath, batch.Len(), err)
		}
		tally.BatchesCommitted++

		entry = importer.logEntry
		entry.Message = fmt.Sprintf("committed batch of %d documents", batch.Len())
		entry.CollectionPath = collectionPath
		entry.DocumentsWritten = tally.DocumentsWritten
		entry.BatchesCommitted = tally.BatchesCommitted
		log.Println(entry)
	}
	return tally, nil
}
