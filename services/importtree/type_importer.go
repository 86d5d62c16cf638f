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
	"github.com/BrunoReboul/fsmigrate/utilities/gfs"
	"github.com/BrunoReboul/fsmigrate/utilities/logging"
)

// Importer writes collections and their subcollections with batched writes
type Importer struct {
	store                 gfs.DocumentStore
	batchSize             int
	maxDepth              int
	subcollectionsKeyName string
	logEntry              logging.Entry
}

// NewImporter returns an importer writing to store
// logEntry carries the run identity repeated on every log entry
func NewImporter(store gfs.DocumentStore, batchSize int, maxDepth int, subcollectionsKeyName string, logEntry logging.Entry) *Importer {
	return &Importer{
		store:                 store,
		batchSize:             batchSize,
		maxDepth:              maxDepth,
		subcollectionsKeyName: subcollectionsKeyName,
		logEntry:              logEntry,
	}
}
