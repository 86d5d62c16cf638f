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
	"sync"
)

// MemoryStore keeps documents in memory, used to rehearse a run without writing to Firestore
type MemoryStore struct {
	mu        sync.Mutex
	documents map[string]map[string]interface{}
	commits   []int
	sets      int
}

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{documents: make(map[string]map[string]interface{})}
}

// memoryBatch stages writes until Commit
type memoryBatch struct {
	store *MemoryStore
	units []WriteUnit
}
