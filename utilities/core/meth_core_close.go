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

package core

import (
	"log"
)

// Close releases the clients opened by Initialize
func (core *Core) Close() {
	if core.Services.Topic != nil {
		core.Services.Topic.Stop()
	}
	if core.Services.PubsubClient != nil {
		if err := core.Services.PubsubClient.Close(); err != nil {
			log.Printf("pubsubClient.Close %v", err)
		}
	}
	if core.Services.StorageClient != nil {
		if err := core.Services.StorageClient.Close(); err != nil {
			log.Printf("storageClient.Close %v", err)
		}
	}
	if core.Services.FirestoreClient != nil {
		if err := core.Services.FirestoreClient.Close(); err != nil {
			log.Printf("firestoreClient.Close %v", err)
		}
	}
}
