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

package solution

// SettingsFileName default settings file name
const SettingsFileName = "fsmigrate.yaml"

// DevelopmentEnvironmentName default environment name
const DevelopmentEnvironmentName = "dev"

// DefaultBatchSize writes per Firestore batch, one below the service limit
const DefaultBatchSize = 499

// DefaultMaxDepth Firestore does not nest subcollections deeper than 100 levels
const DefaultMaxDepth = 100

// DefaultSubcollectionsKeyName reserved document key holding nested subcollections in a backup tree
const DefaultSubcollectionsKeyName = "__subcollections"

// DefaultBackupFilePath backup tree used by the recursive import
const DefaultBackupFilePath = "firestore_backup.json"

// DefaultSourceFolderPath local folder mirrored to the bucket
const DefaultSourceFolderPath = "downloaded-storage-files"

// DefaultFlatCollectionNames collections imported from <name>.json when none is configured
var DefaultFlatCollectionNames = []string{"users", "products", "orders"}
