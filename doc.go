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

/*
Package fsmigrate replays exported data into a Google Cloud project

## What

Copy a Firestore export and its Cloud Storage files into a new project:

1. `fsmigrate -tree` imports a nested backup tree, subcollections included,
   with batched writes
2. `fsmigrate -flat` imports flat `document id -> record` JSON files as
   collections
3. `fsmigrate -upload` mirrors a local folder tree into a bucket

## How

- One settings file, `fsmigrate.yaml`, with per environment project ids, key
  files and bucket names
- Structured JSON logs, one entry per batch or file, tagged with the run id
- A run report recorded in Firestore and published in Pub/Sub when configured
- `-dryrun` reads and checks everything and writes to in memory stores only
*/
package fsmigrate
