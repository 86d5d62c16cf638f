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
Package services structure

All command packages share a consistent structure

## Two functions and one type

### `Initialize` function

- Goal
  - Fail before the first write when anything is wrong
- Implementation
  - Validates settings, reads and parses every source, then opens the clients
  - Any returned error is a setup failure, nothing has been written
  - Prepared objects are exposed in one variable of type `Global`

### `Global` type

- A `struct` carrying the objects prepared by `Initialize` and used by `EntryPoint`

### `EntryPoint` function

- Goal
  - Perform the writes the command is targetted to do, described before the `package` key word
- Implementation
  - Logs one structured entry per batch or file with running totals
  - Stops on the first error, no retry
  - Returns the run report, finished with a success or failure status

*/
package services
