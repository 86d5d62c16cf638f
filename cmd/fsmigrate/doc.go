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
Command fsmigrate replays exported data into a Google Cloud project.

Usage

	fsmigrate -tree|-flat|-upload [-settings fsmigrate.yaml] [-environment dev] [-source path] [-key key.json] [-dryrun]

Exactly one of -tree, -flat, -upload is required. The exit code is 1 on any
setup or run failure.
*/
package main
