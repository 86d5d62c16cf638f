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
Package fsmcli parses the fsmigrate command line and runs the selected command

	fsmigrate -tree|-flat|-upload [-settings fsmigrate.yaml] [-environment dev] [-source path] [-key serviceAccount.json] [-dryrun]

-tree imports a nested backup tree, -flat imports flat collection files, -upload
mirrors a local folder to a bucket. -source overrides the backup file for -tree
and the source folder for -upload. -dryrun reads and checks everything, then
writes to in memory stores only.

Exit status is 0 on success, 1 on any failure.
*/
package fsmcli
