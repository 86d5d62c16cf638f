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
Package uploadfolder uploads a local folder tree to a Cloud Storage bucket

Input

`upload.sourceFolderPath`, default `downloaded-storage-files`, walked
recursively in lexical order. Symbolic links to files are uploaded, folders are
traversed and never uploaded.

Output

One object per file in bucket `hosting.gcs.buckets.files.name`, named after the
file path relative to the source folder with forward slashes, prefixed by
`upload.objectNamePrefix` when set.

Cardinality

One upload per file, one at a time.

Automatic retrying

No.

*/
package uploadfolder
