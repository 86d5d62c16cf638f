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
Package importflat imports flat JSON files as Firestore collections

Input

One JSON file per collection, `document id -> document record`, listed in
`import.flat.collections`. Default: users, products, orders read from
users.json, products.json, orders.json.

Output

Firestore documents `<collection>/<document id>`, written as-is.

Cardinality

Batches of at most batch size documents with a final partial batch, or one
write per document when `import.flat.perDocument` is true.

Automatic retrying

No.

*/
package importflat
