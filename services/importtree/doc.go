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
Package importtree imports a nested backup tree into Firestore

Each root collection of the backup file is written with batched writes,
then each document subcollection found under the reserved key is imported the
same way under the parent document path.

Input

A JSON object: root collection name -> document id -> document record.
A record may hold the reserved key, default `__subcollections`, mapping a
subcollection name to its documents, at any depth.

	{
	  "users": {
	    "u1": {
	      "name": "Ann",
	      "__subcollections": {
	        "orders": {"o1": {"qty": 3}}
	      }
	    }
	  }
	}

Output

Firestore documents `users/u1` and `users/u1/orders/o1`. The reserved key is
never written.

Cardinality

One batch per chunk of at most batch size documents of a collection.
Subcollections are committed before the batch of their parent chunk.

Automatic retrying

No. A failed commit aborts the run.

Implementation example

	global := importtree.Global{}
	if err := importtree.Initialize(core, &global); err != nil {
	    log.Fatalln(err)
	}
	runReport, err := importtree.EntryPoint(&global)

*/
package importtree
