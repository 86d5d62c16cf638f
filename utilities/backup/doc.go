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
Package backup reads exported Firestore data from JSON files

A backup tree is an object of root collections, each an object of documents keyed by id:

 {
     "users": {
         "u1": {
             "name": "Ann",
             "__subcollections": {
                 "orders": {
                     "o1": {"item": "book"}
                 }
             }
         }
     }
 }

The reserved key, here "__subcollections", holds the nested collections of a document in the same shape.
A flat collection file is a single object of documents keyed by id.

Integral JSON numbers are read as int64, other numbers as float64.
*/
package backup
