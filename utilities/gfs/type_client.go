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

package gfs

import (
	"cloud.google.com/go/firestore"
)

// Client writes to Firestore
type Client struct {
	firestoreClient *firestore.Client
}

// NewClient wraps a firestore client
func NewClient(firestoreClient *firestore.Client) *Client {
	return &Client{firestoreClient: firestoreClient}
}

// clientBatch a firestore write batch, keeping the first invalid path as the commit error
type clientBatch struct {
	firestoreClient *firestore.Client
	writeBatch      *firestore.WriteBatch
	size            int
	err             error
}
