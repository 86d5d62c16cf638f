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

package gcs

import (
	"cloud.google.com/go/storage"
)

// Bucket uploads to a Cloud Storage bucket
type Bucket struct {
	bucketHandle *storage.BucketHandle
	name         string
}

// NewBucket bucket handle must be evaluated after storage client init
func NewBucket(storageClient *storage.Client, bucketName string) *Bucket {
	return &Bucket{
		bucketHandle: storageClient.Bucket(bucketName),
		name:         bucketName,
	}
}
