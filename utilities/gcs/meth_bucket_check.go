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
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/storage"
)

// Check returns an error when the bucket cannot be read, e.g. it does not exist
func (bucket *Bucket) Check(ctx context.Context) (err error) {
	_, err = bucket.bucketHandle.Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrBucketNotExist) {
			return fmt.Errorf("bucket %s doesn't exist", bucket.name)
		}
		return fmt.Errorf("bucket.Attrs %s %v", bucket.name, err)
	}
	return nil
}
