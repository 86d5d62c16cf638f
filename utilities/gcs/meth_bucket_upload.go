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
	"fmt"
	"io"
	"os"
)

// Upload streams a local file to the object named objectName, overriding it if present
func (bucket *Bucket) Upload(ctx context.Context, localPath string, objectName string) (err error) {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("os.Open %v", err)
	}
	defer file.Close()

	// cancelling the context before Close discards a partial object
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	storageObjectWriter := bucket.bucketHandle.Object(objectName).NewWriter(ctx)
	_, err = io.Copy(storageObjectWriter, file)
	if err != nil {
		cancel()
		return fmt.Errorf("io.Copy(storageObjectWriter, file): gs://%s/%s %v", bucket.name, objectName, err)
	}
	err = storageObjectWriter.Close()
	if err != nil {
		return fmt.Errorf("storageObjectWriter.Close(): gs://%s/%s %v", bucket.name, objectName, err)
	}
	return nil
}
