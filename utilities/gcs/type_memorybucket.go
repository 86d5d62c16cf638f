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
	"os"
	"sort"
	"sync"
)

// MemoryBucket records uploads without sending them, used to rehearse a run
type MemoryBucket struct {
	mu      sync.Mutex
	objects map[string]int64
	order   []string
}

// NewMemoryBucket returns an empty bucket
func NewMemoryBucket() *MemoryBucket {
	return &MemoryBucket{objects: make(map[string]int64)}
}

// Upload records the object name and the local file size
func (bucket *MemoryBucket) Upload(ctx context.Context, localPath string, objectName string) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(localPath)
	if err != nil {
		return fmt.Errorf("os.Stat %v", err)
	}
	if objectName == "" {
		return fmt.Errorf("empty object name for %s", localPath)
	}
	bucket.mu.Lock()
	defer bucket.mu.Unlock()
	bucket.objects[objectName] = info.Size()
	bucket.order = append(bucket.order, objectName)
	return nil
}

// ObjectNames sorted names of the uploaded objects
func (bucket *MemoryBucket) ObjectNames() (objectNames []string) {
	bucket.mu.Lock()
	defer bucket.mu.Unlock()
	for objectName := range bucket.objects {
		objectNames = append(objectNames, objectName)
	}
	sort.Strings(objectNames)
	return objectNames
}

// UploadOrder object names in upload order, repeated when overridden
func (bucket *MemoryBucket) UploadOrder() []string {
	bucket.mu.Lock()
	defer bucket.mu.Unlock()
	return append([]string(nil), bucket.order...)
}

// Size size of an uploaded object
func (bucket *MemoryBucket) Size(objectName string) (size int64, ok bool) {
	bucket.mu.Lock()
	defer bucket.mu.Unlock()
	size, ok = bucket.objects[objectName]
	return size, ok
}
