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

package ffo

import (
	"fmt"
	"os"
)

// CheckFolder returns an error when the path does not exist or is not a folder
func CheckFolder(path string) (err error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("folder not found: %s", path)
		}
		return fmt.Errorf("os.Stat %v", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a folder: %s", path)
	}
	return nil
}
