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
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadUnmarshalJSON Read a JSON file from a given path into v, numbers kept as json.Number
// Use NormalizeNumbers on the decoded values before writing them to Firestore
func ReadUnmarshalJSON(path string, v interface{}) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("os.Open %v", err)
	}
	defer file.Close()
	decoder := json.NewDecoder(bufio.NewReader(file))
	decoder.UseNumber()
	err = decoder.Decode(v)
	if err != nil {
		return fmt.Errorf("json decode %s %v", path, err)
	}
	if _, err = decoder.Token(); err != io.EOF {
		return fmt.Errorf("json decode %s unexpected data after the top level value", path)
	}
	return nil
}
