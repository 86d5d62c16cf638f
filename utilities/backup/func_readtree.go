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

package backup

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BrunoReboul/fsmigrate/utilities/ffo"
)

// ReadTree reads a backup tree, root collections kept in file order
// A root collection repeated in the file keeps its first position and its last value
func ReadTree(path string) (tree Tree, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open %v", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(bufio.NewReader(file))
	decoder.UseNumber()
	token, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("json decode %s %v", path, err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("json decode %s top level must be an object of collections", path)
	}
	positions := make(map[string]int)
	for decoder.More() {
		token, err = decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("json decode %s %v", path, err)
		}
		collectionID, _ := token.(string)
		var documents Collection
		err = decoder.Decode(&documents)
		if err != nil {
			return nil, fmt.Errorf("json decode %s collection '%s' %v", path, collectionID, err)
		}
		if err = CheckID(collectionID); err != nil {
			return nil, fmt.Errorf("%s root collection %v", path, err)
		}
		normalize(documents)
		if i, ok := positions[collectionID]; ok {
			tree[i].Documents = documents
			continue
		}
		positions[collectionID] = len(tree)
		tree = append(tree, RootCollection{ID: collectionID, Documents: documents})
	}
	if _, err = decoder.Token(); err != nil {
		return nil, fmt.Errorf("json decode %s %v", path, err)
	}
	if _, err = decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("json decode %s unexpected data after the top level object", path)
	}
	return tree, nil
}

func normalize(documents Collection) {
	for _, record := range documents {
		if record != nil {
			ffo.NormalizeNumbers(map[string]interface{}(record))
		}
	}
}
