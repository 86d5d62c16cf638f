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
	"fmt"

	"github.com/BrunoReboul/fsmigrate/utilities/ffo"
)

// ReadCollection reads a flat collection file: an object of documents keyed by id
func ReadCollection(path string) (documents Collection, err error) {
	err = ffo.ReadUnmarshalJSON(path, &documents)
	if err != nil {
		return nil, err
	}
	if documents == nil {
		return nil, fmt.Errorf("%s top level must be an object of documents", path)
	}
	normalize(documents)
	return documents, nil
}
