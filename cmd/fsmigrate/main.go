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

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/BrunoReboul/fsmigrate/utilities/fsmcli"
	"github.com/BrunoReboul/fsmigrate/utilities/logging"
)

func main() {
	log.SetFlags(0)
	settings, err := fsmcli.CheckArguments(os.Args[1:], os.Stderr)
	if err == nil {
		err = fsmcli.Run(context.Background(), settings)
	}
	if err != nil {
		log.Println(logging.Entry{
			Severity:    "CRITICAL",
			Message:     "fsmigrate failed",
			Description: fmt.Sprintf("%v", err),
		})
		os.Exit(1)
	}
}
