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

package fsmcli

import (
	"fmt"

	"github.com/BrunoReboul/fsmigrate/utilities/core"
)

// Command returns the one selected command
func (settings Settings) Command() (command string, err error) {
	var commands []string
	if settings.Commands.Tree {
		commands = append(commands, core.CommandTree)
	}
	if settings.Commands.Flat {
		commands = append(commands, core.CommandFlat)
	}
	if settings.Commands.Upload {
		commands = append(commands, core.CommandUpload)
	}
	switch len(commands) {
	case 0:
		return "", fmt.Errorf("missing command, use one of -tree -flat -upload")
	case 1:
		return commands[0], nil
	}
	return "", fmt.Errorf("one command at a time, got %v", commands)
}
