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
	"path/filepath"

	"github.com/BrunoReboul/fsmigrate/utilities/str"
)

// ListFiles recursively lists the regular files under rootPath in lexical order
// RelativePath uses forward slashes. Symbolic links are followed, files found under a linked folder are listed under the link name
// A link to a folder already being walked is a cycle and returns an error
func ListFiles(rootPath string) (localFiles []LocalFile, err error) {
	realRootPath, err := filepath.EvalSymlinks(rootPath)
	if err != nil {
		return nil, fmt.Errorf("filepath.EvalSymlinks %v", err)
	}
	err = listFolder(realRootPath, rootPath, "", map[string]bool{realRootPath: true}, &localFiles)
	if err != nil {
		return nil, fmt.Errorf("filepath.Walk %s %v", rootPath, err)
	}
	return localFiles, nil
}

// listFolder walks realFolderPath, reporting paths under localFolderPath and relativeFolderPath
// walking holds the real paths of the linked folders on the way down from the root
func listFolder(realFolderPath, localFolderPath, relativeFolderPath string, walking map[string]bool, localFiles *[]LocalFile) error {
	return filepath.Walk(realFolderPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		pathInFolder, err := filepath.Rel(realFolderPath, path)
		if err != nil {
			return fmt.Errorf("filepath.Rel %v", err)
		}
		localPath := filepath.Join(localFolderPath, pathInFolder)
		relativePath := filepath.Join(relativeFolderPath, pathInFolder)
		if info.Mode()&os.ModeSymlink != 0 {
			info, err = os.Stat(path)
			if err != nil {
				return fmt.Errorf("os.Stat %v", err)
			}
			if info.IsDir() {
				target, err := filepath.EvalSymlinks(path)
				if err != nil {
					return fmt.Errorf("filepath.EvalSymlinks %v", err)
				}
				if walking[target] {
					return fmt.Errorf("symbolic link cycle %s -> %s", localPath, target)
				}
				linked := make(map[string]bool, len(walking)+1)
				for folderPath := range walking {
					linked[folderPath] = true
				}
				linked[target] = true
				return listFolder(target, localPath, relativePath, linked, localFiles)
			}
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		*localFiles = append(*localFiles, LocalFile{
			LocalPath:    localPath,
			RelativePath: str.ToSlash(relativePath),
			Size:         info.Size(),
		})
		return nil
	})
}
