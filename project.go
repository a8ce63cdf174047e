// Copyright 2026 Mathew Robinson <chasinglogic@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// getProjectFiles returns the current project's files as reported by git:
// tracked files plus new files that are not ignored.
func getProjectFiles() ([]string, error) {
	var tracked, unstaged []string

	var group errgroup.Group
	group.Go(func() error {
		files, err := gitLsFiles()
		tracked = files
		return err
	})
	group.Go(func() error {
		files, err := gitLsFiles("--others", "--exclude-standard")
		unstaged = files
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	files := append(tracked, unstaged...)

	// If a file symlinks to outside the project directory we probably
	// don't want to modify it, and if it points within the project we'll
	// modify the real file when we come across it. Symlinks can also
	// carry a different file extension than the file they point at,
	// which would make the commenter lookup ambiguous.
	kept := files[:0]
	for _, file := range files {
		if fi, err := os.Lstat(file); err == nil && fi.Mode()&os.ModeSymlink == 0 {
			kept = append(kept, file)
		}
	}

	return kept, nil
}

func gitLsFiles(extraArgs ...string) ([]string, error) {
	out, err := exec.Command("git", append([]string{"ls-files"}, extraArgs...)...).Output()
	if err != nil {
		return nil, errors.Wrap(err, "failed to run git ls-files, make sure you're in a git repo")
	}

	var files []string
	for _, file := range strings.Split(string(out), "\n") {
		if file == "" {
			continue
		}

		// git ls-files still reports removed files whose deletion is
		// not committed yet.
		if _, err := os.Stat(file); err == nil {
			files = append(files, file)
		}
	}

	return files, nil
}
