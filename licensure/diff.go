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

package licensure

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type fileDiff struct {
	path  string
	diffs []diffmatchpatch.Diff
}

// checkDiffs collects per-file diffs during a check-mode run. Files are
// processed in order so the report preserves input order.
type checkDiffs struct {
	differ *diffmatchpatch.DiffMatchPatch
	diffs  []fileDiff
}

func newCheckDiffs() *checkDiffs {
	return &checkDiffs{differ: diffmatchpatch.New()}
}

func (c *checkDiffs) record(path, before, after string) {
	c.diffs = append(c.diffs, fileDiff{
		path:  path,
		diffs: c.differ.DiffMain(before, after, false),
	})
}

func (c *checkDiffs) report() string {
	if len(c.diffs) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(c.diffs))
	for _, diff := range c.diffs {
		rendered = append(rendered, fmt.Sprintf("%s:\n%s", diff.path, c.differ.DiffPrettyText(diff.diffs)))
	}

	return strings.Join(rendered, "\n")
}
