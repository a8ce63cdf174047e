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

package config

import (
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// gitYearsForFile returns the years of the oldest and newest commits
// touching filename according to git log. Files with no history yet yield
// the current year for both.
func gitYearsForFile(filename string) (startYear, endYear string, err error) {
	out, err := exec.Command(
		"git", "log", "--follow", "--format=%ad", "--date", "default", filename,
	).Output()
	if err != nil {
		return "", "", errors.Wrapf(err, "failed to run git log for %s, make sure you're in a git repo", filename)
	}

	var years []string
	for _, date := range strings.Split(string(out), "\n") {
		if date == "" {
			continue
		}

		// Dates look like "Wed May 29 04:54:58 2024 +0100", the year is
		// the fifth field.
		fields := strings.Fields(date)
		if len(fields) < 5 {
			return "", "", errors.Newf("unable to determine year from git date %q", date)
		}
		years = append(years, fields[4])
	}

	if len(years) == 0 {
		zap.L().Sugar().Debugf("did not get any dates from git for file: %s", filename)
		currentYear := strconv.Itoa(time.Now().Year())
		return currentYear, currentYear, nil
	}

	// git log prints newest first.
	return years[len(years)-1], years[0], nil
}
