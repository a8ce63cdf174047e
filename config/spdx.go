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
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sethgrid/pester"
)

type spdxLicenseInfo struct {
	LicenseText           string `json:"licenseText"`
	StandardLicenseHeader string `json:"standardLicenseHeader"`
}

// fetchSPDXTemplate downloads the license template for a SPDX identifier
// from the SPDX license list. Licenses that define a standard header use it,
// otherwise the full license text stands in, which works fine for short
// licenses like MIT.
func fetchSPDXTemplate(ident string) (string, error) {
	client := pester.New()
	client.MaxRetries = 3
	client.Backoff = pester.ExponentialBackoff
	client.Timeout = 10 * time.Second

	url := fmt.Sprintf("https://spdx.org/licenses/%s.json", ident)
	resp, err := client.Get(url)
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch license template from SPDX for %s", ident)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest, http.StatusNotFound:
		return "", errors.Newf(
			"%s does not appear to be a valid SPDX identifier, go to https://spdx.org/licenses/ to view a list of valid identifiers",
			ident,
		)
	default:
		return "", errors.Newf("failed to fetch license template from SPDX for %s: %s", ident, resp.Status)
	}

	var info spdxLicenseInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", errors.Wrapf(err, "failed to deserialize SPDX JSON for %s", ident)
	}

	if info.StandardLicenseHeader != "" {
		return info.StandardLicenseHeader, nil
	}
	return info.LicenseText, nil
}
