// Copyright 2026 Marko Milivojevic
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
//
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

// ErrInvalidHostLabel is returned when a URL host cannot be transcoded.
var ErrInvalidHostLabel = errors.New("invalid host label")

// hostProfile maps and validates like a lookup but without STD3 rules, so the
// ':' and '@' of a user-info or port inside the host segment are not
// rejected. They are still transcoded with the rest of the host, and ASCII
// letters are lowercased in both directions.
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.StrictDomainName(false),
	idna.VerifyDNSLength(true),
	idna.BidiRule(),
)

// ConvertIDN rewrites the host of url to its ASCII (punycode) form when
// toASCII is true, or to Unicode otherwise. Scheme, path and query are kept
// as they are.
//
// A run of leading dots is collapsed into a single dot.
func ConvertIDN(url string, toASCII bool) (string, error) {
	trimmed := strings.TrimLeft(url, ".")
	dots := ""
	if len(trimmed) < len(url) {
		dots = "."
	}

	start := 0
	if i := strings.Index(trimmed, "//"); i >= 0 {
		start = i + len("//")
	} else if i := strings.Index(trimmed, "@"); i >= 0 {
		start = i + len("@")
	}

	end := len(trimmed)
	if i := strings.Index(trimmed[start:], "/"); i >= 0 {
		end = start + i
	}

	host := trimmed[start:end]
	if host == "" {
		return dots + trimmed, nil
	}

	var converted string
	var err error
	if toASCII {
		converted, err = hostProfile.ToASCII(host)
	} else {
		converted, err = hostProfile.ToUnicode(host)
	}
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidHostLabel, host, err)
	}

	return dots + trimmed[:start] + converted + trimmed[end:], nil
}
