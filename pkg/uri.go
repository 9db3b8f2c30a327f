// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import "strings"

// parseResourceURI splits a resource URI like github://trending/go/daily
// into its scheme and path segments.
func parseResourceURI(uri string) (string, []string) {
	scheme, rest, found := strings.Cut(uri, "://")
	if !found {
		return "", nil
	}
	var segments []string
	for _, segment := range strings.Split(rest, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return scheme, segments
}

// parseURIParams parses a key1:value1,key2:value2 path segment as used by
// sampling://ai-analysis/{data_type}/{params}.
func parseURIParams(params string) map[string]string {
	result := map[string]string{}
	for _, param := range strings.Split(params, ",") {
		key, value, found := strings.Cut(param, ":")
		if !found {
			continue
		}
		result[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return result
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
