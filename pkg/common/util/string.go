// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

// Abbreviate truncates s to at most length bytes, appending "..." when
// truncation happened. length -1 means no limit, other negative values
// yield the empty string.
func Abbreviate(s string, length int) string {
	if length == -1 {
		return s
	}
	if length <= 0 {
		return ""
	}
	if len(s) <= length {
		return s
	}
	return s[:length] + "..."
}
