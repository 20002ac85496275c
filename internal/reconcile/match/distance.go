/*
 * Copyright (c) 2025, SLPost Labs. (https://slpost.dev).
 *
 * SLPost Labs licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package match

// Distance computes the Levenshtein edit distance between a and b, where
// insertion, deletion and substitution each cost 1. The sweep keeps a single
// rolling cost row, so space is O(len(b)) and time O(len(a)*len(b)).
func Distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	costs := make([]int, len(b)+1)
	for j := range costs {
		costs[j] = j
	}

	for i := 1; i <= len(a); i++ {
		// prev holds the value of costs[j-1] from the previous row.
		prev := costs[0]
		costs[0] = i
		for j := 1; j <= len(b); j++ {
			upper := costs[j]
			if a[i-1] == b[j-1] {
				costs[j] = prev
			} else {
				costs[j] = minInt(prev, minInt(costs[j], costs[j-1])) + 1
			}
			prev = upper
		}
	}
	return costs[len(b)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
