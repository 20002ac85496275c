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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Distance(t *testing.T) {

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"KANDY", "KANDY", 0},
		{"KANDY", "", 5},
		{"", "KANDY", 5},
		{"NUGEGODA", "NUGEGOD", 1},
		{"KITTEN", "SITTING", 3},
		{"GALLE", "GALE", 1},
		{"MATARA", "MATALE", 2},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Distance(tc.a, tc.b), "Distance(%q, %q)", tc.a, tc.b)
	}
}

func Test_Distance_Symmetry(t *testing.T) {

	pairs := [][2]string{
		{"NUGEGODA", "NUGEGOD"},
		{"KITTEN", "SITTING"},
		{"AMBALANGODA", "AMBALANTOTA"},
	}
	for _, p := range pairs {
		assert.Equal(t, Distance(p[0], p[1]), Distance(p[1], p[0]))
	}
}
