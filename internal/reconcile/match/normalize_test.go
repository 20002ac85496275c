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

func Test_NormalizeKey(t *testing.T) {

	assert.Equal(t, "KANDY", NormalizeKey("  kandy  "))
	assert.Equal(t, "KANDY BAZAAR", NormalizeKey("Kandy Bazaar"))
	assert.Equal(t, "", NormalizeKey("   "))
}

func Test_StripQualifier(t *testing.T) {

	t.Run("Strips_single_trailing_qualifier", func(t *testing.T) {
		assert.Equal(t, "KANDY", StripQualifier("KANDY BAZAAR"))
		assert.Equal(t, "MATARA", StripQualifier("MATARA NORTH"))
		assert.Equal(t, "PANADURA", StripQualifier("PANADURA TOWN"))
	})

	t.Run("Bare_qualifier_survives", func(t *testing.T) {
		// A name that is nothing but a qualifier token is a real name.
		assert.Equal(t, "NORTH", StripQualifier("NORTH"))
		assert.Equal(t, "BAZAAR", StripQualifier("BAZAAR"))
	})

	t.Run("Strips_only_one_level", func(t *testing.T) {
		assert.Equal(t, "KANDY SOUTH", StripQualifier("KANDY SOUTH BAZAAR"))
	})

	t.Run("Qualifier_in_the_middle_is_kept", func(t *testing.T) {
		assert.Equal(t, "NORTH MATARA", StripQualifier("NORTH MATARA"))
	})
}

func Test_Simplify(t *testing.T) {

	t.Run("Separators_become_spaces", func(t *testing.T) {
		assert.Equal(t, "KADU WELA", Simplify("KADU-WELA"))
		assert.Equal(t, "KADU WELA", Simplify("KADU_WELA"))
	})

	t.Run("Whitespace_collapses", func(t *testing.T) {
		assert.Equal(t, "KADU WELA", Simplify("KADU   WELA"))
	})

	t.Run("Qualifier_is_stripped_first", func(t *testing.T) {
		assert.Equal(t, "KADU WELA", Simplify("KADU-WELA BAZAAR"))
	})
}
