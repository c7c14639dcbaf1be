// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "\t\t", String(Tab, 2, 3))
	assert.Equal(t, "      ", String(Space, 2, 3))
	assert.Equal(t, "", String(Space, 0, 3))
	assert.Equal(t, 2, Len(Tab, 2, 3))
	assert.Equal(t, 6, Len(Space, 2, 3))
}

func TestParseCharacter(t *testing.T) {
	ich, err := ParseCharacter("Tab")
	assert.NoError(t, err)
	assert.Equal(t, Tab, ich)
	ich, err = ParseCharacter("")
	assert.NoError(t, err)
	assert.Equal(t, Space, ich)
	_, err = ParseCharacter("dots")
	assert.Error(t, err)
	assert.Equal(t, "tab", Tab.String())
}
