// Copyright 2026 Benoit Pereira da Silva
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

package utf8builder

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestValidator_PassesValidTextThrough(t *testing.T) {
	for _, text := range sampleTexts {
		got, n, err := transform.String(Validator{}, text)
		require.NoError(t, err)
		assert.Equal(t, len(text), n)
		assert.Equal(t, text, got)
	}
}

// TestValidator_Reader pipes a one-byte-at-a-time reader through
// transform.NewReader so that every multi-byte character triggers the
// ErrShortSrc resume path inside the transform machinery.
func TestValidator_Reader(t *testing.T) {
	r := transform.NewReader(iotest.OneByteReader(strings.NewReader(textEmoji)), Validator{})
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, textEmoji, string(out))
}

func TestValidator_RejectsInvalidBytes(t *testing.T) {
	_, _, err := transform.String(Validator{}, "ok\xFFko")
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestValidator_RejectsTruncatedInput(t *testing.T) {
	// Lead byte of a 2-byte character with no continuation byte before EOF.
	_, _, err := transform.String(Validator{}, "a\xC3")
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

// Direct Transform calls, pinning the contract the transform package relies
// on: consumed counts stop at the character boundary and the error reports
// why no further progress was possible.
func TestValidator_TransformContract(t *testing.T) {
	v := Validator{}
	src := []byte("a中") // 0x61, then 0xE4 0xB8 0xAD

	t.Run("short source", func(t *testing.T) {
		var dst [8]byte
		nDst, nSrc, err := v.Transform(dst[:], src[:2], false)
		require.ErrorIs(t, err, transform.ErrShortSrc)
		assert.Equal(t, 1, nDst)
		assert.Equal(t, 1, nSrc)
	})

	t.Run("short source at EOF", func(t *testing.T) {
		var dst [8]byte
		nDst, nSrc, err := v.Transform(dst[:], src[:2], true)
		require.ErrorIs(t, err, ErrInvalidEncoding)
		assert.Equal(t, 1, nDst)
		assert.Equal(t, 1, nSrc)
	})

	t.Run("short destination", func(t *testing.T) {
		var dst [2]byte
		nDst, nSrc, err := v.Transform(dst[:], src, true)
		require.ErrorIs(t, err, transform.ErrShortDst)
		assert.Equal(t, 1, nDst)
		assert.Equal(t, 1, nSrc)
	})

	t.Run("complete", func(t *testing.T) {
		var dst [8]byte
		nDst, nSrc, err := v.Transform(dst[:], src, true)
		require.NoError(t, err)
		assert.Equal(t, len(src), nDst)
		assert.Equal(t, len(src), nSrc)
		assert.Equal(t, src, dst[:nDst])
	})
}
