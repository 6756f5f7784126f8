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

package utf8width

import (
	"testing"
	"unicode/utf8"
)

// TestWidth_Table checks every possible byte value against the standard
// UTF-8 lead-byte ranges.
func TestWidth_Table(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)

		var want int
		switch {
		case b <= 0x7F:
			want = 1
		case b >= 0xC2 && b <= 0xDF:
			want = 2
		case b >= 0xE0 && b <= 0xEF:
			want = 3
		case b >= 0xF0 && b <= 0xF4:
			want = 4
		default:
			want = 0
		}

		if got := Width(b); got != want {
			t.Fatalf("Width(%#02x): got %d want %d", b, got, want)
		}
	}
}

// TestWidth_MatchesEncoder checks the table against the standard library
// encoder: the first byte of every encoded rune must declare the encoded
// length.
func TestWidth_MatchesEncoder(t *testing.T) {
	runes := []rune{0x00, 'a', 0x7F, 0x80, 'é', 0x7FF, 0x800, '中', 0xFFFD, 0xFFFF, 0x10000, '😀', 0x10FFFF}

	var buf [utf8.UTFMax]byte
	for _, r := range runes {
		n := utf8.EncodeRune(buf[:], r)
		if got := Width(buf[0]); got != n {
			t.Fatalf("Width(%#02x) for %U: got %d want %d", buf[0], r, got, n)
		}
	}
}

func TestIsContinuation(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		want := b >= 0x80 && b <= 0xBF
		if got := IsContinuation(b); got != want {
			t.Fatalf("IsContinuation(%#02x): got %v want %v", b, got, want)
		}
	}
}

// A byte with width 0 is either a continuation byte or an invalid lead; the
// two classifications must partition the non-starter space.
func TestWidth_ZeroBytes(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		if Width(b) != 0 {
			continue
		}
		invalidLead := b == 0xC0 || b == 0xC1 || b >= 0xF5
		if !IsContinuation(b) && !invalidLead {
			t.Fatalf("byte %#02x has width 0 but is neither a continuation byte nor an invalid lead", b)
		}
	}
}
