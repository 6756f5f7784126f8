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

// Package utf8width classifies single bytes by their role in a UTF-8 stream.
//
// It answers one question: given the first byte of a (potential) UTF-8
// character, how many bytes does that character occupy in total?
//
//   - 1 for ASCII (0x00–0x7F),
//   - 2, 3 or 4 for a valid multi-byte lead (0xC2–0xDF, 0xE0–0xEF, 0xF0–0xF4),
//   - 0 for a byte that can never start a character: continuation bytes
//     (0x80–0xBF), the overlong leads 0xC0–0xC1, and 0xF5–0xFF.
//
// The table rejects overlong and out-of-range leads at the first byte, which
// is as much as a single byte can tell you. It deliberately does not validate
// continuation bytes; that is the concern of whoever consumes the stream.
package utf8width

// Max is the maximum number of bytes a single UTF-8 encoded rune occupies.
const Max = 4

// widths maps every possible byte value to its declared sequence width.
var widths = [256]uint8{}

func init() {
	for b := 0x00; b <= 0x7F; b++ {
		widths[b] = 1
	}
	for b := 0xC2; b <= 0xDF; b++ {
		widths[b] = 2
	}
	for b := 0xE0; b <= 0xEF; b++ {
		widths[b] = 3
	}
	for b := 0xF0; b <= 0xF4; b++ {
		widths[b] = 4
	}
}

// Width returns the total byte length of the UTF-8 character whose first byte
// is b, or 0 when b cannot start a character.
func Width(b byte) int {
	return int(widths[b])
}

// IsContinuation reports whether b has the continuation-byte shape 10xxxxxx.
func IsContinuation(b byte) bool {
	return b&0xC0 == 0x80
}
