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
	"golang.org/x/text/transform"

	"github.com/benoit-pereira-da-silva/utf8builder/pkg/utf8width"
)

// Validator is a [transform.Transformer] that passes bytes through verbatim
// while checking that they form well-formed UTF-8, with the same rules as
// the Builder: lead bytes are classified, continuation bytes are counted but
// not shape-checked.
//
// Because it never buffers partial characters itself — it reports
// transform.ErrShortSrc and lets the transform machinery re-present the
// split character with more input — Validator is stateless, and a single
// value can be reused across chains:
//
//	r := transform.NewReader(conn, utf8builder.Validator{})
//
// A character split at the end of the final chunk (atEOF) is an encoding
// error, exactly like Finalize on an incomplete Builder.
type Validator struct {
	transform.NopResetter
}

// Transform implements transform.Transformer.
func (Validator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		w := utf8width.Width(src[nSrc])
		if w == 0 {
			return nDst, nSrc, ErrInvalidEncoding
		}
		if nSrc+w > len(src) {
			if atEOF {
				return nDst, nSrc, ErrInvalidEncoding
			}
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst+w > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:nDst+w], src[nSrc:nSrc+w])
		nSrc += w
	}
	return nDst, nSrc, nil
}
