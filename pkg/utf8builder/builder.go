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

// Package utf8builder assembles and validates UTF-8 text from fragments.
//
// A Builder accepts input in whatever pieces the producer happens to have:
// single bytes, byte chunks of any size, single runes, or strings already
// known to be valid. Chunks may split a multi-byte character anywhere — a
// 4-byte emoji can arrive one byte per call — and the Builder keeps just
// enough state to resume decoding when the next fragment shows up.
// Structurally invalid input is rejected at the first offending byte.
//
// Typical use:
//
//	b := utf8builder.New()
//	for chunk := range chunks {
//	    if err := b.PushChunk(chunk); err != nil {
//	        return err
//	    }
//	}
//	text, err := b.Finalize()
//
// A Builder is a plain value with no hidden goroutines and no locking. It is
// meant to be owned by a single goroutine; wrap it yourself if you need to
// share one.
package utf8builder

import (
	"slices"
	"unicode/utf8"

	"github.com/benoit-pereira-da-silva/utf8builder/pkg/utf8width"
)

// Builder incrementally validates and accumulates UTF-8 text.
//
// Completed characters live in buffer. The bytes of an incomplete multi-byte
// character are parked in pending until the character's last byte arrives;
// only then are they flushed to buffer. At most 3 bytes can ever be parked
// (a 4-byte character minus its final byte).
//
// The zero value is an empty, usable Builder.
type Builder struct {
	buffer []byte

	// pending[:pendingLen] holds the bytes of the current incomplete
	// character. expectedLen is the total length its lead byte declared;
	// it is meaningful only while pendingLen > 0.
	pending     [utf8width.Max - 1]byte
	pendingLen  uint8
	expectedLen uint8

	// finalized marks a Builder whose buffer has been handed out by
	// Finalize. Every operation on a finalized Builder fails.
	finalized bool
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// WithCapacity returns an empty Builder whose buffer is pre-sized to hold
// capacity bytes before reallocating.
func WithCapacity(capacity int) *Builder {
	return &Builder{buffer: make([]byte, 0, capacity)}
}

// FromString returns a Builder pre-seeded with text the caller already knows
// is well-formed UTF-8, exactly like an argument to PushString. The Builder
// starts in the complete state.
func FromString(s string) *Builder {
	return &Builder{buffer: []byte(s)}
}

// Reserve grows the buffer's capacity so that at least additional more bytes
// can be appended without reallocating. It is a pure optimization hint and
// never changes observable behavior.
func (b *Builder) Reserve(additional int) {
	b.buffer = slices.Grow(b.buffer, additional)
}

// Len returns the total number of bytes ingested so far, including the bytes
// of an incomplete character that have not been validated yet.
func (b *Builder) Len() int {
	return len(b.buffer) + int(b.pendingLen)
}

// IsEmpty reports whether the Builder holds no bytes at all.
func (b *Builder) IsEmpty() bool {
	return len(b.buffer) == 0 && b.pendingLen == 0
}

// IsValid reports whether everything ingested so far forms complete
// characters, i.e. whether Finalize would currently succeed. It returns
// false in the middle of a multi-byte character and on a finalized Builder.
func (b *Builder) IsValid() bool {
	return !b.finalized && b.pendingLen == 0
}

// Finalize consumes the Builder and returns the accumulated text.
//
// It fails with ErrInvalidEncoding when a multi-byte character was left
// incomplete: a truncated character at end-of-input is an error, never
// silently dropped. On success the internal buffer is released and the
// Builder becomes unusable; every later operation, including a second
// Finalize, fails.
func (b *Builder) Finalize() (string, error) {
	if b.finalized || b.pendingLen != 0 {
		return "", ErrInvalidEncoding
	}
	b.finalized = true
	s := string(b.buffer)
	b.buffer = nil
	return s, nil
}

// Push ingests a single byte.
//
// Between characters the byte is classified by its lead-byte width: ASCII is
// appended directly, a multi-byte lead opens a pending character, and
// anything else (a standalone continuation byte, an overlong or out-of-range
// lead) fails with ErrInvalidEncoding, leaving the Builder untouched.
//
// In the middle of a character the byte is taken as the next continuation
// byte without checking its 10xxxxxx shape; only lead bytes are classified.
// This matches the historical behavior of the builder and keeps the
// continuation path branch-free. See the package tests for the consequences.
func (b *Builder) Push(c byte) error {
	if b.finalized {
		return ErrInvalidEncoding
	}
	if b.pendingLen == 0 {
		switch w := utf8width.Width(c); w {
		case 0:
			return ErrInvalidEncoding
		case 1:
			b.buffer = append(b.buffer, c)
		default:
			b.pending[0] = c
			b.pendingLen = 1
			b.expectedLen = uint8(w)
		}
		return nil
	}

	if b.pendingLen+1 == b.expectedLen {
		// Last continuation byte: flush the whole character.
		b.buffer = append(b.buffer, b.pending[:b.pendingLen]...)
		b.buffer = append(b.buffer, c)
		b.pendingLen = 0
		return nil
	}

	b.pending[b.pendingLen] = c
	b.pendingLen++
	return nil
}

// PushString ingests a string the caller guarantees is well-formed UTF-8;
// its bytes are appended verbatim. It is only legal between characters: appending
// trusted text in the middle of a pending multi-byte character would corrupt
// that character, so the call fails with ErrInvalidEncoding instead, leaving
// the buffered bytes untouched.
func (b *Builder) PushString(s string) error {
	if b.finalized || b.pendingLen != 0 {
		return ErrInvalidEncoding
	}
	b.buffer = append(b.buffer, s...)
	return nil
}

// PushRune encodes a single rune and appends it.
//
// Like PushString it is only legal between characters. A rune that is not a
// valid Unicode scalar value (a surrogate, or a value above U+10FFFF) is
// rejected with ErrInvalidEncoding rather than being encoded as U+FFFD,
// since the whole point of the Builder is that the buffer never holds bytes
// the caller did not validate.
func (b *Builder) PushRune(r rune) error {
	if b.finalized || b.pendingLen != 0 {
		return ErrInvalidEncoding
	}
	if !utf8.ValidRune(r) {
		return ErrInvalidEncoding
	}
	b.buffer = utf8.AppendRune(b.buffer, r)
	return nil
}

// PushChunk ingests an arbitrary byte slice. An empty chunk is a no-op.
//
// The chunk may begin in the middle of a character started by a previous
// call and may end in the middle of a character finished by a later one.
// The resume step first settles the pending character: the chunk either
// completes it (possibly with bytes left over to scan), or is swallowed
// whole as further continuation bytes. The scan step then walks the rest of
// the chunk character by character, parking a trailing partial character in
// the pending state.
//
// A chunk that ends exactly on a character boundary leaves the Builder in
// the complete state; the next call starts fresh.
//
// On ErrInvalidEncoding the bytes preceding the offending one have already
// been appended — there is no rollback (see ErrInvalidEncoding).
func (b *Builder) PushChunk(chunk []byte) error {
	if b.finalized {
		return ErrInvalidEncoding
	}
	size := len(chunk)
	if size == 0 {
		return nil
	}

	offset := 0
	if b.pendingLen != 0 {
		remaining := int(b.expectedLen) - int(b.pendingLen)
		switch {
		case remaining > size:
			// Still not enough bytes to finish the character.
			copy(b.pending[b.pendingLen:], chunk)
			b.pendingLen += uint8(size)
			return nil
		case remaining == size:
			// The chunk is exactly the missing tail: completed, not split.
			b.buffer = append(b.buffer, b.pending[:b.pendingLen]...)
			b.buffer = append(b.buffer, chunk...)
			b.pendingLen = 0
			return nil
		default:
			b.buffer = append(b.buffer, b.pending[:b.pendingLen]...)
			b.buffer = append(b.buffer, chunk[:remaining]...)
			b.pendingLen = 0
			offset = remaining
		}
	}

	for {
		w := utf8width.Width(chunk[offset])
		if w == 0 {
			return ErrInvalidEncoding
		}

		rest := size - offset
		if rest >= w {
			b.buffer = append(b.buffer, chunk[offset:offset+w]...)
			offset += w
			if offset == size {
				return nil
			}
			continue
		}

		// The chunk boundary splits this character: park what we have.
		copy(b.pending[:rest], chunk[offset:])
		b.pendingLen = uint8(rest)
		b.expectedLen = uint8(w)
		return nil
	}
}
