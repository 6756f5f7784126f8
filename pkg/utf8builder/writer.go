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

import "io"

// readChunkSize is the buffer size used by ReadFrom.
const readChunkSize = 4096

// Write implements io.Writer by delegating to PushChunk, so a Builder can
// terminate any writer-shaped plumbing (io.Copy, fmt.Fprintf, io.MultiWriter).
//
// On ErrInvalidEncoding it reports 0 bytes written. The count is only
// informational at that point: the Builder is no longer usable, like after
// any failed ingestion.
func (b *Builder) Write(p []byte) (int, error) {
	if err := b.PushChunk(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// ReadFrom implements io.ReaderFrom: it drains r in fixed-size chunks
// through PushChunk until EOF, returning the number of bytes consumed.
//
// Chunk boundaries fall wherever the reader happens to return — a reader
// delivering one byte at a time works as well as a buffered one. A read
// error from r is returned as-is; an encoding error is ErrInvalidEncoding.
func (b *Builder) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, readChunkSize)
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			total += int64(n)
			if perr := b.PushChunk(buf[:n]); perr != nil {
				return total, perr
			}
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
