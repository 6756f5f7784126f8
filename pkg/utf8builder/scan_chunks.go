package utf8builder

import "bufio"

// ScanChunks returns a split function for a [bufio.Scanner] that yields
// fixed-size chunks of exactly size bytes, plus a shorter final chunk when
// the input length is not a multiple of size. Chunks are cut blindly, with
// no regard for character boundaries — that is the point: the Builder is the
// one responsible for reassembling characters the split tore apart.
//
// A size lower than 1 is treated as 1.
func ScanChunks(size int) bufio.SplitFunc {
	if size < 1 {
		size = 1
	}
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		// No data and nothing more to read.
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}

		// A full chunk is available.
		if len(data) >= size {
			return size, data[:size], nil
		}

		// If we're at EOF, return the final short chunk.
		if atEOF {
			return len(data), data, nil
		}

		// Request more data.
		return 0, nil, nil
	}
}
