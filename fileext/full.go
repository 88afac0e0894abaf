// Copyright (C) 2025 ZedCloud Org.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

package fileext

import (
	"fmt"
	"io"
	"os"
)

// ReadFullOffset reads exactly len(buf) bytes from f starting at offset. It
// is the looping policy ReadOffset deliberately leaves to the caller:
// interrupted calls are retried, and hitting end-of-file before the buffer is
// full returns io.ErrUnexpectedEOF together with the bytes read so far.
func ReadFullOffset(f *os.File, buf []byte, offset uint64) (n int, err error) {
	for n < len(buf) {
		read, err := ReadOffset(f, buf[n:], offset+uint64(n))
		if err != nil {
			if KindOf(err) == KindInterrupted {
				continue
			}
			return n, fmt.Errorf("failed to read at offset %d: %w", offset+uint64(n), err)
		}
		if read == 0 {
			return n, io.ErrUnexpectedEOF
		}
		n += read
	}
	return n, nil
}

// WriteFullOffset writes exactly len(buf) bytes to f starting at offset,
// retrying interrupted calls. A kernel that stops accepting bytes without
// reporting an error surfaces as io.ErrShortWrite.
func WriteFullOffset(f *os.File, buf []byte, offset uint64) (n int, err error) {
	for n < len(buf) {
		written, err := WriteOffset(f, buf[n:], offset+uint64(n))
		if err != nil {
			if KindOf(err) == KindInterrupted {
				continue
			}
			return n, fmt.Errorf("failed to write at offset %d: %w", offset+uint64(n), err)
		}
		if written == 0 {
			return n, io.ErrShortWrite
		}
		n += written
	}
	return n, nil
}
