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

// Package testsuite checks an open read-write file against the positional
// I/O contract. It owns the file contents for the duration of the run.
package testsuite

import (
	"io"
	"os"
	"runtime"
	"testing"

	"github.com/pluto-org-co/offsetio/fileext"
	"github.com/pluto-org-co/offsetio/random"
	"github.com/stretchr/testify/assert"
)

func TestFile(t *testing.T, file *os.File) func(t *testing.T) {
	assertions := assert.New(t)

	_, err := fileext.WriteFullOffset(file, random.Bytes(8), 0)
	if !assertions.Nil(err, "failed to seed file contents") {
		return func(t *testing.T) {}
	}

	return func(t *testing.T) {
		t.Run("RoundTrip", func(t *testing.T) {
			assertions := assert.New(t)

			payload := random.Bytes(64*1024 + 13)
			offset := uint64(random.Int(1024 * 1024))

			n, err := fileext.WriteFullOffset(file, payload, offset)
			if !assertions.Nil(err, "failed to write payload") {
				return
			}
			assertions.Equal(len(payload), n, "should write the whole payload")

			readBack := make([]byte, len(payload))
			n, err = fileext.ReadFullOffset(file, readBack, offset)
			if !assertions.Nil(err, "failed to read payload back") {
				return
			}
			assertions.Equal(len(payload), n, "should read the whole payload back")
			assertions.Equal(payload, readBack, "bytes must survive the round trip")
		})

		t.Run("BoundedTransfer", func(t *testing.T) {
			assertions := assert.New(t)

			buffer := make([]byte, 4096)
			n, err := fileext.ReadOffset(file, buffer, 0)
			if !assertions.Nil(err, "failed to read") {
				return
			}
			assertions.GreaterOrEqual(n, 0, "count must not be negative")
			assertions.LessOrEqual(n, len(buffer), "count must not exceed the buffer")
		})

		t.Run("ZeroLength", func(t *testing.T) {
			assertions := assert.New(t)

			n, err := fileext.ReadOffset(file, nil, 0)
			assertions.Nil(err, "zero-length read must not fail")
			assertions.Zero(n, "zero-length read must not transfer")

			n, err = fileext.WriteOffset(file, nil, 0)
			assertions.Nil(err, "zero-length write must not fail")
			assertions.Zero(n, "zero-length write must not transfer")
		})

		t.Run("EndOfFile", func(t *testing.T) {
			assertions := assert.New(t)

			info, err := file.Stat()
			if !assertions.Nil(err, "failed to stat file") {
				return
			}

			buffer := make([]byte, 16)
			n, err := fileext.ReadOffset(file, buffer, uint64(info.Size()))
			assertions.Nil(err, "reading at end-of-file must not fail")
			assertions.Zero(n, "reading at end-of-file must report 0")
		})

		t.Run("SparseExtension", func(t *testing.T) {
			assertions := assert.New(t)

			info, err := file.Stat()
			if !assertions.Nil(err, "failed to stat file") {
				return
			}

			hole := uint64(64 * 1024)
			offset := uint64(info.Size()) + hole

			n, err := fileext.WriteOffset(file, []byte{'!'}, offset)
			if !assertions.Nil(err, "failed to write past end-of-file") {
				return
			}
			assertions.Equal(1, n, "should write the single byte")

			grown, err := file.Stat()
			if !assertions.Nil(err, "failed to stat grown file") {
				return
			}
			assertions.GreaterOrEqual(grown.Size(), int64(offset)+1, "file must cover the written byte")

			gap := make([]byte, hole)
			_, err = fileext.ReadFullOffset(file, gap, uint64(info.Size()))
			if !assertions.Nil(err, "failed to read the gap") {
				return
			}
			assertions.Equal(make([]byte, hole), gap, "gap must read back as zeros")
		})

		t.Run("Cursor", func(t *testing.T) {
			assertions := assert.New(t)

			const parked = 5
			_, err := file.Seek(parked, io.SeekStart)
			if !assertions.Nil(err, "failed to park the cursor") {
				return
			}

			buffer := make([]byte, 2)
			n, err := fileext.ReadOffset(file, buffer, 0)
			if !assertions.Nil(err, "failed to read at offset 0") {
				return
			}

			cursor, err := file.Seek(0, io.SeekCurrent)
			if !assertions.Nil(err, "failed to query the cursor") {
				return
			}

			switch runtime.GOOS {
			case "windows":
				assertions.EqualValues(n, cursor, "cursor must land at offset+count")
			default:
				assertions.EqualValues(parked, cursor, "cursor must stay where it was parked")
			}
		})
	}
}
