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
	"io"
	"os"
)

// OffsetReader adapts positional reads to io.Reader by carrying its own
// offset, so sequential consumption never depends on the handle's cursor. On
// unix the cursor stays where the caller left it; on Windows each read moves
// it, as ReadOffset documents.
//
// Read retries interrupted calls the way os.File.Read does, since stdlib
// consumers of an io.Reader cannot branch on the transient kind.
type OffsetReader struct {
	file   *os.File
	offset uint64
}

func NewOffsetReader(f *os.File, offset uint64) (r *OffsetReader) {
	return &OffsetReader{file: f, offset: offset}
}

var _ io.Reader = (*OffsetReader)(nil)

func (r *OffsetReader) Read(p []byte) (n int, err error) {
	for {
		n, err = ReadOffset(r.file, p, r.offset)
		if err == nil {
			break
		}
		if KindOf(err) == KindInterrupted {
			continue
		}
		return 0, err
	}
	r.offset += uint64(n)
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Offset returns the position the next Read will start at.
func (r *OffsetReader) Offset() (offset uint64) {
	return r.offset
}

// OffsetWriter adapts positional writes to io.Writer. Write honors the
// io.Writer contract of either consuming the whole slice or failing, so it
// loops through short writes and interruptions the way WriteFullOffset does.
type OffsetWriter struct {
	file   *os.File
	offset uint64
}

func NewOffsetWriter(f *os.File, offset uint64) (w *OffsetWriter) {
	return &OffsetWriter{file: f, offset: offset}
}

var _ io.Writer = (*OffsetWriter)(nil)

func (w *OffsetWriter) Write(p []byte) (n int, err error) {
	n, err = WriteFullOffset(w.file, p, w.offset)
	w.offset += uint64(n)
	return n, err
}

// Offset returns the position the next Write will start at.
func (w *OffsetWriter) Offset() (offset uint64) {
	return w.offset
}
