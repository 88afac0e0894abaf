// Package fileext reads and writes open regular files at explicit byte
// offsets, independently of the handle's current cursor position.
//
// Each operation maps to a single positional kernel call: pread/pwrite on
// unix targets, ReadFile/WriteFile with an explicit offset on Windows. The
// two primitives are not identical and the difference is part of the
// contract: the Windows calls move the handle's cursor to offset+count, the
// unix calls leave it untouched.
package fileext

import (
	"os"
)

// ReadOffset reads up to len(buf) bytes from f starting at the given byte
// offset, measured from the start of the file.
//
// It returns the number of bytes read, in [0, len(buf)]. A short read is not
// an error; callers that need the whole buffer should loop or use
// ReadFullOffset. A count of 0 with a non-empty buf means end-of-file was
// reached at or before offset. Bytes past the returned count are left in an
// unspecified state.
//
// On unix the handle's cursor is unchanged. On Windows it is moved to
// offset+count.
func ReadOffset(f *os.File, buf []byte, offset uint64) (n int, err error) {
	return readOffset(f, buf, offset)
}

// WriteOffset writes up to len(buf) bytes from buf into f starting at the
// given byte offset.
//
// It returns the number of bytes written, in [0, len(buf)]. A short write is
// not an error, and a count of 0 with a non-empty buf means the kernel
// accepted nothing on this call; callers that need the whole buffer should
// loop or use WriteFullOffset. Writing past the current end of file extends
// it; whether the gap reads back as a sparse hole or allocated zeros is up to
// the host filesystem.
//
// On unix the handle's cursor is unchanged, and if f was opened with O_APPEND
// the kernel ignores offset and appends, as it does for pwrite. On Windows
// the cursor is moved to offset+count.
func WriteOffset(f *os.File, buf []byte, offset uint64) (n int, err error) {
	return writeOffset(f, buf, offset)
}

// File attaches the positional operations to an *os.File as methods.
type File struct {
	*os.File
}

func NewFile(f *os.File) (file *File) {
	return &File{File: f}
}

// ReadOffset behaves exactly like the package-level ReadOffset.
func (f *File) ReadOffset(buf []byte, offset uint64) (n int, err error) {
	return readOffset(f.File, buf, offset)
}

// WriteOffset behaves exactly like the package-level WriteOffset.
func (f *File) WriteOffset(buf []byte, offset uint64) (n int, err error) {
	return writeOffset(f.File, buf, offset)
}
