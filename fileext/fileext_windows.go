//go:build windows

package fileext

import (
	"math"
	"os"

	"golang.org/x/sys/windows"
)

// ReadFile and WriteFile honor the offset in the Overlapped structure on
// synchronous handles, which is everything os.OpenFile produces. Handles
// opened elsewhere with FILE_FLAG_OVERLAPPED are outside this contract.
// Unlike pread/pwrite, both calls move the handle's cursor to offset+count.
func readOffset(f *os.File, buf []byte, offset uint64) (n int, err error) {
	if offset > math.MaxInt64 {
		return 0, &Error{Op: opRead, Kind: KindInvalidOffset, Err: windows.ERROR_NEGATIVE_SEEK}
	}

	conn, err := f.SyscallConn()
	if err != nil {
		return 0, classify(opRead, err)
	}

	var readErr error
	err = conn.Control(func(fd uintptr) {
		var done uint32
		overlapped := windows.Overlapped{
			Offset:     uint32(offset),
			OffsetHigh: uint32(offset >> 32),
		}
		readErr = windows.ReadFile(windows.Handle(fd), buf, &done, &overlapped)
		n = int(done)
	})
	if err != nil {
		return 0, classify(opRead, err)
	}
	if readErr != nil {
		// Reading at or past end-of-file is EOF, not a failure.
		if readErr == windows.ERROR_HANDLE_EOF {
			return 0, nil
		}
		return 0, classify(opRead, readErr)
	}
	return n, nil
}

func writeOffset(f *os.File, buf []byte, offset uint64) (n int, err error) {
	if offset > math.MaxInt64 {
		return 0, &Error{Op: opWrite, Kind: KindInvalidOffset, Err: windows.ERROR_NEGATIVE_SEEK}
	}

	conn, err := f.SyscallConn()
	if err != nil {
		return 0, classify(opWrite, err)
	}

	var writeErr error
	err = conn.Control(func(fd uintptr) {
		var done uint32
		overlapped := windows.Overlapped{
			Offset:     uint32(offset),
			OffsetHigh: uint32(offset >> 32),
		}
		writeErr = windows.WriteFile(windows.Handle(fd), buf, &done, &overlapped)
		n = int(done)
	})
	if err != nil {
		return 0, classify(opWrite, err)
	}
	if writeErr != nil {
		return 0, classify(opWrite, writeErr)
	}
	return n, nil
}
