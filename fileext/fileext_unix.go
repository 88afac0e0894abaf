//go:build unix

package fileext

import (
	"math"
	"os"

	"golang.org/x/sys/unix"
)

// Both kernels take a signed offset; anything above MaxInt64 would go
// negative in the cast, so it is rejected before reaching the syscall.
func readOffset(f *os.File, buf []byte, offset uint64) (n int, err error) {
	if offset > math.MaxInt64 {
		return 0, &Error{Op: opRead, Kind: KindInvalidOffset, Err: unix.EINVAL}
	}

	conn, err := f.SyscallConn()
	if err != nil {
		return 0, classify(opRead, err)
	}

	var readErr error
	err = conn.Control(func(fd uintptr) {
		n, readErr = unix.Pread(int(fd), buf, int64(offset))
	})
	if err != nil {
		return 0, classify(opRead, err)
	}
	if readErr != nil {
		return 0, classify(opRead, readErr)
	}
	return n, nil
}

func writeOffset(f *os.File, buf []byte, offset uint64) (n int, err error) {
	if offset > math.MaxInt64 {
		return 0, &Error{Op: opWrite, Kind: KindInvalidOffset, Err: unix.EINVAL}
	}

	conn, err := f.SyscallConn()
	if err != nil {
		return 0, classify(opWrite, err)
	}

	var writeErr error
	err = conn.Control(func(fd uintptr) {
		n, writeErr = unix.Pwrite(int(fd), buf, int64(offset))
	})
	if err != nil {
		return 0, classify(opWrite, err)
	}
	if writeErr != nil {
		return 0, classify(opWrite, writeErr)
	}
	return n, nil
}
