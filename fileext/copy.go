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
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pluto-org-co/offsetio/pool"
	"github.com/pluto-org-co/offsetio/syncutils"
)

const DefaultChunkSize = 1024 * 1024 // 1MB

var chunkBuffers = pool.NewBuffers(DefaultChunkSize)

// CopyRange copies up to size bytes from src starting at srcOffset into dst
// starting at dstOffset, one chunk per pair of positional calls. It stops
// early without error when src runs out of bytes or ctx is done, returning
// the count actually copied. Neither handle's cursor is consulted, so on unix
// both cursors survive the copy untouched.
func CopyRange(ctx context.Context, dst, src *os.File, dstOffset, srcOffset uint64, size int64) (copied int64, err error) {
	buffer := chunkBuffers.Get()
	defer chunkBuffers.Put(buffer)

	for copied < size {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			if err != nil {
				return copied, fmt.Errorf("context error during copy: %w", err)
			}
			return copied, nil
		default:
			chunk := buffer
			if remaining := size - copied; remaining < int64(len(chunk)) {
				chunk = chunk[:remaining]
			}

			read, err := ReadFullOffset(src, chunk, srcOffset+uint64(copied))
			if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
				return copied, fmt.Errorf("failed to read chunk: %w", err)
			}
			if read == 0 {
				return copied, nil
			}

			_, writeErr := WriteFullOffset(dst, chunk[:read], dstOffset+uint64(copied))
			if writeErr != nil {
				return copied, fmt.Errorf("failed to write chunk: %w", writeErr)
			}
			copied += int64(read)

			// A partial chunk means the source ended inside it.
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return copied, nil
			}
		}
	}
	return copied, nil
}

// CopyRangeWorkers is CopyRange with the chunks fanned out over
// workersNumber goroutines. Positional calls are independent of each other,
// so chunks can land in any order; the result is only defined when the
// source range holds its full size bytes.
func CopyRangeWorkers(workersNumber int, ctx context.Context, dst, src *os.File, dstOffset, srcOffset uint64, size int64) (err error) {
	workers := syncutils.NewWorkers(workersNumber)
	defer workers.Close()

	for start := int64(0); start < size; start += DefaultChunkSize {
		chunkSize := min(int64(DefaultChunkSize), size-start)

		workers.Go(func() (err error) {
			copied, err := CopyRange(ctx, dst, src, dstOffset+uint64(start), srcOffset+uint64(start), chunkSize)
			if err != nil {
				return fmt.Errorf("failed to copy chunk at %d: %w", start, err)
			}
			if copied < chunkSize {
				return fmt.Errorf("failed to copy chunk at %d: %w", start, io.ErrUnexpectedEOF)
			}
			return nil
		})
	}

	return workers.Wait()
}
