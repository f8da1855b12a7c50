// Package warm reads instance files sequentially to pull them into the
// OS page cache ahead of a game launch. It ranks discovered files into
// a warm order and streams them under a byte budget with cooperative,
// file-granular cancellation.
package warm

import (
	"io"
	"os"
)

// DefaultChunkSize is the per-read buffer for warming, 16 MiB.
const DefaultChunkSize = 16 << 20

// BudgetBytes converts a fractional gigabyte budget to bytes.
func BudgetBytes(gb float64) int64 {
	return int64(gb * (1 << 30))
}

// WarmFile reads path sequentially in chunkSize reads until EOF and
// returns the number of bytes read. The data is discarded; the reads
// exist only to nudge the file into the page cache. The file is opened
// read-only and never modified. On a mid-file error the bytes already
// read are returned alongside it.
func WarmFile(path string, chunkSize int) (int64, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	buf := make([]byte, chunkSize)
	var total int64
	for {
		n, err := f.Read(buf)
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, nil
		}
	}
}
