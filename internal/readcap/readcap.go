// Package readcap provides bounded-memory file reads for files of
// unknown or very large size. Session logs can grow without limit;
// every detector that scans them routes through Read rather than
// loading files directly.
package readcap

import (
	"io"
	"os"
)

// Byte budgets for capped reads. Deep mode raises the budget but never
// removes the ceiling, so peak memory stays bounded even under an
// explicit request for thorough scanning.
const (
	DefaultBudget = 5 * 1024 * 1024
	DeepBudget    = 50 * 1024 * 1024

	chunkSize = 64 * 1024
)

// Budget returns the effective read budget for the given scan mode.
func Budget(deep bool) int64 {
	if deep {
		return DeepBudget
	}
	return DefaultBudget
}

// Read returns up to maxBytes bytes of the file decoded as a string,
// and whether the content was truncated. Files at or below the budget
// are read whole. Larger files are streamed in raw chunks and decoded
// once at the end, so multi-byte characters are never split across
// chunk boundaries by an incremental decode.
func Read(path string, maxBytes int64) (string, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", false, err
	}
	if info.Size() <= maxBytes {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", false, err
		}
		return string(data), false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	buf := make([]byte, 0, maxBytes)
	chunk := make([]byte, chunkSize)
	for int64(len(buf)) < maxBytes {
		n, err := f.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", false, err
		}
	}
	if int64(len(buf)) > maxBytes {
		buf = buf[:maxBytes]
	}
	return string(buf), true, nil
}
