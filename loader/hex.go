// Package loader decodes the MCS-51 program image text format: one line
// per record, each a run of hex digit pairs optionally framed by a single
// leading colon, concatenated in file order into a flat byte stream that
// gets written contiguously into code memory starting at offset 0.
package loader

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// LoadHex reads every line from r, strips a leading ':' record marker if
// present, decodes the remaining hex digit pairs, and concatenates the
// decoded bytes across all lines in order. A malformed hex digit on any
// line aborts the whole load with a wrapped error identifying the line.
func LoadHex(r io.Reader) ([]byte, error) {
	var out []byte
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		text = strings.TrimPrefix(text, ":")
		decoded, err := hex.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("loader: line %d: malformed hex: %w", line, err)
		}
		out = append(out, decoded...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: reading program image: %w", err)
	}
	return out, nil
}
