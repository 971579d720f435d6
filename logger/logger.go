// This file is part of chipcore.
//
// chipcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// chipcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with chipcore.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is a small ring-buffer log used to record recoverable
// anomalies (configuration failures, guest faults) without interrupting
// emulation. It never panics and never blocks on I/O until Write is called.
package logger

import (
	"fmt"
	"io"
	"sync"
)

const maxEntries = 1000

type entry struct {
	tag     string
	message string
}

var (
	mu      sync.Mutex
	entries []entry
)

// Log appends a formatted entry tagged with the supplied source name. Oldest
// entries are discarded once the buffer fills.
func Log(tag string, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	entries = append(entries, entry{tag: tag, message: fmt.Sprintf(format, args...)})
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}
}

// Write dumps every entry currently in the buffer to w, oldest first.
func Write(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	for _, e := range entries {
		fmt.Fprintf(w, "%s: %s\n", e.tag, e.message)
	}
}

// Tail writes the last n entries to w, oldest of the selected range first.
// Asking for more entries than exist, or zero, is not an error.
func Tail(w io.Writer, n int) {
	mu.Lock()
	defer mu.Unlock()

	if n <= 0 {
		return
	}
	start := len(entries) - n
	if start < 0 {
		start = 0
	}
	for _, e := range entries[start:] {
		fmt.Fprintf(w, "%s: %s\n", e.tag, e.message)
	}
}

// Clear empties the buffer. Intended for tests.
func Clear() {
	mu.Lock()
	defer mu.Unlock()
	entries = nil
}
