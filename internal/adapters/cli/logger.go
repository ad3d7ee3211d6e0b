package cli

import (
	"fmt"
	"log"
	"os"
	"sort"
)

// ConsoleLogger is the only concrete shared.Logger implementation in the
// module — a thin wrapper around the standard library's log package.
// SPEC_FULL.md's ambient-stack section is explicit that logging stays off
// a third-party backend, mirroring the teacher's own rolled
// ContainerLogger interface: library code must not dictate a logging
// backend to its embedder.
type ConsoleLogger struct {
	prefix string
	std    *log.Logger
}

// NewConsoleLogger builds a ConsoleLogger writing to stderr, tagging every
// line with prefix (turnctl uses this for the invocation's correlation
// id).
func NewConsoleLogger(prefix string) ConsoleLogger {
	return ConsoleLogger{prefix: prefix, std: log.New(os.Stderr, "", log.LstdFlags)}
}

// Log implements shared.Logger.
func (c ConsoleLogger) Log(level, message string, fields map[string]interface{}) {
	line := fmt.Sprintf("[%s] %-5s %s", c.prefix, level, message)
	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			line += fmt.Sprintf(" %s=%v", k, fields[k])
		}
	}
	c.std.Println(line)
}
