package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// messager matches errors that report their own message without the cause chain,
// such as *zerr.Error.
type messager interface {
	Message() string
}

// metadataer matches errors that carry key/value context, such as *zerr.Error.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain of err. A link with an empty message only
// carries context; its metadata moves to the next link with a message.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		var meta map[string]any
		if md, ok := current.(metadataer); ok {
			meta = md.Metadata()
		}

		if m.Message() == "" {
			if pending == nil {
				pending = map[string]any{}
			}
			for k, v := range meta {
				pending[k] = v
			}
			current = errors.Unwrap(current)
			continue
		}

		for k, v := range pending {
			if meta == nil {
				meta = map[string]any{}
			}
			meta[k] = v
		}
		pending = nil

		entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: meta})
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as an "Error:" line followed by a "Caused by:" list.
// Metadata keys are sorted.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		prefix, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			prefix, indent = "    → ", "      "
		}

		lines = append(lines, prefix+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}

		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}
