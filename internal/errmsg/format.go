// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Library operations
	OpLibraryScan   Op = "scan library"
	OpLibraryLoad   Op = "load library"
	OpLibrarySave   Op = "save library"
	OpLibraryLookup Op = "find track"

	// Collections
	OpCollectionLoad   Op = "load collections"
	OpCollectionSave   Op = "save collections"
	OpCollectionCreate Op = "create collection"
	OpCollectionAdd    Op = "add to collection"
	OpCollectionDelete Op = "delete collection"

	// Queue and playback
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"
	OpVolumeSave    Op = "save volume"

	// Configuration and state
	OpConfigLoad Op = "load configuration"
	OpStateOpen  Op = "open library database"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
