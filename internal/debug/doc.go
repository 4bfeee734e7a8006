// Package debug builds the process logger.
//
// Output goes to the console in a colorized or JSON format and, when a log
// file is configured, to a rotating JSON file as well. When the
// BOXLAYOUT_DEBUG environment variable is set to a file path, debug level
// messages are appended to that file regardless of the configured level.
package debug
