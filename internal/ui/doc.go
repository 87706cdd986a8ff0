// Package ui renders the styled output of the non-interactive commands.
//
// Unlike the wizard, these components print once and return: a command
// banner (Header), result boxes for success, failure and warnings (Result),
// tables for listings, a y/N prompt and a spinner shown while a blocking
// call such as a network scan runs.
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Preview server", "flochat-wizard serve",
//	    ui.Param{Key: "Address", Value: url})
//	p.PrintSuccess("Server stopped")
//
// Widths follow the terminal (golang.org/x/term) and are clamped to
// [MinTerminalWidth, MaxContentWidth].
package ui
