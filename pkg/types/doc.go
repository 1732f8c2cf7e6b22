// Package types provides shared type definitions for hylite.
//
// The types here are used by the scanner, the parser, the reports and the MCP
// server, so they live outside internal/.
//
// # Locations
//
// Location identifies one writing of a hylite:
//
//	loc := types.Location{File: "src/main.c", Line: 42}
//	fmt.Println(loc) // src/main.c:42
//
// # Errors
//
// Scanning distinguishes two kinds of failure. A FileError means one input was
// skipped and scanning went on with the next file:
//
//	var fe *types.FileError
//	if errors.As(err, &fe) && errors.Is(fe, types.ErrUnreadableFile) {
//	    log.Printf("skipped %s", fe.Path)
//	}
//
// An error wrapping ErrScanAborted means the run stopped. Hylites collected from
// files scanned before the failure stay in the set.
package types
