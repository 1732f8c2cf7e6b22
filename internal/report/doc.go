// Package report renders a hylite set, or a view over one, for people and for
// tools.
//
// Listing and Directory write the text forms used by the hyt command. Entries
// and DirEntries return the same information as plain structs for JSON
// encoding.
//
// A directory shows every attribute with a reference marker:
//
//	_Name
//	  cache ·
//	    evict ·
//	perf ·
//	todo (2)
package report
