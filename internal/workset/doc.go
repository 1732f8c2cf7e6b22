// Package workset decides which files a scan reads.
//
// A set file is YAML with include and exclude glob lists. Globs use
// doublestar syntax, so "**" crosses directories, and are resolved against the
// directory that holds the set file:
//
//	include:
//	  - "**/*.java"
//	  - "docs/*.txt"
//	exclude:
//	  - "build/**"
//
// Hidden files, files inside hidden directories and backups ending in "~" are
// left out unless SetCovert(true) is called.
//
// Files named on the command line form a ManualSet instead. Unreadable names
// are logged and dropped when the set is built.
//
// Without either, the CLI loads $HYLITE_SET or ./.hylite (see DefaultPath).
package workset
