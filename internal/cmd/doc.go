// Package cmd runs external programs with stderr folded into errors.
//
// git-smee shells out to git to resolve repository paths. A failed git call
// usually explains itself on stderr ("fatal: not a git repository"), so that
// text becomes the error message instead of "exit status 128".
//
// Every call is logged through the context logger in verbose mode:
//
//	[/repo] $ git rev-parse --git-path hooks (4ms)
package cmd
