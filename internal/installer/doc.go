// Package installer writes generated hook scripts and the config file.
//
// Every generated file carries the managed marker comment. A file with the
// marker belongs to git-smee; a file without it belongs to the user.
//
// # Overwrite Rules
//
//   - A missing target is always written.
//   - --force writes over anything.
//   - An existing hook is replaced only when it is managed.
//   - An existing config is never replaced without --force, managed or not,
//     because it may hold user edits.
//
// # Implementations
//
// FileSystem writes to disk. Memory holds files in a map and applies the
// same rules; the CLI uses it for --dry-run previews.
//
// Installs are not transactional. When a phase fails, hooks installed
// before it are left as they are.
package installer
