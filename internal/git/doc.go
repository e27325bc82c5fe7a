// Package git resolves repository paths by shelling out to the git CLI.
//
// git-smee never reads .git itself. Asking git keeps the answers right for
// linked worktrees, core.hooksPath, bare repositories and GIT_DIR overrides:
//
//   - [FindRepositoryRoot]: git rev-parse --show-toplevel
//   - [ResolveGitPath]: git rev-parse --git-path <key>
//   - [Repository.HooksDir]: the effective hooks directory
//
// All commands go through the cmd package, so git's stderr becomes the error
// text and verbose mode logs every call.
package git
