// Package doctor diagnoses and optionally repairs a repository's git-smee
// hook installation.
//
// It detects:
//
//   - Config issues: the hook config is missing, unreadable or invalid.
//     Hook checks are skipped until the config loads.
//
//   - Hook issues: configured phases without a hook file, hook files that
//     are not executable, managed hooks whose script no longer matches what
//     install would write (the binary or config moved), managed hooks for
//     phases that are no longer configured, and unmanaged files in the way.
//
// # Usage
//
//	err := doctor.Run(ctx, opts)       // check only
//	opts.Fix = true
//	err = doctor.Run(ctx, opts)        // check and fix
//
// Unmanaged hook files are never touched; they need 'git smee install --force'
// or manual cleanup. Each [Issue] carries the [FixAction] --fix would take.
package doctor
