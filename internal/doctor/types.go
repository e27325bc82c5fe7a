package doctor

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryConfig represents problems loading the hook config.
	CategoryConfig IssueCategory = "config"
	// CategoryHooks represents problems with installed hook files.
	CategoryHooks IssueCategory = "hooks"
)

// FixAction is what --fix does about an issue.
type FixAction string

const (
	FixNone    FixAction = ""        // needs the user
	FixInstall FixAction = "install" // (re)write the managed hook
	FixChmod   FixAction = "chmod"   // mark the hook executable
	FixRemove  FixAction = "remove"  // delete a managed hook nobody configures
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        // phase name or config path
	Path        string        // file the issue is about
	Description string        // human-readable description
	FixAction   FixAction     // what --fix would do
	Category    IssueCategory // issue category
}

// Fixable reports whether --fix can resolve the issue.
func (i Issue) Fixable() bool {
	return i.FixAction != FixNone
}

// IssueStats tracks counts by outcome.
type IssueStats struct {
	HooksHealthy      int // installed, executable and current
	HooksRepairable   int // fixable with --fix
	HooksUnrepairable int // need the user (unmanaged files, missing hooks dir)
}
