package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphi011/git-smee/internal/config"
	"github.com/raphi011/git-smee/internal/output"
	"github.com/raphi011/git-smee/internal/platform"
)

// ErrIssuesFound is returned when issues remain after Run.
var ErrIssuesFound = errors.New("hook installation has issues")

// Options configures a doctor run.
type Options struct {
	ConfigPath string
	HooksDir   string
	// Script is what install would write into hook scripts now.
	Script   platform.ScriptOptions
	Platform platform.Platform
	Fix      bool
}

// Report is the outcome of Check.
type Report struct {
	Issues []Issue
	Stats  IssueStats

	config *config.Config
}

// Check runs all diagnostics without changing anything.
func Check(ctx context.Context, opts Options) (*Report, error) {
	cfg, issues := checkConfig(ctx, opts.ConfigPath)
	report := &Report{Issues: issues, config: cfg}
	if cfg == nil {
		return report, nil
	}

	hookIssues, stats, err := checkHooks(cfg, opts)
	if err != nil {
		return nil, err
	}
	report.Issues = append(report.Issues, hookIssues...)
	report.Stats = stats
	return report, nil
}

// Run performs the diagnostics, prints the findings and, with opts.Fix,
// repairs what it can. It returns ErrIssuesFound while issues remain.
func Run(ctx context.Context, opts Options) error {
	out := output.FromContext(ctx)

	out.Println("Checking config...")
	out.Println("Checking hooks...")
	report, err := Check(ctx, opts)
	if err != nil {
		return err
	}

	printSummary(out, report)

	if len(report.Issues) == 0 {
		out.Println("\n✓ No issues found")
		return nil
	}

	out.Printf("\nFound %d issues:\n", len(report.Issues))
	printIssuesByCategory(out, report.Issues)

	if opts.Fix {
		return fixAllIssues(ctx, report, opts)
	}

	for _, issue := range report.Issues {
		if issue.Fixable() {
			out.Println("\nRun 'git smee doctor --fix' to repair.")
			break
		}
	}
	return fmt.Errorf("%w: %d found", ErrIssuesFound, len(report.Issues))
}

// printSummary prints a categorized summary.
func printSummary(out *output.Printer, report *Report) {
	out.Println()

	if report.config == nil {
		out.Println("  ✗ config could not be loaded")
		return
	}
	out.Println("  ✓ config valid")

	stats := report.Stats
	if stats.HooksHealthy > 0 {
		out.Printf("  ✓ %d hooks healthy\n", stats.HooksHealthy)
	}
	if stats.HooksRepairable > 0 {
		out.Printf("  ⚠ %d repairable\n", stats.HooksRepairable)
	}
	if stats.HooksUnrepairable > 0 {
		out.Printf("  ✗ %d need manual attention\n", stats.HooksUnrepairable)
	}
}

// printIssuesByCategory groups and prints issues.
func printIssuesByCategory(out *output.Printer, issues []Issue) {
	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	categoryNames := map[IssueCategory]string{
		CategoryConfig: "Config issues",
		CategoryHooks:  "Hook issues",
	}

	for _, cat := range []IssueCategory{CategoryConfig, CategoryHooks} {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		out.Printf("\n%s:\n", categoryNames[cat])
		for _, issue := range catIssues {
			out.Printf("  • %s: %s\n", issue.Key, issue.Description)
		}
	}
}
