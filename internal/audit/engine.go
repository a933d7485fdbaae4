package audit

import (
	"runtime"
	"sort"
	"time"

	"github.com/boshu2/agentaudit/internal/agentconfig"
	"github.com/boshu2/agentaudit/internal/discovery"
)

// MaxLogFiles caps how many session logs a single check may inspect,
// keeping total work bounded regardless of directory size.
const MaxLogFiles = 5

// Input is the common argument set handed to every check.
type Input struct {
	// Config is the parsed agent configuration, or nil when no config
	// file was found or the file failed to parse. Checks that require
	// config are skipped entirely in that case; they are never invoked
	// against an empty default.
	Config *agentconfig.Config

	// Files is the discovered, boundary-validated file inventory.
	Files *discovery.Files

	// Deep raises the capped-read byte budget for log scanning.
	Deep bool
}

// CheckFunc inspects the input and returns zero or more findings. It
// must not return an error: any internal I/O or parse failure degrades
// to omitting the affected finding.
type CheckFunc func(in Input) []Finding

// Check is one detector category in the engine's registry.
type Check struct {
	// Name is a short category label used in verbose logging.
	Name string

	// RequiresConfig marks checks that are meaningless without a
	// successfully parsed configuration. "No policy configured" and
	// "policy file is broken" must not be conflated, so these checks
	// are omitted from the run rather than fed an empty object.
	RequiresConfig bool

	// Run produces the category's findings.
	Run CheckFunc
}

// Engine invokes a fixed, ordered registry of checks and reduces their
// output into a Result. Registration order is part of the deterministic
// contract; checks never observe each other's output.
type Engine struct {
	checks []Check
}

// NewEngine creates an engine over the given ordered check registry.
func NewEngine(checks []Check) *Engine {
	return &Engine{checks: checks}
}

// ChecksRun reports the registry size. This is a property of the audit
// surface, not of a particular input: config-gated checks that are
// skipped for lack of a parsed config still count.
func (e *Engine) ChecksRun() int {
	return len(e.checks)
}

// Run executes the full pipeline: sequential check invocation,
// aggregation, confidence triage, scoring, and result assembly.
func (e *Engine) Run(in Input, toolVersion string) *Result {
	start := time.Now()

	var raw []Finding
	for _, c := range e.checks {
		if c.RequiresConfig && in.Config == nil {
			continue
		}
		raw = append(raw, c.Run(in)...)
	}

	findings, suggestions := SplitConfidence(Aggregate(raw))
	sortBySeverity(findings)
	sortBySeverity(suggestions)

	filesScanned := 0
	if in.Files != nil {
		filesScanned = in.Files.Count()
	}

	checksPassed := len(e.checks) - len(findings)
	if checksPassed < 0 {
		checksPassed = 0
	}

	return &Result{
		Timestamp:    start.UTC(),
		ToolVersion:  toolVersion,
		Score:        Score(findings),
		Findings:     findings,
		Suggestions:  suggestions,
		FilesScanned: filesScanned,
		ChecksRun:    len(e.checks),
		ChecksPassed: checksPassed,
		DurationMs:   time.Since(start).Milliseconds(),
		Platform:     runtime.GOOS,
	}
}

// sortBySeverity orders findings most severe first, preserving the
// registry-driven order within a severity band.
func sortBySeverity(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		return severityRank(findings[i].Severity) < severityRank(findings[j].Severity)
	})
}
