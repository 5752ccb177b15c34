package remediation

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cargokit/editioncheck/pkg/compat"
	"github.com/cargokit/editioncheck/pkg/logger"
)

// skipIndicator appears in cargo's stderr when the requested package is not
// part of the dependency graph. That outcome is a skip, not a failure.
const skipIndicator = "did not match any packages"

// Fix outcome statuses.
const (
	StatusUpdated = "updated"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// Runner abstracts the synchronous subprocess invocation so the executor can
// be tested without spawning real processes. Run blocks until the process
// exits and returns its exit code together with captured stderr text. When
// stream is true the subprocess output is also passed through to the
// caller's terminal.
type Runner interface {
	Run(name string, args []string, dir string, stream bool) (exitCode int, stderr string, err error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(name string, args []string, dir string, stream bool) (int, string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	var stderrBuf bytes.Buffer
	if stream {
		cmd.Stdout = os.Stdout
		cmd.Stderr = io.MultiWriter(os.Stderr, &stderrBuf)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), stderrBuf.String(), nil
		}
		return -1, stderrBuf.String(), err
	}
	return 0, stderrBuf.String(), nil
}

// Outcome records how the fix attempt for one issue ended.
type Outcome struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
	Detail  string `json:"detail,omitempty"`
}

// FixResult aggregates one fix run: the cargo config step plus one outcome
// per issue.
type FixResult struct {
	ConfigPath    string    `json:"config_path"`
	ConfigCreated bool      `json:"config_created"`
	ConfigError   string    `json:"config_error,omitempty"`
	Outcomes      []Outcome `json:"outcomes"`
	Updated       int       `json:"updated"`
	Skipped       int       `json:"skipped"`
	Failed        int       `json:"failed"`
}

// Executor applies remediation to a project by writing the cargo config and
// pinning each offending crate through the package manager.
type Executor struct {
	Runner Runner
	Cargo  string // package manager executable, "cargo" unless overridden
}

// NewExecutor returns an executor backed by real subprocess invocation.
func NewExecutor() *Executor {
	return &Executor{Runner: execRunner{}, Cargo: "cargo"}
}

// Apply writes the cargo config (unless one already exists) and then runs
// one `cargo update -p <name> --precise <version>` per issue, in issue
// order. No single subprocess failure aborts the loop; every issue is
// attempted and classified as updated, skipped, or failed.
func (e *Executor) Apply(projectPath string, issues []compat.Issue, stream bool) *FixResult {
	result := &FixResult{ConfigPath: filepath.Join(projectPath, CargoConfigPath)}
	e.writeCargoConfig(projectPath, result)

	for _, issue := range issues {
		args := []string{"update", "-p", issue.Name, "--precise", issue.MaxCompatible}
		logger.Debugf("fix: running %s %s", e.Cargo, strings.Join(args, " "))

		outcome := Outcome{Name: issue.Name, Version: issue.MaxCompatible}
		exitCode, stderr, err := e.Runner.Run(e.Cargo, args, projectPath, stream)
		switch {
		case err != nil:
			outcome.Status = StatusFailed
			outcome.Detail = err.Error()
			result.Failed++
		case exitCode == 0:
			outcome.Status = StatusUpdated
			result.Updated++
		case strings.Contains(stderr, skipIndicator):
			outcome.Status = StatusSkipped
			outcome.Detail = "not present in the dependency graph"
			result.Skipped++
		default:
			outcome.Status = StatusFailed
			outcome.Detail = strings.TrimSpace(stderr)
			result.Failed++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}
	return result
}

// writeCargoConfig creates .cargo/config.toml with the static content if no
// config exists yet. A write failure is recorded in the result and does not
// stop the per-issue updates.
func (e *Executor) writeCargoConfig(projectPath string, result *FixResult) {
	if _, err := os.Stat(result.ConfigPath); err == nil {
		logger.Debugf("fix: %s already exists, leaving it alone", result.ConfigPath)
		return
	}
	if err := os.MkdirAll(filepath.Dir(result.ConfigPath), 0755); err != nil {
		result.ConfigError = err.Error()
		return
	}
	if err := os.WriteFile(result.ConfigPath, []byte(CargoConfig()), 0644); err != nil {
		result.ConfigError = err.Error()
		return
	}
	result.ConfigCreated = true
	logger.Infof("Wrote %s", result.ConfigPath)
}
