package types

// FailureReason identifies which phase of a dot's execution failed.
// The reference behavior collapsed install and setup failures into one
// bucket; keeping the phase explicit makes the summary actionable.
type FailureReason string

const (
	// ReasonNone means the dot completed without failure
	ReasonNone FailureReason = ""

	// ReasonInstallFailed means the install script exited abnormally;
	// setup was skipped
	ReasonInstallFailed FailureReason = "install failed"

	// ReasonSetupFailed means the setup script exited abnormally
	ReasonSetupFailed FailureReason = "setup failed"
)

// Outcome records the result of executing one dot
type Outcome struct {
	Dot     Dot
	Success bool
	Reason  FailureReason
	Err     error
}

// Results aggregates per-dot outcomes of a run, preserving execution order
// within each list. Dots with no setup script produce no outcome at all.
type Results struct {
	Failed    []Outcome
	Succeeded []Outcome
}

// HasFailures reports whether any dot failed
func (r Results) HasFailures() bool {
	return len(r.Failed) > 0
}

// FailedNames returns the names of failed dots in execution order
func (r Results) FailedNames() []string {
	return outcomeNames(r.Failed)
}

// SucceededNames returns the names of succeeded dots in execution order
func (r Results) SucceededNames() []string {
	return outcomeNames(r.Succeeded)
}

func outcomeNames(outcomes []Outcome) []string {
	names := make([]string, len(outcomes))
	for i, o := range outcomes {
		names[i] = o.Dot.Name
	}
	return names
}
