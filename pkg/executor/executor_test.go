package executor

import (
	"context"
	"errors"
	"testing"
	"time"

	dotuperrors "github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations and fails for configured script paths
type fakeRunner struct {
	invoked []string
	failing map[string]error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{failing: make(map[string]error)}
}

func (r *fakeRunner) failOn(script string) {
	r.failing[script] = errors.New("exit status 1")
}

func (r *fakeRunner) Run(_ context.Context, scriptPath string) error {
	r.invoked = append(r.invoked, scriptPath)
	if err, ok := r.failing[scriptPath]; ok {
		return err
	}
	return nil
}

func dotWith(name string, install, setup string) types.Dot {
	return types.Dot{
		Name:          name,
		Path:          "/df/" + name,
		InstallScript: install,
		SetupScript:   setup,
	}
}

func TestExecuteSetupOnly(t *testing.T) {
	runner := newFakeRunner()
	e := New(Options{Runner: runner})

	bash := dotWith("bash", "", "/df/bash/setup.sh")
	results := e.Execute(context.Background(), []types.Selection{{Dot: bash}})

	assert.Equal(t, []string{"/df/bash/setup.sh"}, runner.invoked)
	require.Len(t, results.Succeeded, 1)
	assert.Empty(t, results.Failed)
	assert.Equal(t, "bash", results.Succeeded[0].Dot.Name)
	assert.Equal(t, types.ReasonNone, results.Succeeded[0].Reason)
}

func TestExecuteInstallThenSetup(t *testing.T) {
	runner := newFakeRunner()
	e := New(Options{Runner: runner})

	starship := dotWith("starship", "/df/starship/install.sh", "/df/starship/setup.sh")
	results := e.Execute(context.Background(), []types.Selection{{Dot: starship, Install: true}})

	assert.Equal(t, []string{"/df/starship/install.sh", "/df/starship/setup.sh"}, runner.invoked)
	require.Len(t, results.Succeeded, 1)
	assert.Empty(t, results.Failed)
}

func TestExecuteInstallNotRequested(t *testing.T) {
	runner := newFakeRunner()
	e := New(Options{Runner: runner})

	starship := dotWith("starship", "/df/starship/install.sh", "/df/starship/setup.sh")
	results := e.Execute(context.Background(), []types.Selection{{Dot: starship, Install: false}})

	// install script present but not marked, so only setup runs
	assert.Equal(t, []string{"/df/starship/setup.sh"}, runner.invoked)
	require.Len(t, results.Succeeded, 1)
}

func TestExecuteInstallFailureSkipsSetup(t *testing.T) {
	runner := newFakeRunner()
	runner.failOn("/df/starship/install.sh")
	e := New(Options{Runner: runner})

	starship := dotWith("starship", "/df/starship/install.sh", "/df/starship/setup.sh")
	results := e.Execute(context.Background(), []types.Selection{{Dot: starship, Install: true}})

	// setup must never run after a failed install
	assert.Equal(t, []string{"/df/starship/install.sh"}, runner.invoked)
	require.Len(t, results.Failed, 1)
	assert.Empty(t, results.Succeeded)

	failed := results.Failed[0]
	assert.Equal(t, "starship", failed.Dot.Name)
	assert.Equal(t, types.ReasonInstallFailed, failed.Reason)
	assert.True(t, dotuperrors.IsErrorCode(failed.Err, dotuperrors.ErrScriptExecute))
}

func TestExecuteSetupFailure(t *testing.T) {
	runner := newFakeRunner()
	runner.failOn("/df/zsh/setup.sh")
	e := New(Options{Runner: runner})

	zsh := dotWith("zsh", "", "/df/zsh/setup.sh")
	results := e.Execute(context.Background(), []types.Selection{{Dot: zsh}})

	require.Len(t, results.Failed, 1)
	assert.Equal(t, types.ReasonSetupFailed, results.Failed[0].Reason)
}

func TestExecuteNoSetupScriptYieldsNoOutcome(t *testing.T) {
	runner := newFakeRunner()
	e := New(Options{Runner: runner})

	inert := dotWith("inert", "", "")
	results := e.Execute(context.Background(), []types.Selection{{Dot: inert}})

	assert.Empty(t, runner.invoked)
	assert.Empty(t, results.Failed)
	assert.Empty(t, results.Succeeded)
}

func TestExecuteMissingInstallScriptRunsSetup(t *testing.T) {
	runner := newFakeRunner()
	e := New(Options{Runner: runner})

	// marked to install but no install script resolved: setup still runs
	bash := dotWith("bash", "", "/df/bash/setup.sh")
	results := e.Execute(context.Background(), []types.Selection{{Dot: bash, Install: true}})

	assert.Equal(t, []string{"/df/bash/setup.sh"}, runner.invoked)
	require.Len(t, results.Succeeded, 1)
}

func TestExecuteFailureIsolation(t *testing.T) {
	runner := newFakeRunner()
	runner.failOn("/df/bash/setup.sh")
	e := New(Options{Runner: runner})

	selections := []types.Selection{
		{Dot: dotWith("bash", "", "/df/bash/setup.sh")},
		{Dot: dotWith("zsh", "", "/df/zsh/setup.sh")},
	}
	results := e.Execute(context.Background(), selections)

	// a broken dot never blocks the next one
	assert.Equal(t, []string{"/df/bash/setup.sh", "/df/zsh/setup.sh"}, runner.invoked)
	assert.Equal(t, []string{"bash"}, results.FailedNames())
	assert.Equal(t, []string{"zsh"}, results.SucceededNames())
}

func TestExecuteOrderPreserved(t *testing.T) {
	runner := newFakeRunner()
	e := New(Options{Runner: runner})

	selections := []types.Selection{
		{Dot: dotWith("bash", "", "/df/bash/setup.sh")},
		{Dot: dotWith("nvim", "", "/df/nvim/setup.sh")},
		{Dot: dotWith("zsh", "", "/df/zsh/setup.sh")},
	}
	results := e.Execute(context.Background(), selections)

	assert.Equal(t, []string{"bash", "nvim", "zsh"}, results.SucceededNames())
}

func TestExecuteDryRun(t *testing.T) {
	runner := newFakeRunner()
	e := New(Options{Runner: runner, DryRun: true})

	starship := dotWith("starship", "/df/starship/install.sh", "/df/starship/setup.sh")
	results := e.Execute(context.Background(), []types.Selection{{Dot: starship, Install: true}})

	assert.Empty(t, runner.invoked)
	require.Len(t, results.Succeeded, 1)
	assert.Empty(t, results.Failed)
}

// slowRunner blocks until its context is cancelled
type slowRunner struct{}

func (slowRunner) Run(ctx context.Context, _ string) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestExecuteScriptTimeout(t *testing.T) {
	e := New(Options{Runner: slowRunner{}, ScriptTimeout: 10 * time.Millisecond})

	zsh := dotWith("zsh", "", "/df/zsh/setup.sh")

	done := make(chan types.Results, 1)
	go func() {
		done <- e.Execute(context.Background(), []types.Selection{{Dot: zsh}})
	}()

	select {
	case results := <-done:
		require.Len(t, results.Failed, 1)
		assert.Equal(t, types.ReasonSetupFailed, results.Failed[0].Reason)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout did not fire, execution hung")
	}
}
