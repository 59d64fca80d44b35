package build

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Action runs before or after a step. Actions cannot fail the step.
type Action func(env Environment)

// StepFunc performs the work of a named step
type StepFunc func(ctx context.Context) error

// Orchestrator runs named steps with the actions registered around them
type Orchestrator struct {
	env  Environment
	pre  map[string][]Action
	post map[string][]Action
}

// New returns an Orchestrator whose actions receive env
func New(env Environment) *Orchestrator {
	return &Orchestrator{
		env:  env,
		pre:  make(map[string][]Action),
		post: make(map[string][]Action),
	}
}

// AddPreAction registers action to run before step
func (o *Orchestrator) AddPreAction(step string, action Action) {
	o.pre[step] = append(o.pre[step], action)
}

// AddPostAction registers action to run after step succeeds
func (o *Orchestrator) AddPostAction(step string, action Action) {
	o.post[step] = append(o.post[step], action)
}

// Run executes the pre-actions, fn, then the post-actions of step.
// Post-actions are skipped when fn fails.
func (o *Orchestrator) Run(ctx context.Context, step string, fn StepFunc) error {
	for _, action := range o.pre[step] {
		action(o.env)
	}

	if err := fn(ctx); err != nil {
		return fmt.Errorf("%s: %w", step, err)
	}

	for _, action := range o.post[step] {
		action(o.env)
	}
	return nil
}

// Command returns a step that runs name with args, passing stdio through
func Command(name string, args ...string) StepFunc {
	return func(ctx context.Context) error {
		cmd := exec.CommandContext(ctx, name, args...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}
}
