// Package pipeline runs the action's steps strictly in order. The first
// failing step terminates the run; nothing is retried and no step rolls back.
package pipeline

import (
	"context"
	"fmt"

	"pw2pr.dev/pw2pr/internal/output"
)

// Step is one named unit of the run.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Pipeline executes steps sequentially.
type Pipeline struct {
	steps []Step
	splog *output.Splog
}

// New creates an empty pipeline logging through splog.
func New(splog *output.Splog) *Pipeline {
	return &Pipeline{splog: splog}
}

// Add appends a step. Steps execute in insertion order.
func (p *Pipeline) Add(name string, run func(ctx context.Context) error) {
	p.steps = append(p.steps, Step{Name: name, Run: run})
}

// Steps returns the step names in execution order.
func (p *Pipeline) Steps() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name
	}
	return names
}

// Execute runs every step in order, stopping at the first failure. The
// returned error is the failing step's error wrapped with its name.
func (p *Pipeline) Execute(ctx context.Context) error {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", step.Name, err)
		}

		if p.splog != nil {
			p.splog.Step(step.Name)
		}
		if err := step.Run(ctx); err != nil {
			return fmt.Errorf("%s: %w", step.Name, err)
		}
	}
	return nil
}
