package inject

import (
	"fmt"
	"strings"

	"github.com/tacogips/vitesetup/internal/patch"
)

// Status is the aggregate result of one injection call.
type Status int

const (
	// Succeeded means every primary step left its file in the patched state.
	Succeeded Status = iota
	// PartiallySucceeded means packages may be installed but file wiring was skipped.
	PartiallySucceeded
)

// String returns the status name.
func (s Status) String() string {
	if s == Succeeded {
		return "Succeeded"
	}
	return "PartiallySucceeded"
}

// StepResult records what happened to one step.
type StepResult struct {
	// Label is "create" for the setup file or the patch rule.
	Label string
	// Candidates are the files the step could target.
	Candidates []string
	// File is the project-relative file that was targeted ("" when none existed).
	File string
	// Result is the patcher outcome.
	Result patch.Result
	// Primary steps decide the overall status.
	Primary bool
	// Discarded is set when the step succeeded in memory but the file was not
	// written because another primary step on the same file failed.
	Discarded bool
}

// Done reports whether the step's change is on disk (or already was).
func (r StepResult) Done() bool {
	return r.Result.Done() && !r.Discarded
}

// Outcome is the result of InjectStyling or InjectRouting.
type Outcome struct {
	// Name is the capability label.
	Name string
	// Status is the aggregate status.
	Status Status
	// Installed lists the packages installed by this call.
	Installed []string
	// Steps are the per-step results in execution order.
	Steps []StepResult
	// Err is the install or I/O failure that caused a partial outcome, if any.
	Err error
}

// Succeeded reports whether the injection fully succeeded.
func (o Outcome) Succeeded() bool {
	return o.Status == Succeeded
}

// Changed reports whether any file was written.
func (o Outcome) Changed() bool {
	for _, s := range o.Steps {
		if s.Result == patch.Applied && !s.Discarded {
			return true
		}
	}
	return false
}

// Warnings describes every primary step that did not complete.
func (o Outcome) Warnings() []string {
	var warnings []string
	if o.Err != nil {
		warnings = append(warnings, o.Err.Error())
	}
	for _, s := range o.Steps {
		if !s.Primary || s.Done() {
			continue
		}
		switch {
		case s.Result == patch.FileNotFound:
			warnings = append(warnings, fmt.Sprintf("none of %s found", strings.Join(s.Candidates, ", ")))
		case s.Discarded:
			warnings = append(warnings, fmt.Sprintf("%s: %s left unchanged because another edit failed", s.File, s.Label))
		default:
			warnings = append(warnings, fmt.Sprintf("%s: %s (%s)", s.File, s.Result, s.Label))
		}
	}
	return warnings
}

func (o *Outcome) settle() {
	o.Status = Succeeded
	if o.Err != nil {
		o.Status = PartiallySucceeded
		return
	}
	for _, s := range o.Steps {
		if s.Primary && !s.Done() {
			o.Status = PartiallySucceeded
			return
		}
	}
}
