// aptworld.go

// Package aptworld identifies the packages a user deliberately
// installed on a Debian-family system, as opposed to the ones apt
// pulled in to satisfy dependencies.
//
// It reads two on-disk databases: the dpkg status file, which lists
// every installed package, and apt's extended_states file, which
// records an Auto-Installed flag for the packages apt has an opinion
// about. Classification joins the two.
package aptworld

import (
	"github.com/pkgtools/apt-world/pkg/render"
	"github.com/pkgtools/apt-world/pkg/status"
	"github.com/pkgtools/apt-world/pkg/world"
)

// Options configures a single classification run
type Options struct {
	// StatusPath is the dpkg status database. Required: when it cannot
	// be read, Collect fails.
	StatusPath string

	// StatesPath is apt's extended_states database. When it is missing
	// the run proceeds with every package treated as manually
	// installed.
	StatesPath string

	// Mode is the classification policy
	Mode world.Mode

	// BasePriorities overrides the priorities ModeFilterBase strips.
	// Nil means the classifier defaults.
	BasePriorities []status.Priority
}

// Result is a finished classification
type Result struct {
	Records status.Records   // every installed package
	Flags   status.AutoFlags // apt's auto-installed markers
	Set     world.ManualSet  // the packages judged manual
}

// Collect reads both databases and classifies the installed packages.
// The reads happen in order, status first, so a broken status database
// fails before extended states are touched.
func Collect(opts Options) (*Result, error) {
	records, err := status.ReadStatus(opts.StatusPath)
	if err != nil {
		return nil, &Error{Op: "reading status database", Path: opts.StatusPath, Err: err}
	}

	flags := status.ReadExtendedStates(opts.StatesPath)

	set, err := world.Classify(records, flags, opts.Mode, world.Options{
		BasePriorities: opts.BasePriorities,
	})
	if err != nil {
		return nil, err
	}

	return &Result{Records: records, Flags: flags, Set: set}, nil
}

// Rows returns the result as display rows sorted by package name
func (r *Result) Rows() []render.Row {
	return render.Rows(r.Set, r.Records)
}
