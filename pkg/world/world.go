// pkg/world/world.go

// Package world classifies installed packages into the user's world,
// the set of packages someone asked for by name rather than ones apt
// pulled in as dependencies.
package world

import (
	"errors"
	"fmt"

	"github.com/pkgtools/apt-world/pkg/status"
)

// ErrModeConflict indicates both restrictive modes were requested at
// once; they disagree about what to do with unflagged packages
var ErrModeConflict = errors.New("cannot combine explicitly-manual and filter-base modes")

// Mode selects the classification policy
type Mode int

const (
	// ModeDefault counts a package as manual when its Auto-Installed
	// flag is 0, or when apt never recorded a flag for it at all.
	ModeDefault Mode = iota

	// ModeExplicit counts only packages with a recorded
	// Auto-Installed: 0. Unflagged packages are excluded.
	ModeExplicit

	// ModeFilterBase is ModeDefault minus essential and base-priority
	// packages. An explicit Auto-Installed: 0 still wins: packages the
	// user flagged by hand survive the filter.
	ModeFilterBase
)

// String returns the mode name used in logs and usage text
func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeExplicit:
		return "explicitly-manual"
	case ModeFilterBase:
		return "filter-base"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ResolveMode maps the two mode flags onto a Mode. The combination of
// both is rejected here so callers can refuse it before touching any
// file.
func ResolveMode(explicitOnly, filterBase bool) (Mode, error) {
	switch {
	case explicitOnly && filterBase:
		return ModeDefault, ErrModeConflict
	case explicitOnly:
		return ModeExplicit, nil
	case filterBase:
		return ModeFilterBase, nil
	default:
		return ModeDefault, nil
	}
}

// Origin records why a package landed in the manual set
type Origin int

const (
	// OriginExplicit means extended_states carries Auto-Installed: 0
	OriginExplicit Origin = iota

	// OriginImplicit means apt never flagged the package either way
	OriginImplicit
)

// String returns the label shown in the output table
func (o Origin) String() string {
	if o == OriginExplicit {
		return "Explicit"
	}
	return "Implicit"
}

// ManualSet maps manually installed package names to the origin of
// that judgement. It is always a subset of the records it was built
// from.
type ManualSet map[string]Origin

// Options tunes classification beyond the mode
type Options struct {
	// BasePriorities are the priorities ModeFilterBase treats as base
	// system indicators. Empty means DefaultBasePriorities.
	BasePriorities []status.Priority
}

// DefaultBasePriorities match what debian-policy calls packages
// necessary for the proper functioning of the system
var DefaultBasePriorities = []status.Priority{
	status.PriorityRequired,
	status.PriorityImportant,
}

// Classify computes the manual set for records under the given mode.
// Flags for packages that are not installed are ignored.
func Classify(records status.Records, flags status.AutoFlags, mode Mode, opts Options) (ManualSet, error) {
	switch mode {
	case ModeDefault, ModeExplicit, ModeFilterBase:
	default:
		return nil, fmt.Errorf("unknown classification mode %d", int(mode))
	}

	base := opts.BasePriorities
	if len(base) == 0 {
		base = DefaultBasePriorities
	}

	set := make(ManualSet)
	for name, rec := range records {
		auto, flagged := flags[name]
		if flagged && auto {
			// Explicitly automatic, never manual
			continue
		}

		origin := OriginImplicit
		if flagged {
			origin = OriginExplicit
		}

		switch mode {
		case ModeExplicit:
			if origin != OriginExplicit {
				continue
			}
		case ModeFilterBase:
			if origin == OriginImplicit && isBase(rec, base) {
				continue
			}
		}

		set[name] = origin
	}

	return set, nil
}

// isBase reports whether a record belongs to the base system: either
// dpkg marks it essential or its priority is in the base list
func isBase(rec status.Record, base []status.Priority) bool {
	if rec.Essential {
		return true
	}
	for _, p := range base {
		if rec.Priority == p {
			return true
		}
	}
	return false
}
