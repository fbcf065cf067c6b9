// pkg/status/priority.go
package status

import "strings"

// Priority represents a Debian package priority
type Priority string

const (
	PriorityRequired  Priority = "required"  // packages necessary for the system to work
	PriorityImportant Priority = "important" // found on any Unix-like system
	PriorityStandard  Priority = "standard"  // default install set
	PriorityOptional  Priority = "optional"  // everything else
	PriorityExtra     Priority = "extra"     // superseded by optional, still seen in old stanzas
)

// KnownPriorities contains every priority debian-policy defines
var KnownPriorities = []Priority{
	PriorityRequired,
	PriorityImportant,
	PriorityStandard,
	PriorityOptional,
	PriorityExtra,
}

// ParsePriority normalizes a raw Priority field value
func ParsePriority(s string) Priority {
	return Priority(strings.ToLower(strings.TrimSpace(s)))
}

// String returns the string representation of the priority
func (p Priority) String() string {
	return string(p)
}

// IsValid checks if the priority is one debian-policy defines
func (p Priority) IsValid() bool {
	for _, known := range KnownPriorities {
		if p == known {
			return true
		}
	}
	return false
}
