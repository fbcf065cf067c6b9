// pkg/status/types.go
package status

// Record holds the fields of one installed package's status stanza
// that matter for world classification
type Record struct {
	Name         string
	Architecture string
	Version      string
	Priority     Priority
	Section      string
	Essential    bool
}

// Records indexes installed packages by name. Later stanzas for the
// same name overwrite earlier ones, matching dpkg's own behavior.
type Records map[string]Record

// AutoFlags records apt's Auto-Installed markers by package name. A
// missing key means apt never flagged the package either way, which is
// not the same thing as an explicit Auto-Installed: 0.
type AutoFlags map[string]bool

// ExplicitManual reports whether name carries a recorded
// Auto-Installed: 0 entry
func (f AutoFlags) ExplicitManual(name string) bool {
	auto, flagged := f[name]
	return flagged && !auto
}
