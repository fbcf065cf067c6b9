// pkg/status/constants.go
package status

const (
	// DefaultStatusPath is the dpkg status database on Debian systems
	DefaultStatusPath = "/var/lib/dpkg/status"

	// DefaultExtendedStatesPath is where apt records Auto-Installed flags
	DefaultExtendedStatesPath = "/var/lib/apt/extended_states"
)

// Stanza fields read from the two databases
const (
	fieldPackage       = "Package"
	fieldStatus        = "Status"
	fieldArchitecture  = "Architecture"
	fieldVersion       = "Version"
	fieldPriority      = "Priority"
	fieldSection       = "Section"
	fieldEssential     = "Essential"
	fieldAutoInstalled = "Auto-Installed"
)

// installedState is the state word dpkg writes for a package that is
// fully installed, as opposed to unpacked, half-installed, or removed
// with config files left behind
const installedState = "installed"
