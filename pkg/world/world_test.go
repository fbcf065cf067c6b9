// pkg/world/world_test.go
package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkgtools/apt-world/pkg/status"
)

func sampleRecords() status.Records {
	return status.Records{
		"editor":     {Name: "editor", Priority: status.PriorityOptional},
		"lib-dep":    {Name: "lib-dep", Priority: status.PriorityOptional},
		"standalone": {Name: "standalone", Priority: status.PriorityStandard},
		"base-files": {Name: "base-files", Priority: status.PriorityRequired, Essential: true},
		"login":      {Name: "login", Priority: status.PriorityRequired, Essential: true},
		"netbase":    {Name: "netbase", Priority: status.PriorityImportant},
	}
}

func sampleFlags() status.AutoFlags {
	return status.AutoFlags{
		"editor":  false, // asked for by name
		"lib-dep": true,  // dependency fill
		"login":   false, // base package the user pinned manual
		"ghost":   true,  // flagged but not installed
	}
}

func TestResolveMode(t *testing.T) {
	mode, err := ResolveMode(false, false)
	require.NoError(t, err)
	assert.Equal(t, ModeDefault, mode)

	mode, err = ResolveMode(true, false)
	require.NoError(t, err)
	assert.Equal(t, ModeExplicit, mode)

	mode, err = ResolveMode(false, true)
	require.NoError(t, err)
	assert.Equal(t, ModeFilterBase, mode)

	_, err = ResolveMode(true, true)
	assert.ErrorIs(t, err, ErrModeConflict)
}

func TestClassifyDefault(t *testing.T) {
	set, err := Classify(sampleRecords(), sampleFlags(), ModeDefault, Options{})
	require.NoError(t, err)

	assert.Equal(t, ManualSet{
		"editor":     OriginExplicit,
		"login":      OriginExplicit,
		"standalone": OriginImplicit,
		"base-files": OriginImplicit,
		"netbase":    OriginImplicit,
	}, set)
}

func TestClassifyExplicit(t *testing.T) {
	set, err := Classify(sampleRecords(), sampleFlags(), ModeExplicit, Options{})
	require.NoError(t, err)

	assert.Equal(t, ManualSet{
		"editor": OriginExplicit,
		"login":  OriginExplicit,
	}, set)
}

func TestClassifyFilterBase(t *testing.T) {
	set, err := Classify(sampleRecords(), sampleFlags(), ModeFilterBase, Options{})
	require.NoError(t, err)

	// base-files (essential) and netbase (important) drop out, but the
	// explicitly flagged login survives being essential and required
	assert.Equal(t, ManualSet{
		"editor":     OriginExplicit,
		"login":      OriginExplicit,
		"standalone": OriginImplicit,
	}, set)
}

func TestClassifyDeterministic(t *testing.T) {
	for _, mode := range []Mode{ModeDefault, ModeExplicit, ModeFilterBase} {
		first, err := Classify(sampleRecords(), sampleFlags(), mode, Options{})
		require.NoError(t, err)
		second, err := Classify(sampleRecords(), sampleFlags(), mode, Options{})
		require.NoError(t, err)
		assert.Equal(t, first, second, "mode %s", mode)
	}
}

func TestClassifyEmptyFlags(t *testing.T) {
	// No extended_states means everything was installed by hand
	set, err := Classify(sampleRecords(), status.AutoFlags{}, ModeDefault, Options{})
	require.NoError(t, err)
	assert.Len(t, set, len(sampleRecords()))
	for name, origin := range set {
		assert.Equal(t, OriginImplicit, origin, "package %s", name)
	}

	// And explicit mode then matches nothing at all
	set, err = Classify(sampleRecords(), status.AutoFlags{}, ModeExplicit, Options{})
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestClassifySubsetOfRecords(t *testing.T) {
	records := sampleRecords()
	for _, mode := range []Mode{ModeDefault, ModeExplicit, ModeFilterBase} {
		set, err := Classify(records, sampleFlags(), mode, Options{})
		require.NoError(t, err)
		for name := range set {
			assert.Contains(t, records, name,
				"mode %s included a package that is not installed", mode)
		}
	}
}

func TestClassifyBasePriorityOverride(t *testing.T) {
	opts := Options{BasePriorities: []status.Priority{status.PriorityStandard}}

	set, err := Classify(sampleRecords(), sampleFlags(), ModeFilterBase, opts)
	require.NoError(t, err)

	// standard is now base, important is not; the essential bit still
	// filters on its own
	assert.NotContains(t, set, "standalone")
	assert.NotContains(t, set, "base-files")
	assert.Contains(t, set, "netbase")
}

func TestClassifyInvalidMode(t *testing.T) {
	_, err := Classify(sampleRecords(), sampleFlags(), Mode(42), Options{})
	assert.Error(t, err)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "default", ModeDefault.String())
	assert.Equal(t, "explicitly-manual", ModeExplicit.String())
	assert.Equal(t, "filter-base", ModeFilterBase.String())
}

func TestOriginString(t *testing.T) {
	assert.Equal(t, "Explicit", OriginExplicit.String())
	assert.Equal(t, "Implicit", OriginImplicit.String())
}
