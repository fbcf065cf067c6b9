// aptworld_test.go
package aptworld

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkgtools/apt-world/pkg/world"
)

const testStatus = `Package: editor
Status: install ok installed
Priority: optional
Section: editors
Version: 2.1-3
Architecture: amd64

Package: lib-dep
Status: install ok installed
Priority: optional
Section: libs
Version: 1.2.3
Architecture: amd64

Package: base-files
Essential: yes
Status: install ok installed
Priority: required
Section: admin
Version: 12.4
Architecture: amd64
`

const testStates = `Package: editor
Architecture: amd64
Auto-Installed: 0

Package: lib-dep
Architecture: amd64
Auto-Installed: 1
`

func writeTestDBs(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	statusPath := filepath.Join(dir, "status")
	statesPath := filepath.Join(dir, "extended_states")
	require.NoError(t, os.WriteFile(statusPath, []byte(testStatus), 0o644))
	require.NoError(t, os.WriteFile(statesPath, []byte(testStates), 0o644))
	return statusPath, statesPath
}

func TestCollect(t *testing.T) {
	statusPath, statesPath := writeTestDBs(t)

	result, err := Collect(Options{StatusPath: statusPath, StatesPath: statesPath})
	require.NoError(t, err)

	assert.Len(t, result.Records, 3)
	assert.Equal(t, world.ManualSet{
		"editor":     world.OriginExplicit,
		"base-files": world.OriginImplicit,
	}, result.Set)

	rows := result.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "base-files", rows[0].Name)
	assert.Equal(t, "editor", rows[1].Name)
	assert.Equal(t, "Implicit", rows[0].Manual)
	assert.Equal(t, "Explicit", rows[1].Manual)
}

func TestCollectExplicitMode(t *testing.T) {
	statusPath, statesPath := writeTestDBs(t)

	result, err := Collect(Options{
		StatusPath: statusPath,
		StatesPath: statesPath,
		Mode:       world.ModeExplicit,
	})
	require.NoError(t, err)

	assert.Equal(t, world.ManualSet{"editor": world.OriginExplicit}, result.Set)
}

func TestCollectFilterBase(t *testing.T) {
	statusPath, statesPath := writeTestDBs(t)

	result, err := Collect(Options{
		StatusPath: statusPath,
		StatesPath: statesPath,
		Mode:       world.ModeFilterBase,
	})
	require.NoError(t, err)

	// base-files is essential and required, editor was asked for
	assert.Equal(t, world.ManualSet{"editor": world.OriginExplicit}, result.Set)
}

func TestCollectMissingStatus(t *testing.T) {
	dir := t.TempDir()

	_, err := Collect(Options{
		StatusPath: filepath.Join(dir, "absent"),
		StatesPath: filepath.Join(dir, "extended_states"),
	})
	require.Error(t, err)

	var aptErr *Error
	require.ErrorAs(t, err, &aptErr)
	assert.Equal(t, "reading status database", aptErr.Op)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCollectMissingStates(t *testing.T) {
	statusPath, _ := writeTestDBs(t)
	absent := filepath.Join(t.TempDir(), "absent")

	// Without extended states everything counts as manual by default
	result, err := Collect(Options{StatusPath: statusPath, StatesPath: absent})
	require.NoError(t, err)
	assert.Len(t, result.Set, 3)

	// and nothing does in explicit mode
	result, err = Collect(Options{
		StatusPath: statusPath,
		StatesPath: absent,
		Mode:       world.ModeExplicit,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Set)
}

func TestErrorFormat(t *testing.T) {
	err := &Error{Op: "reading status database", Path: "/nowhere", Err: os.ErrNotExist}
	assert.Equal(t, "reading status database /nowhere: file does not exist", err.Error())
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = &Error{Op: "classifying", Err: os.ErrClosed}
	assert.Equal(t, "classifying: file already closed", err.Error())
}
