package devices_test

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/Rorical/eventlist/internal/devices"
)

func TestSeedLines(t *testing.T) {
	t.Parallel()
	assert.Check(t, is.DeepEqual([]string{"No Joysticks to Initialize"}, devices.SeedLines(nil)))

	lines := devices.SeedLines([]devices.Device{
		{Index: 0, Name: "Pad One"},
		{Index: 1, Name: "Stick Two"},
	})
	assert.Check(t, is.DeepEqual([]string{
		"Enabled joystick: Pad One",
		"Enabled joystick: Stick Two",
	}, lines))
}

func TestLinux_Enumerate(t *testing.T) {
	t.Parallel()
	dev := t.TempDir()
	sys := t.TempDir()
	for _, name := range []string{"js10", "js2", "event0", "jsx"} {
		assert.NilError(t, os.WriteFile(filepath.Join(dev, name), nil, 0o600))
	}
	assert.NilError(t, os.MkdirAll(filepath.Join(sys, "js2", "device"), 0o755))
	assert.NilError(t, os.WriteFile(filepath.Join(sys, "js2", "device", "name"), []byte("Gamepad X\n"), 0o600))

	found, err := devices.Linux{DevRoot: dev, SysRoot: sys}.Enumerate()
	assert.NilError(t, err)
	assert.Check(t, is.DeepEqual([]devices.Device{
		{Index: 0, Name: "Gamepad X", Path: filepath.Join(dev, "js2")},
		{Index: 1, Name: "Joystick 10", Path: filepath.Join(dev, "js10")},
	}, found))
}

func TestLinux_MissingRoot(t *testing.T) {
	t.Parallel()
	found, err := devices.Linux{DevRoot: filepath.Join(t.TempDir(), "absent")}.Enumerate()
	assert.NilError(t, err)
	assert.Check(t, is.Len(found, 0))
}

func TestStatic(t *testing.T) {
	t.Parallel()
	found, err := devices.Static{{Name: "Fake"}}.Enumerate()
	assert.NilError(t, err)
	assert.Check(t, is.Len(found, 1))
}
