package devices

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Device is an auxiliary input device found at startup
type Device struct {
	Index int
	Name  string
	Path  string
}

type Enumerator interface {
	Enumerate() ([]Device, error)
}

// Linux enumerates joysticks exposed by the kernel joystick interface
type Linux struct {
	DevRoot string // usually /dev/input
	SysRoot string // usually /sys/class/input
}

func (l Linux) Enumerate() ([]Device, error) {
	paths, err := filepath.Glob(filepath.Join(l.DevRoot, "js*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list joysticks: %w", err)
	}

	type node struct {
		path string
		base string
		num  int
	}
	nodes := make([]node, 0, len(paths))
	for _, p := range paths {
		base := filepath.Base(p)
		num, err := strconv.Atoi(strings.TrimPrefix(base, "js"))
		if err != nil {
			continue
		}
		nodes = append(nodes, node{path: p, base: base, num: num})
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].num < nodes[j].num })

	devices := make([]Device, 0, len(nodes))
	for i, n := range nodes {
		name, err := l.readName(n.base)
		if err != nil {
			return nil, err
		}
		if name == "" {
			name = fmt.Sprintf("Joystick %d", n.num)
		}
		devices = append(devices, Device{Index: i, Name: name, Path: n.path})
	}
	return devices, nil
}

func (l Linux) readName(base string) (string, error) {
	if l.SysRoot == "" {
		return "", nil
	}
	data, err := os.ReadFile(filepath.Join(l.SysRoot, base, "device", "name"))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read name of %s: %w", base, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Static is a fixed device list, used where no device interface exists
type Static []Device

func (s Static) Enumerate() ([]Device, error) {
	return s, nil
}

const noDevicesLine = "No Joysticks to Initialize"

// SeedLines returns the history lines announcing devices in enumeration order
func SeedLines(devices []Device) []string {
	if len(devices) == 0 {
		return []string{noDevicesLine}
	}
	lines := make([]string, 0, len(devices))
	for _, d := range devices {
		lines = append(lines, "Enabled joystick: "+d.Name)
	}
	return lines
}
