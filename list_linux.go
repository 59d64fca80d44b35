package serial

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Locations scanned for devices and their sysfs metadata
var (
	devDir      = "/dev"
	sysClassTTY = "/sys/class/tty"
)

// Regular expressions for different types of serial devices
var serialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^ttyUSB\d+$`), // USB serial adapters
	regexp.MustCompile(`^ttyACM\d+$`), // USB CDC/ACM devices
	regexp.MustCompile(`^ttyS\d+$`),   // Standard serial ports
	regexp.MustCompile(`^ttyAMA\d+$`), // ARM/Raspberry Pi serial
	regexp.MustCompile(`^ttymxc\d+$`), // i.MX serial ports
	regexp.MustCompile(`^ttyO\d+$`),   // OMAP serial ports
	regexp.MustCompile(`^ttySAC\d+$`), // Samsung serial ports
	regexp.MustCompile(`^ttyTHS\d+$`), // Tegra serial ports
}

// Exclude patterns for virtual terminals and other non-serial devices
var excludePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^tty\d+$`),  // Virtual terminals (tty1, tty2, etc.)
	regexp.MustCompile(`^console$`), // Console
	regexp.MustCompile(`^ptmx$`),    // Pseudo-terminal multiplexer
	regexp.MustCompile(`^pty.*$`),   // Pseudo-terminals
	regexp.MustCompile(`^pts/.*$`),  // Pseudo-terminal slaves
}

func matchesAny(patterns []*regexp.Regexp, name string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

// isSerialName reports whether a /dev entry name looks like a serial port
func isSerialName(name string) bool {
	return !matchesAny(excludePatterns, name) && matchesAny(serialPatterns, name)
}

// ListPorts returns a list of available serial ports on the system
// Filters for communication-capable devices and excludes virtual terminals
func ListPorts() ([]string, error) {
	entries, err := os.ReadDir(devDir)
	if err != nil {
		return nil, err
	}

	var ports []string
	for _, entry := range entries {
		if !isSerialName(entry.Name()) {
			continue
		}

		fullPath := filepath.Join(devDir, entry.Name())
		if isCharacterDevice(fullPath) && !isPlatformDevice(entry.Name()) {
			ports = append(ports, fullPath)
		}
	}

	// Sort the ports for consistent ordering
	sort.Strings(ports)

	return ports, nil
}

// isPlatformDevice reports whether the tty's sysfs device sits on the platform
// bus. The 8250 driver registers ttyS placeholders there whether or not a UART
// is fitted; real ports hang off pnp, usb, usb-serial or amba.
// A tty without a sysfs device link is not treated as a platform device.
func isPlatformDevice(name string) bool {
	subsystem, err := filepath.EvalSymlinks(filepath.Join(sysClassTTY, name, "device", "subsystem"))
	if err != nil {
		return false
	}
	return filepath.Base(subsystem) == "platform"
}

// isCharacterDevice checks if the given path is a character device
func isCharacterDevice(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// GetPortInfo returns detailed information about a specific port
func GetPortInfo(portPath string) (*PortInfo, error) {
	if !isCharacterDevice(portPath) {
		return nil, ErrDeviceNotFound
	}

	name := filepath.Base(portPath)
	info := &PortInfo{
		Name:        name,
		Path:        portPath,
		Description: getPortDescription(name),
	}

	if strings.HasPrefix(name, "ttyUSB") || strings.HasPrefix(name, "ttyACM") {
		enrichUSBInfo(info)
	}

	return info, nil
}

// enrichUSBInfo fills USB metadata by walking up from
// /sys/class/tty/<name>/device to the interface and device directories.
// ttyUSB links point below the interface, ttyACM links point at it.
func enrichUSBInfo(info *PortInfo) {
	dir, err := filepath.EvalSymlinks(filepath.Join(sysClassTTY, info.Name, "device"))
	if err != nil {
		return
	}

	for i := 0; i < 6 && dir != "/" && dir != "."; i++ {
		if info.InterfaceNumber == "" {
			info.InterfaceNumber = readSysfsFile(filepath.Join(dir, "bInterfaceNumber"))
		}

		if vid := readSysfsFile(filepath.Join(dir, "idVendor")); vid != "" {
			info.VendorID = vid
			info.ProductID = readSysfsFile(filepath.Join(dir, "idProduct"))
			info.SerialNumber = readSysfsFile(filepath.Join(dir, "serial"))
			info.BusNumber = readSysfsFile(filepath.Join(dir, "busnum"))
			info.DeviceNumber = readSysfsFile(filepath.Join(dir, "devnum"))
			info.Manufacturer = readSysfsFile(filepath.Join(dir, "manufacturer"))
			info.Product = readSysfsFile(filepath.Join(dir, "product"))
			return
		}

		dir = filepath.Dir(dir)
	}
}

// readSysfsFile returns the trimmed content of a sysfs attribute, or "" if unreadable
func readSysfsFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
