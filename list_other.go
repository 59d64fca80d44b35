//go:build !linux

package serial

import (
	"path/filepath"
	"sort"

	bugst "go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// ListPorts returns a list of available serial ports on the system
func ListPorts() ([]string, error) {
	ports, err := bugst.GetPortsList()
	if err != nil {
		return nil, err
	}
	sort.Strings(ports)
	return ports, nil
}

// GetPortInfo returns detailed information about a specific port
func GetPortInfo(portPath string) (*PortInfo, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}

	for _, d := range details {
		if d.Name != portPath {
			continue
		}

		name := filepath.Base(d.Name)
		info := &PortInfo{
			Name:        name,
			Path:        d.Name,
			Description: getPortDescription(name),
		}
		if d.IsUSB {
			info.VendorID = d.VID
			info.ProductID = d.PID
			info.SerialNumber = d.SerialNumber
			info.Product = d.Product
			info.Description = "USB Serial Port"
		}
		return info, nil
	}

	return nil, ErrDeviceNotFound
}
