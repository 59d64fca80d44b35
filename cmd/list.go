/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	serial "github.com/allbin/go-serial-isp"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available serial ports",
	Long: `List all available serial ports on the system.

The port marked with * is the one boot, normal and upload pick when no
--upload-port or UPLOAD_PORT is given.

This command scans for communication-capable serial devices including:
- USB serial adapters (ttyUSB*)
- USB CDC/ACM devices (ttyACM*)
- Standard serial ports (ttyS*)
- ARM/Raspberry Pi ports (ttyAMA*)
- And other platform-specific serial devices

Virtual terminals and pseudo-terminals are excluded from the listing.`,
	Run: func(cmd *cobra.Command, args []string) {
		ports, err := serial.ListPorts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing ports: %v\n", err)
			os.Exit(1)
		}

		if len(ports) == 0 {
			fmt.Println("No serial ports found")
			return
		}

		filterType, _ := cmd.Flags().GetString("filter")
		tableFormat, _ := cmd.Flags().GetBool("table")

		// Auto-detection always takes the first port of the unfiltered list
		autoPort := ports[0]

		filteredPorts := filterPorts(ports, filterType)
		if len(filteredPorts) == 0 {
			fmt.Printf("No serial ports found matching filter: %s\n", filterType)
			return
		}

		if tableFormat {
			renderTable(filteredPorts, autoPort)
		} else {
			renderSimple(filteredPorts, autoPort)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("filter", "f", "", "Filter by port type: usb, standard, arm, all")
	listCmd.Flags().BoolP("table", "t", false, "Display output in a styled table format")
}

// portKind classifies a device name for filtering
func portKind(name string) string {
	name = strings.ToLower(name)
	switch {
	case strings.HasPrefix(name, "ttyusb"), strings.HasPrefix(name, "ttyacm"):
		return "usb"
	case strings.HasPrefix(name, "ttyama"):
		return "arm"
	case strings.HasPrefix(name, "ttys") && !strings.HasPrefix(name, "ttysac"):
		return "standard"
	default:
		return "other"
	}
}

// filterPorts filters the port list based on the specified filter type
func filterPorts(ports []string, filterType string) []string {
	filterType = strings.ToLower(filterType)
	if filterType == "" || filterType == "all" {
		return ports
	}

	var filtered []string
	for _, port := range ports {
		name := port[strings.LastIndex(port, "/")+1:]
		if portKind(name) == filterType {
			filtered = append(filtered, port)
		}
	}
	return filtered
}

func autoMarker(port, autoPort string) string {
	if port == autoPort {
		return "*"
	}
	return " "
}

// renderTable renders the port list with USB metadata
func renderTable(ports []string, autoPort string) {
	fmt.Printf("Found %d serial port(s):\n\n", len(ports))

	portWidth := 15
	descWidth := 22
	idWidth := 10
	serialWidth := 16

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("240")).
		PaddingBottom(1)

	cellStyle := lipgloss.NewStyle().
		PaddingRight(2)

	header := fmt.Sprintf("  %-*s %-*s %-*s %-*s %s",
		portWidth, "Port",
		descWidth, "Description",
		idWidth, "VID:PID",
		serialWidth, "Serial",
		"Product")
	fmt.Println(headerStyle.Render(header))

	for _, port := range ports {
		marker := autoMarker(port, autoPort)

		info, err := serial.GetPortInfo(port)
		if err != nil {
			row := fmt.Sprintf("%s %-*s %-*s", marker, portWidth, port, descWidth, fmt.Sprintf("Error: %v", err))
			fmt.Println(cellStyle.Render(row))
			continue
		}

		ids := ""
		if info.IsUSB() {
			ids = info.VendorID + ":" + info.ProductID
		}
		row := fmt.Sprintf("%s %-*s %-*s %-*s %-*s %s",
			marker,
			portWidth, info.Name,
			descWidth, info.Description,
			idWidth, ids,
			serialWidth, info.SerialNumber,
			info.Product)
		fmt.Println(cellStyle.Render(row))
	}

	fmt.Println(dimStyle.Render("\n* used when no port is configured"))
}

// renderSimple renders the port list in simple text format
func renderSimple(ports []string, autoPort string) {
	for _, port := range ports {
		if port == autoPort {
			fmt.Printf("%s %s\n", port, dimStyle.Render("(auto)"))
			continue
		}
		fmt.Println(port)
	}
}
