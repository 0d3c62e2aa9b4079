package ui

import (
	"fmt"
	"strings"

	"github.com/telden/plugscan/internal/discovery"
)

// RenderDevices returns a styled table of scan results, candidates first
// (the caller is expected to pass an already-ranked list).
func RenderDevices(devices []*discovery.Device) string {
	if len(devices) == 0 {
		return SummaryStyle.Render("No devices found.")
	}

	width := GetTerminalWidth()

	var b strings.Builder
	b.WriteString(HeaderRowStyle.Render(truncate(fmt.Sprintf("  %-1s %-15s %-17s %-12s %-18s %s",
		" ", "IP", "MAC", "VENDOR", "PORTS", "HOSTNAME"), width)))
	b.WriteString("\n")

	candidates := 0
	for _, d := range devices {
		marker := DeviceMarker
		style := DeviceStyle
		if d.LikelyCandidate {
			marker = CandidateMarker
			style = CandidateStyle
			candidates++
		}

		mac := d.MAC
		if mac == "" {
			mac = "-"
		}
		vendor := d.Vendor
		if vendor == "" {
			vendor = "-"
		}

		line := fmt.Sprintf("  %-1s %-15s %-17s %-12s %-18s %s",
			marker, d.IP, mac, vendor, formatPorts(d.OpenPorts), d.Hostname)
		b.WriteString(style.Render(truncate(line, width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(SummaryStyle.Render(fmt.Sprintf("%d device(s), %d likely candidate(s)",
		len(devices), candidates)))
	return b.String()
}

// truncate trims a row to the terminal width so long hostnames cannot
// wrap and break the table alignment.
func truncate(line string, width int) string {
	runes := []rune(line)
	if width <= 0 || len(runes) <= width {
		return line
	}
	return string(runes[:width-1]) + "…"
}

func formatPorts(ports []int) string {
	parts := make([]string, len(ports))
	for i, p := range ports {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return strings.Join(parts, ",")
}
