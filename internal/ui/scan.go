package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/telden/plugscan/internal/discovery"
)

// ScanFunc runs a scan, reporting batch progress through the callback.
// The UI wires the callback to its own message loop.
type ScanFunc func(onProgress func(scanned, total int)) ([]*discovery.Device, error)

// Messages for async scan updates
type progressMsg struct {
	scanned int
	total   int
}

type doneMsg struct {
	devices []*discovery.Device
	err     error
}

// scanModel renders a live progress bar while the sweep runs.
type scanModel struct {
	label   string
	spin    spinner.Model
	bar     progress.Model
	scanned int
	total   int
	devices []*discovery.Device
	err     error
	aborted bool
	done    bool
}

func newScanModel(label string) scanModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
	)
	return scanModel{label: label, spin: sp, bar: bar}
}

// Init implements tea.Model
func (m scanModel) Init() tea.Cmd {
	return m.spin.Tick
}

// Update implements tea.Model
func (m scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			// The in-flight batch cannot be interrupted; note the abort
			// and let the program wind down when the scan returns.
			m.aborted = true
			return m, tea.Quit
		}
		return m, nil

	case progressMsg:
		m.scanned = msg.scanned
		m.total = msg.total
		return m, nil

	case doneMsg:
		m.devices = msg.devices
		m.err = msg.err
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model
func (m scanModel) View() string {
	if m.done {
		return ""
	}

	var percent float64
	if m.total > 0 {
		percent = float64(m.scanned) / float64(m.total)
	}
	counter := CounterStyle.Render(fmt.Sprintf("[%d/%d]", m.scanned, m.total))

	return fmt.Sprintf("%s\n\n  %s %s  %s\n",
		ScanLabelStyle.Render(m.label),
		m.spin.View(),
		m.bar.ViewAs(percent),
		counter,
	)
}

// RunScan executes scan under a live progress display and returns its
// results. Callers should only use this when stdout is a terminal.
func RunScan(label string, scan ScanFunc) ([]*discovery.Device, error) {
	p := tea.NewProgram(newScanModel(label), tea.WithOutput(os.Stdout))

	go func() {
		devices, err := scan(func(scanned, total int) {
			p.Send(progressMsg{scanned: scanned, total: total})
		})
		p.Send(doneMsg{devices: devices, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("progress display failed: %w", err)
	}

	m, ok := final.(scanModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type from progress display")
	}
	if m.aborted {
		return nil, fmt.Errorf("scan aborted")
	}
	return m.devices, m.err
}
