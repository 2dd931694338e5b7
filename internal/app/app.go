package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"glowband.dev/internal/anim"
	"glowband.dev/internal/band"
	"glowband.dev/internal/config"
	"glowband.dev/internal/radio"
	"glowband.dev/internal/ui"
	"glowband.dev/internal/wire"
)

// shared holds state shared between the Bubble Tea model copies.
// Because Bubble Tea uses value receivers, pointer fields ensure all
// copies see the same underlying data.
type shared struct {
	device *band.Device
	strip  *anim.Buffer
	sim    *radio.SimPeers // nil outside demo mode
	onQuit []func()
}

// AppModel is the root Bubble Tea model: it owns the simulator UI and
// drives the firmware core one tick per TickMsg with the wall clock.
type AppModel struct {
	width  int
	height int

	running bool
	self    wire.PeerID

	shared *shared
}

// New creates the root model around a transport. sim may be nil; when
// set, number keys toggle simulated peers. onQuit funcs run before the
// program exits (transport teardown).
func New(self wire.PeerID, transport radio.Transport, sim *radio.SimPeers, onQuit ...func()) AppModel {
	strip := anim.NewBuffer(config.PixelCount)
	return AppModel{
		running: true,
		self:    self,
		shared: &shared{
			device: band.NewDevice(self, transport, strip),
			strip:  strip,
			sim:    sim,
			onQuit: onQuit,
		},
	}
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if m.running {
			m.shared.device.Tick(time.Time(msg))
		}
		return m, tickCmd()
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		for _, f := range m.shared.onQuit {
			f()
		}
		return m, tea.Quit

	case "p", "P":
		m.running = !m.running

	case "l", "L":
		if m.shared.sim != nil {
			m.shared.sim.ForceLoss()
		}

	case "1", "2", "3", "4":
		if m.shared.sim != nil {
			id := wire.PeerID(msg.String()[0] - '1')
			m.shared.sim.Toggle(id)
		}
	}

	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing glowband..."
	}

	dev := m.shared.device
	menuBar := ui.RenderMenuBar(m.width, m.self, m.shared.sim != nil)
	stripPanel := ui.RenderStripPanel(m.width, m.shared.strip.Pixels(), dev.Scheduler().State())
	peerPanel := ui.RenderPeerPanel(m.width, m.self, dev.Tracker())
	statusBar := ui.RenderStatusBar(m.width, m.running, dev.Stats())

	return ui.ComposeLayout(menuBar, stripPanel, peerPanel, statusBar)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
