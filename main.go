package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"glowband.dev/internal/app"
	"glowband.dev/internal/config"
	"glowband.dev/internal/radio"
	"glowband.dev/internal/wire"
)

var (
	flagDemo bool
	flagID   int
	flagPort string
	flagBaud int
	flagBLE  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "glowband",
		Short: "Glowband - proximity-aware LED band simulator",
		Long: `Glowband runs a wearable band's firmware core on the host: it beacons
its identity, listens for peer bands, tracks who is in range by signal
strength, and plays LED greeting animations, rendering the strip in the
terminal.

Pick a transport: --demo (simulated peers, default), --port for a
UART-attached radio module, or --ble to bridge over BLE advertisements.`,
		RunE: run,
	}

	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run with simulated peers (no hardware required)")
	rootCmd.Flags().IntVar(&flagID, "id", 0, fmt.Sprintf("This band's identity (0-%d)", wire.MaxPeer-1))
	rootCmd.Flags().StringVar(&flagPort, "port", "", "Serial port of the radio module (e.g. /dev/ttyUSB0)")
	rootCmd.Flags().IntVar(&flagBaud, "baud", config.DefaultBaud, "Serial baud rate")
	rootCmd.Flags().BoolVar(&flagBLE, "ble", false, "Bridge the protocol over BLE advertisements")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	self := wire.PeerID(flagID)
	if !self.Valid() {
		return fmt.Errorf("--id must be in [0, %d]", wire.MaxPeer-1)
	}

	var model app.AppModel
	switch {
	case flagPort != "":
		s, err := radio.OpenSerial(flagPort, flagBaud)
		if err != nil {
			return err
		}
		model = app.New(self, s, nil, func() { _ = s.Close() })

	case flagBLE:
		bridge := radio.NewBridge(self)
		if err := bridge.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
			fmt.Fprintln(os.Stderr, "BLE bridging requires elevated permissions.")
			fmt.Fprintln(os.Stderr, "Try one of:")
			fmt.Fprintln(os.Stderr, "  sudo ./glowband --ble")
			fmt.Fprintln(os.Stderr, "  sudo setcap cap_net_admin+ep ./glowband")
			fmt.Fprintln(os.Stderr, "  ./glowband --demo    (simulated peers, no hardware)")
			return err
		}
		model = app.New(self, bridge, nil, bridge.Stop)

	default:
		near, far := radio.NewLoopback()
		sim := radio.NewSimPeers(self, far)
		sim.Start()
		model = app.New(self, near, sim, sim.Stop)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	_, err := p.Run()
	return err
}
