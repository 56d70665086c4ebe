// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/usbtree/cmd/usbtree/cli"
	"github.com/bureau-foundation/usbtree/lib/render"
	"github.com/bureau-foundation/usbtree/lib/topology"
	"github.com/bureau-foundation/usbtree/lib/usb"
)

type watchParams struct {
	sourceParams
	styleParams
	Interval time.Duration `flag:"interval" desc:"time between enumeration passes (default from config)"`
}

func watchCommand() *cli.Command {
	var params watchParams
	return &cli.Command{
		Name:    "watch",
		Summary: "Live topology view, re-rendering as devices come and go",
		Description: `Render the topology full-screen and re-enumerate on an interval, so
plugging or unplugging a device updates the tree. Unchanged snapshots
are detected by fingerprint and skip the rebuild.

Keys: q quits, r refreshes immediately, arrows and page keys scroll.`,
		Usage: "usbtree watch [flags]",
		Examples: []cli.Example{
			{
				Description: "Watch with the configured interval",
				Command:     "usbtree watch",
			},
			{
				Description: "Poll faster while reseating a flaky cable",
				Command:     "usbtree watch --interval 500ms",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return runWatch(ctx, &params, args, logger)
		},
	}
}

func runWatch(ctx context.Context, params *watchParams, args []string, logger *slog.Logger) error {
	if len(args) > 0 {
		return cli.Validation("unexpected argument: %s", args[0])
	}

	cfg, err := params.activeConfig()
	if err != nil {
		return err
	}

	interval := params.Interval
	if interval == 0 {
		interval, err = cfg.Watch.IntervalDuration()
		if err != nil {
			return cli.Validation("%w", err)
		}
	}
	if interval <= 0 {
		return cli.Validation("interval must be positive, got %s", interval)
	}

	style, err := params.treeStyle(cfg)
	if err != nil {
		return err
	}

	logger.Info("watching usb topology", "sysfs", params.Sysfs, "interval", interval)

	model := newWatchModel(params.lister(), style, interval)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			// Killed by SIGINT or SIGTERM; a clean exit, not a failure.
			return nil
		}
		return cli.Internal("%w", err)
	}
	return nil
}

// watchTickMsg fires when the next enumeration pass is due.
type watchTickMsg time.Time

// watchSnapshotMsg carries the result of one enumeration pass.
type watchSnapshotMsg struct {
	devices []usb.DeviceInfo
	err     error
}

var (
	watchTitleStyle = lipgloss.NewStyle().Bold(true)
	watchMetaStyle  = lipgloss.NewStyle().Faint(true)
	watchErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// watchChromeLines is the screen height spent on the header above the
// scrolling tree body.
const watchChromeLines = 3

// watchModel is the bubbletea model for the live view. The rendered
// tree scrolls inside a viewport under a two-line header.
type watchModel struct {
	lister   usb.Lister
	style    render.Style
	interval time.Duration

	viewport viewport.Model
	ready    bool

	deviceCount int
	fingerprint [32]byte
	lastChange  time.Time
	err         error
}

func newWatchModel(lister usb.Lister, style render.Style, interval time.Duration) watchModel {
	return watchModel{lister: lister, style: style, interval: interval}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.snapshot, m.tick())
}

// tick schedules the next enumeration pass.
func (m watchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

// snapshot enumerates devices off the update loop.
func (m watchModel) snapshot() tea.Msg {
	devices, err := m.lister.ListDevices()
	return watchSnapshotMsg{devices: devices, err: err}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.snapshot
		case "up", "k":
			m.viewport.LineUp(1)
		case "down", "j":
			m.viewport.LineDown(1)
		case "pgup":
			m.viewport.ViewUp()
		case "pgdown":
			m.viewport.ViewDown()
		case "home", "g":
			m.viewport.GotoTop()
		case "end", "G":
			m.viewport.GotoBottom()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-watchChromeLines, 1)
		m.ready = true
		return m, nil

	case watchTickMsg:
		return m, tea.Batch(m.snapshot, m.tick())

	case watchSnapshotMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		fingerprint := usb.Fingerprint(msg.devices)
		if fingerprint == m.fingerprint {
			// Same topology; keep the viewport position untouched.
			return m, nil
		}
		m.fingerprint = fingerprint
		m.deviceCount = len(msg.devices)
		m.lastChange = time.Now()

		index := topology.New[usb.DeviceInfo]()
		for _, device := range msg.devices {
			index.InsertPath(device.Path(), device)
		}
		m.viewport.SetContent(render.NewTreeRenderer(index, m.style).String())
		return m, nil
	}

	return m, nil
}

func (m watchModel) View() string {
	if !m.ready {
		return "enumerating devices..."
	}

	var b strings.Builder
	b.WriteString(watchTitleStyle.Render("usbtree watch"))
	b.WriteString(watchMetaStyle.Render(fmt.Sprintf("  every %s  (q quit, r refresh)", m.interval)))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(watchErrorStyle.Render(fmt.Sprintf("enumeration failed: %v", m.err)))
	} else {
		b.WriteString(watchMetaStyle.Render(fmt.Sprintf("%d devices, last change %s",
			m.deviceCount, m.lastChange.Format("15:04:05"))))
	}
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	return b.String()
}
