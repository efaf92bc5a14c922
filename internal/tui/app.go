package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/dexcam/internal/capture"
	"github.com/mmcdole/dexcam/internal/catalog"
	"github.com/mmcdole/dexcam/internal/domain"
	"github.com/mmcdole/dexcam/internal/tui/styles"
)

// view is the active route
type view int

const (
	viewCamera view = iota
	viewGallery
)

// Model is the Bubble Tea model for the capture screen and its gallery.
type Model struct {
	Catalog *catalog.Service
	Screen  *capture.Screen
	Bridge  *ChannelBridge

	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	view        view
	mounted     bool
	ready       bool
	loadingList bool
	entries     []domain.CatalogEntry
	cursor      int
	capturing   bool
	captures    []domain.CaptureRecord

	notice    string
	noticeErr bool

	width int
}

// NewModel creates the root model. bridge must be the Notifier and Navigator
// the screen was built with.
func NewModel(svc *catalog.Service, screen *capture.Screen, bridge *ChannelBridge) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	return Model{
		Catalog:     svc,
		Screen:      screen,
		Bridge:      bridge,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		spinner:     sp,
		loadingList: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		MountCmd(m.Screen),
		LoadListCmd(m.Catalog),
		m.Bridge.Listen(),
		m.spinner.Tick,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case MountedMsg:
		m.mounted = true
		m.ready = msg.Ready
		return m, nil

	case ListLoadedMsg:
		m.loadingList = false
		m.entries = msg.Entries
		m.cursor = 0
		return m, m.selectCursor()

	case OverlayLoadedMsg:
		// Screen state is the source of truth; nothing to copy
		return m, nil

	case CapturedMsg:
		m.capturing = false
		return m, nil

	case NoticeMsg:
		m.notice = msg.Title + ": " + msg.Message
		m.noticeErr = msg.Title == "Error"
		return m, m.Bridge.Listen()

	case NavigateMsg:
		if msg.Route == capture.RouteGallery {
			m.view = viewGallery
			captures, err := m.Screen.Captures()
			if err != nil {
				m.notice = "Error: " + err.Error()
				m.noticeErr = true
			}
			m.captures = captures
		}
		return m, m.Bridge.Listen()
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case m.view == viewGallery && key.Matches(msg, m.keys.Back):
		m.view = viewCamera
		return m, nil

	case m.view == viewGallery:
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		if len(m.entries) > 0 {
			m.cursor = (m.cursor - 1 + len(m.entries)) % len(m.entries)
		}
		return m, m.selectCursor()

	case key.Matches(msg, m.keys.Next):
		if len(m.entries) > 0 {
			m.cursor = (m.cursor + 1) % len(m.entries)
		}
		return m, m.selectCursor()

	case key.Matches(msg, m.keys.Capture):
		if !m.ready || m.capturing {
			return m, nil
		}
		m.capturing = true
		m.notice = ""
		return m, CaptureCmd(m.Screen)

	case key.Matches(msg, m.keys.Gallery):
		if err := m.Screen.OpenGallery(); err != nil {
			m.notice = err.Error()
			m.noticeErr = true
		}
		return m, nil
	}
	return m, nil
}

// selectCursor moves the screen selection to the entry under the cursor
func (m Model) selectCursor() tea.Cmd {
	if len(m.entries) == 0 {
		return nil
	}
	e := m.entries[m.cursor]
	if m.Screen.Select(e.ID, e.Name) {
		return RefreshOverlayCmd(m.Screen, e.ID)
	}
	return nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("dexcam"))
	b.WriteString("\n\n")

	if m.view == viewGallery {
		b.WriteString(m.renderGallery())
	} else {
		b.WriteString(m.renderCamera())
	}

	if m.notice != "" {
		style := styles.SuccessStyle
		if m.noticeErr {
			style = styles.ErrorStyle
		}
		b.WriteString("\n")
		b.WriteString(style.Render(m.notice))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m Model) renderCamera() string {
	switch {
	case !m.mounted:
		return m.spinner.View() + " Requesting camera permission..."
	case !m.ready:
		return styles.ErrorStyle.Render("No access to camera. Enable camera permission to capture.")
	}

	var body strings.Builder
	body.WriteString(styles.DimStyle.Render("[ live camera feed ]"))
	body.WriteString("\n\n")
	body.WriteString(m.renderOverlay())

	if m.capturing {
		body.WriteString("\n\n")
		body.WriteString(m.spinner.View() + " Capturing...")
	}

	return styles.ViewfinderStyle.Render(body.String())
}

func (m Model) renderOverlay() string {
	if m.loadingList {
		return m.spinner.View() + " Loading catalog..."
	}
	if len(m.entries) == 0 {
		return styles.DimStyle.Render("No Pokémon available")
	}

	sel := m.Screen.Selection()
	header := fmt.Sprintf("#%03d %s  (%d/%d)", sel.ID, sel.Name, m.cursor+1, len(m.entries))

	lookup, pending := m.Screen.Overlay()
	var sprite string
	switch {
	case pending:
		sprite = m.spinner.View() + " loading sprite"
	case lookup == nil || lookup.Sprite == nil:
		sprite = styles.DimStyle.Render("?")
	default:
		sprite = styles.AccentStyle.Render(styles.Truncate(*lookup.Sprite, 60))
	}

	var badges []string
	if lookup != nil {
		for _, t := range lookup.Types {
			badges = append(badges, styles.TypeBadgeStyle.Render(t))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render(header),
		sprite,
		strings.Join(badges, " "),
	)
}

func (m Model) renderGallery() string {
	if len(m.captures) == 0 {
		return styles.DimStyle.Render("No captures yet.")
	}
	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%d captures", len(m.captures))))
	b.WriteString("\n")
	for _, c := range m.captures {
		when := time.UnixMilli(c.Timestamp).Format("2006-01-02 15:04")
		name := c.Name
		if name == "" {
			name = "(none)"
		}
		row := fmt.Sprintf("%s  #%03d %-12s %s", when, c.ID, name, styles.Truncate(c.PhotoURI, 50))
		b.WriteString(styles.GalleryRowStyle.Render(row))
		b.WriteString("\n")
	}
	return b.String()
}
