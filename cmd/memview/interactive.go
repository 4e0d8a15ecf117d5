package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wasm2go/rt/bounds"
	"github.com/wasm2go/rt/memory"
	"github.com/wasm2go/rt/pool"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// chromeHeight is the number of lines View draws around the viewport:
// title, status, two separators, and the help or input line.
const chromeHeight = 5

// pageRenderSize bounds one rendered page: 4096 rows of at most 79
// bytes plus the header line.
const pageRenderSize = 4096*79 + 80

type interactiveModel struct {
	err      error
	mem      *memory.Heap[uint32]
	buffers  *pool.Buffers
	filename string
	notice   string
	viewport viewport.Model
	gotoAddr textinput.Model
	imageLen int
	page     uint32
	pages    uint32
	ready    bool
	state    modelState
}

type modelState int

const (
	stateBrowse modelState = iota
	stateGoto
)

func newInteractiveModel(filename string, page uint) *interactiveModel {
	if page >= bounds.MaxPageCount32 {
		page = bounds.MaxPageCount32 - 1
	}
	ti := textinput.New()
	ti.Placeholder = "hex address"
	ti.Prompt = "goto: "
	ti.Width = 20
	return &interactiveModel{
		buffers:  pool.NewBuffers(pageRenderSize),
		filename: filename,
		gotoAddr: ti,
		page:     uint32(page),
		state:    stateBrowse,
	}
}

type loadedMsg struct {
	err      error
	mem      *memory.Heap[uint32]
	imageLen int
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadImage
}

func (m *interactiveModel) loadImage() tea.Msg {
	mem, imageLen, err := readImage(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{mem: mem, imageLen: imageLen}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateBrowse {
				return m, tea.Quit
			}

		case "g":
			if m.state == stateBrowse && m.mem != nil {
				m.state = stateGoto
				m.gotoAddr.Reset()
				m.gotoAddr.Focus()
				return m, nil
			}

		case "n", "right", "l":
			if m.state == stateBrowse {
				if m.page+1 < m.pages {
					m.setPage(m.page + 1)
				}
				return m, nil
			}

		case "p", "left", "h":
			if m.state == stateBrowse {
				if m.page > 0 {
					m.setPage(m.page - 1)
				}
				return m, nil
			}

		case "enter":
			if m.state == stateGoto {
				m.jumpTo(m.gotoAddr.Value())
				m.state = stateBrowse
				m.gotoAddr.Blur()
				return m, nil
			}

		case "esc":
			if m.state == stateGoto {
				m.state = stateBrowse
				m.gotoAddr.Blur()
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		h := msg.Height - chromeHeight
		if h < 1 {
			h = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
			if m.mem != nil {
				m.viewport.SetContent(m.renderPage())
			}
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mem = msg.mem
		m.imageLen = msg.imageLen
		m.pages = msg.mem.Size()
		if m.page >= m.pages {
			m.page = m.pages - 1
		}
		if m.ready {
			m.viewport.SetContent(m.renderPage())
		}
	}

	if m.state == stateGoto {
		var cmd tea.Cmd
		m.gotoAddr, cmd = m.gotoAddr.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// setPage switches the viewer to page and scrolls back to its top.
func (m *interactiveModel) setPage(page uint32) {
	m.page = page
	m.notice = ""
	m.viewport.SetContent(m.renderPage())
	m.viewport.SetYOffset(0)
}

// jumpTo moves the viewer to the page holding addr and scrolls its row
// into view. Malformed or out-of-range input leaves the page alone and
// reports through the status line.
func (m *interactiveModel) jumpTo(input string) {
	addr, err := parseAddr(input)
	if err != nil {
		m.notice = fmt.Sprintf("bad address %q", input)
		return
	}
	if addr >= uint64(m.pages)*bounds.PageSize {
		m.notice = fmt.Sprintf("address %#x is past the end of memory", addr)
		return
	}
	m.setPage(uint32(addr / bounds.PageSize))
	m.viewport.SetYOffset(int(addr%bounds.PageSize)/16 + 1)
}

func (m *interactiveModel) renderPage() string {
	scratch := m.buffers.Get(pageRenderSize)
	out := bytes.NewBuffer(scratch[:0])
	err := memory.Dump(out, m.mem, m.page*bounds.PageSize, bounds.PageSize)
	text := out.String()
	m.buffers.Put(out.Bytes())
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("render page %d: %v", m.page, err))
	}
	return text
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.mem == nil || !m.ready {
		return "Loading image..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Memory Viewer"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(errorStyle.Render(m.notice))
	} else {
		b.WriteString(statusStyle.Render(m.statusLine()))
	}
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")

	switch m.state {
	case stateGoto:
		b.WriteString(m.gotoAddr.View())
		b.WriteString(" ")
		b.WriteString(helpStyle.Render("enter go • esc cancel"))
	default:
		b.WriteString(helpStyle.Render("↑/↓ scroll • n/p page • g goto address • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) statusLine() string {
	start := uint64(m.page) * bounds.PageSize
	return fmt.Sprintf("page %d/%d  window [%#x, %#x)  image %d bytes  %3.0f%%",
		m.page+1, m.pages, start, start+bounds.PageSize, m.imageLen,
		m.viewport.ScrollPercent()*100)
}

// parseAddr reads a hexadecimal address, with or without a 0x prefix,
// matching how the dump prints addresses.
func parseAddr(s string) (uint64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "0x")
	return strconv.ParseUint(s, 16, 64)
}

func runInteractive(imageFile string, page uint) error {
	p := tea.NewProgram(newInteractiveModel(imageFile, page), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
