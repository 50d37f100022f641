// Package tui is the interactive front end: a bubbles list over the sorted
// view, an inline add form and a summary footer.
package tui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/ui"
)

// Model is the bubbletea model. Copies share the same store; the store is
// the only state that matters between frames.
type Model struct {
	store *packing.Store
	proj  *packing.Projector
	log   *slog.Logger

	list list.Model
	keys keyMap
	help help.Model

	// Inline add
	adding bool            // true when the add form is open
	ti     textinput.Model // description
	qty    int             // quantity picked with up/down
	addErr string          // last add validation error

	width, height int
}

// New builds a model over store. A nil logger discards.
func New(store *packing.Store, proj *packing.Projector, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	keys := defaultKeyMap()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.KeyMap.Quit = keys.Quit
	l.AdditionalShortHelpKeys = keys.listHelp
	l.AdditionalFullHelpKeys = keys.listHelp

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Item..."
	ti.CharLimit = 200

	w, h := widthHeight()
	m := Model{
		store:  store,
		proj:   proj,
		log:    logger,
		list:   l,
		keys:   keys,
		help:   help.New(),
		ti:     ti,
		qty:    model.MinQuantity,
		width:  w,
		height: h,
	}
	m.resize()
	m.refresh(0)
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(store *packing.Store, proj *packing.Projector, logger *slog.Logger) error {
	p := tea.NewProgram(New(store, proj, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.adding {
		return m.updateForm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(km, m.keys.Add):
		m.adding = true
		m.addErr = ""
		m.qty = model.MinQuantity
		m.ti.SetValue("")
		m.resize()
		cmd := m.ti.Focus()
		return m, cmd

	case key.Matches(km, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			m.store.Toggle(it.ID)
			cmd := m.refresh(it.ID)
			return m, cmd
		}
		return m, nil

	case key.Matches(km, m.keys.Delete):
		if it, ok := m.selected(); ok {
			idx := m.list.Index()
			m.store.Delete(it.ID)
			cmd := m.refresh(0)
			if n := len(m.list.VisibleItems()); n > 0 {
				m.list.Select(min(idx, n-1))
			}
			return m, cmd
		}
		return m, nil

	case key.Matches(km, m.keys.Clear):
		m.store.Clear()
		cmd := m.refresh(0)
		return m, cmd

	case key.Matches(km, m.keys.Sort):
		m.store.SetSortBy(m.store.SortBy().Next())
		cmd := m.refresh(m.selectedID())
		return m, cmd

	case key.Matches(km, m.keys.Order):
		m.store.SetSortMode(m.store.SortMode().Flip())
		cmd := m.refresh(m.selectedID())
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case km.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(km, m.keys.Submit):
			desc := strings.TrimSpace(m.ti.Value())
			if desc == "" {
				m.addErr = "Description cannot be empty"
				return m, nil
			}
			it, _ := m.store.Add(desc, m.qty)
			m.log.Debug("added from form", "id", it.ID)
			m.closeForm()
			cmd := m.refresh(it.ID)
			return m, cmd
		case key.Matches(km, m.keys.Cancel):
			m.closeForm()
			return m, nil
		case key.Matches(km, m.keys.More):
			m.qty = model.ClampQuantity(m.qty + 1)
			return m, nil
		case key.Matches(km, m.keys.Fewer):
			m.qty = model.ClampQuantity(m.qty - 1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeForm() {
	m.adding = false
	m.addErr = ""
	m.qty = model.MinQuantity
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

// refresh re-derives the view from the store and keeps the cursor on
// selectID when it is still visible.
func (m *Model) refresh(selectID int) tea.Cmd {
	cmd := m.list.SetItems(toListItems(m.proj.View(m.store)))
	m.list.Title = "Packing list · " + ui.SortLine(m.store.SortBy(), m.store.SortMode())
	if selectID != 0 {
		for i, li := range m.list.VisibleItems() {
			if it, ok := li.(listItem); ok && it.item.ID == selectID {
				m.list.Select(i)
				break
			}
		}
	}
	return cmd
}

func (m Model) selected() (model.Item, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return it.item, true
}

func (m Model) selectedID() int {
	if it, ok := m.selected(); ok {
		return it.ID
	}
	return 0
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.list.View())

	if m.adding {
		t := ui.Current()
		title := fmt.Sprintf("What do you need for your trip?  quantity %s", t.Accent.Render(fmt.Sprintf("%d", m.qty)))
		if m.addErr != "" {
			title += " — " + t.Error.Render(m.addErr)
		}
		form := title + "\n" + m.ti.View() + "\n" + m.help.ShortHelpView(m.keys.formHelp())
		b.WriteString("\n" + ui.Panel([]string{form}))
	}

	b.WriteString("\n" + strings.Join(ui.Footer(packing.Summarize(m.store.Items())), "\n"))
	return ui.Panel([]string{b.String()})
}

// resize gives the list whatever the frame, form and footer leave over.
func (m *Model) resize() {
	reserved := 6
	if m.adding {
		reserved += 5
	}
	m.list.SetSize(max(m.width-4, 20), max(m.height-reserved, 3))
}

func widthHeight() (int, int) {
	w, h := 80, 24
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		w, h = tw, th
	}
	return w, h
}
