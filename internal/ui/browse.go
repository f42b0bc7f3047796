package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"artdeck/internal/api"
	"artdeck/internal/db"
	"artdeck/internal/models"
	"artdeck/internal/pager"
	"artdeck/internal/selection"
)

// BrowseModel is the TUI model for the paginated artwork browser.
// Pagination state lives in the Pager, the cross-page selection in the
// Store; the model itself only renders and routes events.
type BrowseModel struct {
	fetcher  pager.Fetcher
	pages    *pager.Pager
	store    *selection.Store
	database *db.DB
	logger   *log.Logger

	layout     Layout
	table      table.Model
	selTable   table.Model
	countInput textinput.Model
	spinner    spinner.Model

	inputMode     bool // select-N overlay active
	reviewMode    bool // selection review table active
	loading       bool // page navigation in flight
	selecting     bool // bulk selection in flight
	err           error
	status        string
	quitting      bool
	saveRequested bool

	pendingLoad       bool
	layoutInitialized bool
}

// pageLoadedMsg is sent when a page fetch completes
type pageLoadedMsg struct {
	page *api.ArtworksPage
	err  error
}

// bulkSelectedMsg is sent when a bulk-selection accumulation completes
type bulkSelectedMsg struct {
	artworks  []models.Artwork
	requested int
	err       error
}

// NewBrowseModel creates the browse TUI over the given collaborators.
func NewBrowseModel(fetcher pager.Fetcher, pages *pager.Pager, store *selection.Store, database *db.DB, logger *log.Logger) BrowseModel {
	ti := textinput.New()
	ti.Placeholder = "number of artworks"
	ti.CharLimit = 9

	layout := DefaultLayout()

	t := table.New(
		table.WithColumns(CalculateColumns(ArtworkColumns(), layout.TableWidth)),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(layout.TableHeight),
	)
	ApplyTableStyles(&t)

	st := table.New(
		table.WithColumns(CalculateColumns(SelectionColumns(), layout.TableWidth)),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(layout.TableHeight),
	)
	ApplyTableStyles(&st)

	return BrowseModel{
		fetcher:     fetcher,
		pages:       pages,
		store:       store,
		database:    database,
		logger:      logger,
		layout:      layout,
		table:       t,
		selTable:    st,
		countInput:  ti,
		spinner:     NewAppSpinner(),
		pendingLoad: len(pages.Loaded) == 0,
	}
}

// Init implements tea.Model
func (m BrowseModel) Init() tea.Cmd {
	// The initial page load waits for the first WindowSizeMsg so the
	// table is sized from real terminal dimensions.
	return m.spinner.Tick
}

// Update implements tea.Model
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width, msg.Height)
		m.table.SetHeight(m.layout.TableHeight)
		m.table.SetColumns(CalculateColumns(ArtworkColumns(), m.layout.TableWidth))
		m.selTable.SetHeight(m.layout.TableHeight)
		m.selTable.SetColumns(CalculateColumns(SelectionColumns(), m.layout.TableWidth))
		m.countInput.Width = m.layout.InnerWidth - 20
		m.updateTable()

		if m.pendingLoad && !m.layoutInitialized {
			m.layoutInitialized = true
			m.pendingLoad = false
			m.loading = true
			return m, m.loadPage(m.pages.CurrentPage)
		}
		m.layoutInitialized = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pageLoadedMsg:
		m.loading = false
		if msg.err != nil {
			// Failed navigation: pager state stays on the last good page
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = ""
		m.pages.Apply(msg.page)
		m.updateTable()
		m.table.GotoTop()
		return m, nil

	case bulkSelectedMsg:
		m.selecting = false
		if msg.err != nil {
			// Nothing is merged on failure; report distinctly from a no-op
			m.err = fmt.Errorf("bulk selection failed, nothing selected: %w", msg.err)
			return m, nil
		}
		m.err = nil
		m.store.Merge(msg.artworks)
		if len(msg.artworks) < msg.requested {
			m.status = fmt.Sprintf("Selected %d artworks (collection has fewer than %d)", len(msg.artworks), msg.requested)
		} else {
			m.status = fmt.Sprintf("Selected %d artworks", len(msg.artworks))
		}
		m.updateTable()
		return m, nil

	case tea.KeyMsg:
		if m.inputMode {
			return m.updateCountInput(msg)
		}
		if m.reviewMode {
			return m.updateReview(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

// updateCountInput handles keys while the select-N overlay is open
func (m BrowseModel) updateCountInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.inputMode = false
		m.err = nil
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.countInput.Value())
		requested, err := ParseSelectCount(value, m.pages.Total)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.inputMode = false
		m.err = nil
		if requested == 0 {
			m.status = "Selected 0 artworks"
			return m, nil
		}
		m.selecting = true
		return m, m.bulkSelect(requested)

	default:
		var cmd tea.Cmd
		m.countInput, cmd = m.countInput.Update(msg)
		return m, cmd
	}
}

// updateReview handles keys while the selection review table is shown
func (m BrowseModel) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "v":
		m.reviewMode = false
		return m, nil
	case "up", "k":
		m.selTable.MoveUp(1)
	case "down", "j":
		m.selTable.MoveDown(1)
	}
	return m, nil
}

// updateBrowse handles keys in the main table mode
func (m BrowseModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "n", "right":
		if !m.loading && m.pages.CurrentPage < m.pages.PageCount() {
			m.loading = true
			return m, m.loadPage(m.pages.CurrentPage + 1)
		}

	case "p", "left":
		if !m.loading && m.pages.CurrentPage > 1 {
			m.loading = true
			return m, m.loadPage(m.pages.CurrentPage - 1)
		}

	case "g", "home":
		if !m.loading && m.pages.CurrentPage != 1 {
			m.loading = true
			return m, m.loadPage(1)
		}

	case "G", "end":
		if last := m.pages.PageCount(); !m.loading && last > 0 && m.pages.CurrentPage != last {
			m.loading = true
			return m, m.loadPage(last)
		}

	case "s", "/":
		m.inputMode = true
		m.countInput.SetValue("")
		m.countInput.Focus()
		return m, textinput.Blink

	case " ":
		m.toggleCursor()
		return m, nil

	case "c":
		m.store.Replace(nil)
		m.status = "Selection cleared"
		m.updateTable()
		return m, nil

	case "v":
		m.updateSelTable()
		m.selTable.GotoTop()
		m.reviewMode = true
		return m, nil

	case "w":
		if m.store.Len() == 0 {
			m.status = "Nothing selected to save"
			return m, nil
		}
		m.saveRequested = true
		m.quitting = true
		return m, tea.Quit

	case "e":
		if m.store.Len() == 0 {
			m.status = "Nothing selected to export"
			return m, nil
		}
		filename, err := ExportSelectionToMarkdown(m.store.All())
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("Exported selection to %s", filename)
		return m, nil

	case "up", "k":
		m.table.MoveUp(1)
		return m, nil

	case "down", "j":
		m.table.MoveDown(1)
		return m, nil
	}

	return m, nil
}

// toggleCursor flips the selection state of the row under the cursor and
// reports the edited set as a full replacement.
func (m *BrowseModel) toggleCursor() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.pages.Loaded) {
		return
	}
	target := m.pages.Loaded[i]

	current := m.store.All()
	if m.store.Has(target.ID) {
		next := make([]models.Artwork, 0, len(current)-1)
		for _, a := range current {
			if a.ID != target.ID {
				next = append(next, a)
			}
		}
		m.store.Replace(next)
	} else {
		m.store.Replace(append(current, target))
	}
	m.status = fmt.Sprintf("%d selected", m.store.Len())
	m.updateTable()
}

// loadPage fetches a page asynchronously; the result is applied in Update
func (m BrowseModel) loadPage(target int) tea.Cmd {
	return func() tea.Msg {
		page, err := m.fetcher.FetchPage(target)
		return pageLoadedMsg{page: page, err: err}
	}
}

// bulkSelect runs the accumulation against a snapshot of the pagination
// state taken now. Navigating pages while it runs does not disturb it;
// the accumulation simply works against the snapshot.
func (m BrowseModel) bulkSelect(requested int) tea.Cmd {
	loaded := make([]models.Artwork, len(m.pages.Loaded))
	copy(loaded, m.pages.Loaded)
	currentPage := m.pages.CurrentPage
	pageSize := m.pages.PageSize
	total := m.pages.Total

	return func() tea.Msg {
		artworks, err := pager.Accumulate(m.fetcher, requested, loaded, currentPage, pageSize, total)
		return bulkSelectedMsg{artworks: artworks, requested: requested, err: err}
	}
}

// updateTable rebuilds the browse table rows from the loaded page
func (m *BrowseModel) updateTable() {
	columns := CalculateColumns(ArtworkColumns(), m.layout.TableWidth)

	rows := make([]table.Row, len(m.pages.Loaded))
	for i, a := range m.pages.Loaded {
		mark := ""
		if m.store.Has(a.ID) {
			mark = "*"
		}
		rows[i] = table.Row{
			mark,
			strconv.Itoa(a.ID),
			Truncate(a.Title, columns[2].Width),
			Truncate(a.ArtistDisplay, columns[3].Width),
			Truncate(a.PlaceOfOrigin, columns[4].Width),
			a.DateRange(),
		}
	}

	m.table.SetColumns(columns)
	m.table.SetRows(rows)
}

// updateSelTable rebuilds the selection review rows in insertion order
func (m *BrowseModel) updateSelTable() {
	columns := CalculateColumns(SelectionColumns(), m.layout.TableWidth)

	selected := m.store.All()
	rows := make([]table.Row, len(selected))
	for i, a := range selected {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(a.ID),
			Truncate(a.Title, columns[2].Width),
			Truncate(a.ArtistDisplay, columns[3].Width),
			a.DateRange(),
		}
	}

	m.selTable.SetColumns(columns)
	m.selTable.SetRows(rows)
}

// View implements tea.Model
func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder

	if m.reviewMode {
		content.WriteString(ViewHeader("Selected Artworks", m.layout.InnerWidth))
		content.WriteString(AccentStyle.Render(fmt.Sprintf(" %d artworks selected", m.store.Len())))
		content.WriteString("\n\n")
		content.WriteString(m.selTable.View())
		return BuildTwoBoxView(content.String(), "up/down: navigate | v/Esc: back to browse", m.layout)
	}

	content.WriteString(ViewHeader("Art Institute of Chicago - Artworks", m.layout.InnerWidth))

	if m.inputMode {
		content.WriteString(" Select how many artworks: ")
		content.WriteString(m.countInput.View())
		content.WriteString("\n")
		if m.err != nil {
			content.WriteString("\n")
			content.WriteString(RenderError(" " + m.err.Error()))
		}
		return BuildTwoBoxView(content.String(), "Enter: select | Esc: cancel", m.layout)
	}

	info := fmt.Sprintf(" Page %d/%d  |  Rows %d-%d of %d  |  Selected: %d",
		m.pages.CurrentPage, m.pages.PageCount(),
		m.firstVisibleRow(), m.lastVisibleRow(), m.pages.Total,
		m.store.Len())
	content.WriteString(AccentStyle.Render(info))
	content.WriteString("\n\n")

	switch {
	case m.loading:
		content.WriteString(m.spinner.View())
		content.WriteString(" ")
		content.WriteString(HintStyle.Render("Loading page..."))
	case m.selecting:
		content.WriteString(m.spinner.View())
		content.WriteString(" ")
		content.WriteString(HintStyle.Render("Selecting artworks across pages..."))
	default:
		content.WriteString(m.table.View())
		if m.err != nil {
			content.WriteString("\n")
			content.WriteString(RenderError(fmt.Sprintf(" Error: %v", m.err)))
		} else if m.status != "" {
			content.WriteString("\n")
			content.WriteString(MarkStyle.Render(" " + m.status))
		}
	}

	help := "n/p: page | s: select N | Space: toggle | v: review | w: save | e: export | c: clear | q: quit"
	return BuildTwoBoxView(content.String(), help, m.layout)
}

// firstVisibleRow returns the 1-based absolute row number of the first
// loaded record, or 0 when the page is empty.
func (m BrowseModel) firstVisibleRow() int {
	if len(m.pages.Loaded) == 0 {
		return 0
	}
	return m.pages.FirstRowOffset + 1
}

func (m BrowseModel) lastVisibleRow() int {
	return m.pages.FirstRowOffset + len(m.pages.Loaded)
}

// SaveRequested reports whether the user asked to save the selection
func (m BrowseModel) SaveRequested() bool {
	return m.saveRequested
}

// ParseSelectCount validates a select-N submission against the known total.
// The bound is enforced here at the input boundary, not in the accumulator.
func ParseSelectCount(value string, total int) (int, error) {
	if value == "" {
		return 0, fmt.Errorf("enter a number")
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", value)
	}
	if n < 0 {
		return 0, fmt.Errorf("count cannot be negative")
	}
	if n > total {
		return 0, fmt.Errorf("only %d artworks exist", total)
	}
	return n, nil
}

// RunBrowse starts the artwork browser and keeps it running across save
// prompts, which have to happen outside the alt-screen program.
func RunBrowse(fetcher pager.Fetcher, pages *pager.Pager, store *selection.Store, database *db.DB, logger *log.Logger) error {
	for {
		model := NewBrowseModel(fetcher, pages, store, database, logger)

		p := tea.NewProgram(model, tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		m, ok := finalModel.(BrowseModel)
		if !ok {
			return nil
		}

		if m.SaveRequested() {
			name, cancelled, err := PromptForSelectionName()
			if err != nil {
				PrintError(fmt.Sprintf("Save prompt failed: %v", err))
				continue
			}
			if cancelled {
				continue
			}
			if database == nil {
				PrintError("No database configured; selection not saved")
				continue
			}
			if err := database.SaveSelection(name, store.All()); err != nil {
				PrintError(fmt.Sprintf("Failed to save selection: %v", err))
				continue
			}
			PrintSuccess(fmt.Sprintf("Saved %d artworks as %q", store.Len(), name))
			continue
		}

		return nil
	}
}
