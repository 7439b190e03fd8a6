package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/headlines/internal/browser"
	"github.com/matheuskafuri/headlines/internal/feed"
)

// Feed is the part of *feed.Controller the UI drives.
type Feed interface {
	State() feed.State
	Changes() <-chan struct{}
	SetCategory(category string)
	SetSearch(text string)
	NextPage()
	PrevPage()
	Refresh()
}

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeHelp
)

type App struct {
	feed  Feed
	state feed.State

	cursor int
	focus  focusPane
	mode   mode

	width  int
	height int

	// Sub-components
	categories  categoryBar
	searchInput textinput.Model
	spinner     spinner.Model
	help        help.Model
	keys        keyMap

	spinning      bool
	previewScroll int
	currentDate   string
	err           error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Feed       Feed
	Categories []string
}

func NewApp(opts RunOpts) *App {
	state := opts.Feed.State()

	ti := textinput.New()
	ti.Placeholder = "Search headlines..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100
	ti.SetValue(state.Query.Search)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		feed:        opts.Feed,
		state:       state,
		categories:  newCategoryBar(opts.Categories, state.Query.Category),
		searchInput: ti,
		spinner:     sp,
		help:        help.New(),
		keys:        defaultKeyMap(),
		currentDate: time.Now().Format("Jan 2"),
	}
}

func (a *App) Init() tea.Cmd {
	f := a.feed
	return tea.Batch(
		func() tea.Msg {
			f.Refresh()
			return nil
		},
		waitForChange(f.Changes()),
	)
}

// waitForChange blocks until the controller signals, then asks Update to
// re-read the snapshot.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return feedClosedMsg{}
		}
		return feedChangedMsg{}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case feedChangedMsg:
		return a, tea.Batch(a.syncState(), waitForChange(a.feed.Changes()))

	case feedClosedMsg:
		return a, nil

	case openErrMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.state.Loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		a.spinning = false
		return a, nil
	}

	return a, nil
}

// syncState pulls the latest snapshot and starts the spinner when a fetch is
// in flight.
func (a *App) syncState() tea.Cmd {
	prev := a.state
	a.state = a.feed.State()

	if a.state.Seq != prev.Seq || len(a.state.Articles) != len(prev.Articles) {
		a.previewScroll = 0
	}
	if a.cursor >= len(a.state.Articles) {
		a.cursor = max(0, len(a.state.Articles)-1)
	}

	if a.state.Loading && !a.spinning {
		a.spinning = true
		return a.spinner.Tick
	}
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeHelp:
		if key.Matches(msg, a.keys.Help, a.keys.Quit) || msg.String() == "esc" {
			a.mode = modeNormal
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if a.focus == focusList && a.cursor < len(a.state.Articles)-1 {
			a.cursor++
			a.previewScroll = 0
		} else if a.focus == focusPreview {
			a.previewScroll++
		}

	case key.Matches(msg, a.keys.Up):
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
			a.previewScroll = 0
		} else if a.focus == focusPreview && a.previewScroll > 0 {
			a.previewScroll--
		}

	case key.Matches(msg, a.keys.Focus):
		if a.focus == focusList {
			a.focus = focusPreview
		} else {
			a.focus = focusList
		}

	case key.Matches(msg, a.keys.NextCategory):
		a.changeCategory(a.categories.next())

	case key.Matches(msg, a.keys.PrevCategory):
		a.changeCategory(a.categories.prev())

	case key.Matches(msg, a.keys.NextPage):
		if _, ok := pagerState(a.state); ok {
			a.cursor = 0
			a.feed.NextPage()
		}

	case key.Matches(msg, a.keys.PrevPage):
		if ok, _ := pagerState(a.state); ok {
			a.cursor = 0
			a.feed.PrevPage()
		}

	case key.Matches(msg, a.keys.Open):
		if classify(a.state) == viewCards && a.cursor < len(a.state.Articles) {
			return a, openBrowserCmd(a.state.Articles[a.cursor].URL)
		}

	case key.Matches(msg, a.keys.Search):
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Refresh):
		a.feed.Refresh()

	case key.Matches(msg, a.keys.Help):
		a.mode = modeHelp

	default:
		// 1-9 jump straight to a category tab
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if a.categories.selectIndex(int(s[0] - '1')) {
				a.changeCategory(a.categories.current())
			}
		}
	}

	return a, nil
}

func (a *App) changeCategory(category string) {
	if category == "" || category == a.state.Query.Category {
		return
	}
	a.cursor = 0
	a.feed.SetCategory(category)
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.Blur()
		if a.searchInput.Value() != "" {
			a.searchInput.SetValue("")
			a.cursor = 0
			a.feed.SetSearch("")
		}
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	// Only re-query on actual value changes, not cursor moves etc.
	if after := a.searchInput.Value(); after != before {
		a.cursor = 0
		a.feed.SetSearch(after)
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  headlines")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	// Layout calculations
	headerHeight := 1
	tabsHeight := 1
	searchHeight := 1
	pagerHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - tabsHeight - searchHeight - pagerHeight - statusHeight - 2 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}

	// Header
	headerLeft := headerStyle.Render("headlines")
	if a.state.Loading {
		headerLeft += " " + a.spinner.View()
	}
	headerRight := headerDateStyle.Render(a.currentDate)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	tabs := a.categories.render(a.width)

	search := " " + a.searchInput.View()

	var content string
	if classify(a.state) == viewCards {
		content = a.renderPanes(contentHeight)
	} else {
		content = listPaneStyle.Width(a.width - 2).Height(contentHeight).
			Render(renderFeed(a.state, a.cursor, a.width-4, contentHeight))
	}

	pager := renderPager(a.state, a.width)

	status := renderStatusBar(a.state, a.width, a.mode == modeSearch)
	if a.err != nil {
		status = errorStyle.Render(" " + a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, tabs, search, content, pager, status)
}

func (a *App) renderPanes(contentHeight int) string {
	listWidth := int(float64(a.width) * 0.45)
	previewWidth := a.width - listWidth - 1 // gap

	listContent := renderFeed(a.state, a.cursor, listWidth-4, contentHeight)
	listStyle := listPaneStyle
	if a.focus == focusList {
		listStyle = listPaneActiveStyle
	}
	listPane := listStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)

	var selected *feed.Article
	if a.cursor < len(a.state.Articles) {
		selected = &a.state.Articles[a.cursor]
	}
	previewContent := renderPreview(selected, previewWidth-4, contentHeight, a.previewScroll)
	previewStyle := previewPaneStyle
	if a.focus == focusPreview {
		previewStyle = previewPaneActiveStyle
	}
	previewPane := previewStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, " ", previewPane)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("headlines")
	dim := cardMetaStyle

	a.help.ShowAll = true
	body := title + dim.Render(" · Keyboard Shortcuts") + "\n\n" +
		a.help.View(a.keys) + "\n\n" +
		dim.Render("1-9 jump to a category  ·  esc/? close")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, helpCardStyle.Render(body))
}

// Run starts the TUI application and blocks until the user quits.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
