// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/tikload-cli/tikload/api"
	"github.com/tikload-cli/tikload/constant"
	"github.com/tikload-cli/tikload/format"
	"github.com/tikload-cli/tikload/internal/ui"
	"github.com/tikload-cli/tikload/key"
	"github.com/tikload-cli/tikload/log"
	"github.com/tikload-cli/tikload/session"
	"github.com/tikload-cli/tikload/style"
	"github.com/tikload-cli/tikload/util"
)

// headerHeight is the number of lines the metadata header takes above the format lists.
const headerHeight = 4

// statefulBubble encapsulates the application state, including component models and the session it renders.
type statefulBubble struct {
	state   state
	session session.State

	keymap *statefulKeymap

	// components
	spinnerC spinner.Model
	inputC   textinput.Model
	videosC  list.Model
	audiosC  list.Model
	helpC    help.Model

	// noFormats is set when the current result has nothing in its video list.
	noFormats bool
	quitting  bool

	orchestrator *api.Orchestrator
	open         session.Opener
	base         string

	width, height int
	notifier      *ui.Model

	options *Options
}

// setState performs a synchronous transition of both the visible screen and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// dispatch feeds e to the session reducer, syncs the screen and turns the effect into a command.
func (b *statefulBubble) dispatch(e session.Event) tea.Cmd {
	previous := b.session
	next, effect := session.Reduce(previous, e)
	b.session = next

	var cmd tea.Cmd
	if next != previous {
		log.Debugf("tui: %s -> %s", previous.Kind, next.Kind)
		cmd = b.sync()
	}

	switch effect := effect.(type) {
	case session.Fetch:
		return tea.Batch(cmd, b.fetch(effect.Input), b.spinnerC.Tick)
	case session.Open:
		return tea.Batch(cmd, b.download(effect.Request))
	}

	return cmd
}

// sync points the screen at the current session state.
func (b *statefulBubble) sync() tea.Cmd {
	switch b.session.Kind {
	case session.KindIdle:
		b.setState(searchState)
	case session.KindLoading:
		b.setState(loadingState)
	case session.KindError:
		b.setState(errorState)
	case session.KindResult:
		b.setState(videosState)
		return b.populate()
	}

	return nil
}

// populate fills both lists from the current result.
func (b *statefulBubble) populate() tea.Cmd {
	metadata := b.session.Metadata

	videos, err := format.Videos(metadata)
	b.noFormats = err != nil
	audios := format.Audios(metadata)

	toItems := func(entries []format.Entry) []list.Item {
		return lo.Map(entries, func(e format.Entry, _ int) list.Item {
			return &listItem{internal: e}
		})
	}

	b.videosC.ResetSelected()
	b.audiosC.ResetSelected()

	return tea.Batch(
		b.videosC.SetItems(toItems(videos)),
		b.audiosC.SetItems(toItems(audios)),
	)
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	styledWidth := width - x
	styledHeight := height - y

	listWidth := width - xx
	listHeight := height - yy - headerHeight

	b.videosC.SetSize(listWidth, listHeight)
	b.videosC.Help.Width = listWidth

	b.audiosC.SetSize(listWidth, listHeight)
	b.audiosC.Help.Width = listWidth

	b.inputC.Width = styledWidth

	b.width = styledWidth
	b.height = styledHeight
	b.helpC.Width = listWidth
}

// newBubble performs a complete initialization of the application's primary UI model.
func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	keymap.switchList.SetEnabled(viper.GetBool(key.DownloadAudioEnabled))
	bubble := statefulBubble{
		session:      session.Idle(),
		keymap:       keymap,
		orchestrator: api.NewOrchestrator(options.Fetcher),
		open:         options.Open,
		base:         options.Base,
		notifier:     &ui.Model{},
		options:      options,
	}

	type listOptions struct {
		TitleStyle mo.Option[lipgloss.Style]
	}

	makeList := func(title string, options *listOptions) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		if titleStyle, ok := options.TitleStyle.Get(); ok {
			listC.Styles.Title = titleStyle
		}
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetFilteringEnabled(false)
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Paste a video link (v%s)", constant.Version)
	bubble.inputC.CharLimit = 2048
	bubble.inputC.Prompt = viper.GetString(key.TUIPromptString)

	bubble.videosC = makeList("Video", &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(style.Base).Background(style.Lavender).Padding(0, 1),
		),
	})
	bubble.videosC.SetStatusBarItemName("format", "formats")

	bubble.audiosC = makeList("Audio", &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(style.Base).Background(style.Peach).Padding(0, 1),
		),
	})
	bubble.audiosC.SetStatusBarItemName("format", "formats")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(searchState)
	bubble.inputC.Focus()

	return &bubble
}
