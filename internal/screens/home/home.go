package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanjiz/internal/kanjidict"
	"github.com/abhisek/kanjiz/internal/quizgen"
	"github.com/abhisek/kanjiz/internal/router"
	"github.com/abhisek/kanjiz/internal/screen"
	"github.com/abhisek/kanjiz/internal/screens/quizscreen"
	"github.com/abhisek/kanjiz/internal/store"
	"github.com/abhisek/kanjiz/internal/ui/components"
	"github.com/abhisek/kanjiz/internal/ui/layout"
	"github.com/abhisek/kanjiz/internal/ui/theme"
)

// HomeScreen is the level-selection screen shown on startup.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. Each JLPT level gets a menu entry; the
// entry count for the level is shown so empty levels are visible up front.
func New(generator quizgen.Generator, eventRepo store.EventRepo, startLevel string) *HomeScreen {
	var items []components.MenuItem

	for _, level := range kanjidict.Levels() {
		level := level
		count := len(kanjidict.PoolForLevel(level))
		label := fmt.Sprintf("JLPT N%s  (%d kanji)", level, count)
		items = append(items, components.MenuItem{
			Label:    label,
			Disabled: count == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quizscreen.New(generator, eventRepo, level),
					}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label: "EXIT",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	menu := components.NewMenu(items)
	for i, level := range kanjidict.Levels() {
		if level == startLevel && !items[i].Disabled {
			menu.Selected = i
			break
		}
	}

	return &HomeScreen{menu: menu}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("漢字 Kanjiz"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Pick a level to start the quiz"))
	b.WriteString("\n\n")

	menu := theme.Card.Render(h.menu.View())
	b.WriteString(menu)

	return layout.Center(b.String(), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
