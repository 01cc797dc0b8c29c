package views

import (
	"loginadvance/models"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type SuccessView struct {
	container *tview.Flex
	welcome   *tview.TextView
	actions   *tview.List
	username  string
}

func NewSuccessView(onInert func(string), onLogout func()) *SuccessView {
	s := &SuccessView{}
	s.welcome = headline(models.WelcomeText(""), tcell.ColorGreen)
	s.actions = newActionList(models.SuccessActions, onInert, models.LogoutLabel, onLogout)

	body := tview.NewFlex()
	body.SetDirection(tview.FlexRow)
	body.SetBackgroundColor(tcell.ColorBlack)
	body.AddItem(s.welcome, 1, 0, false)
	body.AddItem(spacer(), 1, 0, false)
	body.AddItem(s.actions, 0, 1, true)

	s.container = centered(body, len(models.SuccessActions)+3)
	return s
}

func (s *SuccessView) Primitive() tview.Primitive { return s.container }
func (s *SuccessView) Focus() tview.Primitive     { return s.actions }

// SetUsername shows the name carried by the Success screen and moves the
// selection back to the first action.
func (s *SuccessView) SetUsername(username string) {
	s.username = username
	s.welcome.SetText(models.WelcomeText(username))
	s.actions.SetCurrentItem(0)
}

func (s *SuccessView) Username() string { return s.username }
