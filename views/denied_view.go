package views

import (
	"loginadvance/models"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type DeniedView struct {
	container *tview.Flex
	actions   *tview.List
}

func NewDeniedView(onInert func(string), onBack func()) *DeniedView {
	d := &DeniedView{}
	d.actions = newActionList(models.DeniedActions, onInert, models.BackLabel, onBack)

	body := tview.NewFlex()
	body.SetDirection(tview.FlexRow)
	body.SetBackgroundColor(tcell.ColorBlack)
	body.AddItem(headline(models.DeniedTitle, tcell.ColorRed), 1, 0, false)
	body.AddItem(headline(models.DeniedMessage, tcell.ColorWhite), 1, 0, false)
	body.AddItem(spacer(), 1, 0, false)
	body.AddItem(d.actions, 0, 1, true)

	d.container = centered(body, len(models.DeniedActions)+4)
	return d
}

func (d *DeniedView) Primitive() tview.Primitive { return d.container }
func (d *DeniedView) Focus() tview.Primitive     { return d.actions }

// Reset moves the selection back to the first action.
func (d *DeniedView) Reset() {
	d.actions.SetCurrentItem(0)
}
