package views

import (
	"loginadvance/models"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// centered wraps p in a bordered frame of the given height, centered on screen.
func centered(p tview.Primitive, height int) *tview.Flex {
	frame := tview.NewFlex()
	frame.SetDirection(tview.FlexRow)
	frame.SetBorder(true)
	frame.SetTitle(models.AppTitle)
	frame.SetBorderColor(tcell.ColorDarkCyan)
	frame.SetBackgroundColor(tcell.ColorBlack)
	frame.AddItem(p, 0, 1, true)

	row := tview.NewFlex()
	row.SetBackgroundColor(tcell.ColorBlack)
	row.AddItem(spacer(), 0, 1, false)
	row.AddItem(frame, 52, 0, true)
	row.AddItem(spacer(), 0, 1, false)

	outer := tview.NewFlex()
	outer.SetDirection(tview.FlexRow)
	outer.SetBackgroundColor(tcell.ColorBlack)
	outer.AddItem(spacer(), 0, 1, false)
	outer.AddItem(row, height+2, 0, true)
	outer.AddItem(spacer(), 0, 1, false)
	return outer
}

func spacer() *tview.Box {
	return tview.NewBox().SetBackgroundColor(tcell.ColorBlack)
}

// newActionList builds the vertical button column shared by the success and
// denied screens. The inert actions come first and report their label to
// onInert; the last item runs onFinal.
func newActionList(inert []string, onInert func(string), finalLabel string, onFinal func()) *tview.List {
	list := tview.NewList()
	list.ShowSecondaryText(false)
	list.SetHighlightFullLine(true)
	list.SetBackgroundColor(tcell.ColorBlack)
	list.SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	for _, label := range inert {
		label := label
		list.AddItem(label, "", 0, func() { onInert(label) })
	}
	list.AddItem(finalLabel, "", 0, onFinal)
	return list
}

func headline(text string, color tcell.Color) *tview.TextView {
	tv := tview.NewTextView()
	tv.SetTextAlign(tview.AlignCenter)
	tv.SetTextColor(color)
	tv.SetBackgroundColor(tcell.ColorBlack)
	tv.SetText(text)
	return tv
}
