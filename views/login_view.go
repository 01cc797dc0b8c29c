package views

import (
	"loginadvance/models"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type LoginView struct {
	container     *tview.Flex
	form          *tview.Form
	usernameField *tview.InputField
	passwordField *tview.InputField
	onSubmit      func(username, password string)
}

func NewLoginView(onSubmit func(string, string)) *LoginView {
	l := &LoginView{onSubmit: onSubmit}
	l.buildUI()
	return l
}

func (l *LoginView) Primitive() tview.Primitive { return l.container }
func (l *LoginView) Focus() tview.Primitive     { return l.form }

func (l *LoginView) buildUI() {
	l.usernameField = tview.NewInputField().
		SetLabel(models.UsernameLabel).
		SetFieldWidth(32)

	l.passwordField = tview.NewInputField().
		SetLabel(models.PasswordLabel).
		SetFieldWidth(32).
		SetMaskCharacter('*')

	l.form = tview.NewForm()
	l.form.AddFormItem(l.usernameField)
	l.form.AddFormItem(l.passwordField)
	l.form.AddButton(models.SubmitLabel, l.Submit)
	l.form.SetButtonsAlign(tview.AlignCenter)
	// The form applies its own field colours to every item on draw.
	l.form.SetFieldBackgroundColor(tcell.ColorDarkSlateGray)
	l.form.SetBackgroundColor(tcell.ColorBlack)

	l.container = centered(l.form, 9)
}

// Input returns what is currently typed in the two fields.
func (l *LoginView) Input() (username, password string) {
	return l.usernameField.GetText(), l.passwordField.GetText()
}

// Submit hands the current field values to the submit callback.
// Empty values are passed through unchanged.
func (l *LoginView) Submit() {
	l.onSubmit(l.Input())
}

// Reset discards the typed credentials and puts the cursor back on the
// username field.
func (l *LoginView) Reset() {
	l.usernameField.SetText("")
	l.passwordField.SetText("")
	l.form.SetFocus(0)
}
