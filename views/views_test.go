package views

import (
	"testing"

	"loginadvance/models"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enterKey() *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
}

func noFocus(tview.Primitive) {}

func pressButton(t *testing.T, form *tview.Form, label string) {
	t.Helper()
	idx := form.GetButtonIndex(label)
	require.GreaterOrEqual(t, idx, 0, "button %q not found", label)
	form.GetButton(idx).InputHandler()(enterKey(), noFocus)
}

func selectItem(t *testing.T, list *tview.List, label string) {
	t.Helper()
	items := list.FindItems(label, "", false, false)
	require.NotEmpty(t, items, "item %q not found", label)
	list.SetCurrentItem(items[0])
	list.InputHandler()(enterKey(), noFocus)
}

func itemLabels(list *tview.List) []string {
	labels := make([]string, 0, list.GetItemCount())
	for i := 0; i < list.GetItemCount(); i++ {
		main, _ := list.GetItemText(i)
		labels = append(labels, main)
	}
	return labels
}

func TestLoginView_SubmitPassesFieldValues(t *testing.T) {
	var gotUser, gotPass string
	calls := 0
	l := NewLoginView(func(u, p string) {
		gotUser, gotPass = u, p
		calls++
	})

	l.usernameField.SetText("Admin")
	l.passwordField.SetText("secret")
	pressButton(t, l.form, models.SubmitLabel)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "Admin", gotUser)
	assert.Equal(t, "secret", gotPass)
}

func TestLoginView_SubmitWithEmptyFields(t *testing.T) {
	calls := 0
	l := NewLoginView(func(u, p string) {
		assert.Empty(t, u)
		assert.Empty(t, p)
		calls++
	})

	l.Submit()

	assert.Equal(t, 1, calls)
}

func TestLoginView_FieldsAreLabelledAndPasswordMasked(t *testing.T) {
	l := NewLoginView(func(string, string) {})

	assert.Same(t, l.usernameField, l.form.GetFormItemByLabel(models.UsernameLabel))
	assert.Same(t, l.passwordField, l.form.GetFormItemByLabel(models.PasswordLabel))
	assert.Equal(t, 1, l.form.GetButtonCount())
}

func TestLoginView_ResetClearsInput(t *testing.T) {
	l := NewLoginView(func(string, string) {})
	l.usernameField.SetText("Admin")
	l.passwordField.SetText("Admin")

	l.Reset()

	assert.Empty(t, l.usernameField.GetText())
	assert.Empty(t, l.passwordField.GetText())
}

func TestSuccessView_ShowsUsername(t *testing.T) {
	s := NewSuccessView(func(string) {}, func() {})

	s.SetUsername("Admin")

	assert.Equal(t, "Admin", s.Username())
	assert.Equal(t, "¡Bienvenido Admin!", s.welcome.GetText(true))
}

func TestSuccessView_Actions(t *testing.T) {
	var inert []string
	logouts := 0
	s := NewSuccessView(func(label string) { inert = append(inert, label) }, func() { logouts++ })

	assert.Equal(t, []string{"Ver Perfil", "Configuración", "Notificaciones", "Cerrar Sesión"}, itemLabels(s.actions))

	selectItem(t, s.actions, "Configuración")
	selectItem(t, s.actions, "Ver Perfil")
	assert.Equal(t, []string{"Configuración", "Ver Perfil"}, inert)
	assert.Equal(t, 0, logouts)

	selectItem(t, s.actions, models.LogoutLabel)
	assert.Equal(t, 1, logouts)
}

func TestDeniedView_Actions(t *testing.T) {
	var inert []string
	backs := 0
	d := NewDeniedView(func(label string) { inert = append(inert, label) }, func() { backs++ })

	assert.Equal(t, []string{"Registrarse", "Olvidé mi contraseña", "Regresar"}, itemLabels(d.actions))

	selectItem(t, d.actions, "Olvidé mi contraseña")
	assert.Equal(t, []string{"Olvidé mi contraseña"}, inert)
	assert.Equal(t, 0, backs)

	selectItem(t, d.actions, models.BackLabel)
	assert.Equal(t, 1, backs)

	d.Reset()
	assert.Equal(t, 0, d.actions.GetCurrentItem())
}
