package controllers

import (
	"log/slog"

	"loginadvance/models"

	"github.com/rivo/tview"
)

// AppController connects the input surface to the AuthNavigator and drives
// the display through the StateMachine. All methods must be called from the
// tview event loop.
type AppController struct {
	app *tview.Application
	log *slog.Logger
	Nav *AuthNavigator
	SM  *StateMachine
}

func NewAppController(app *tview.Application, logger *slog.Logger) *AppController {
	return &AppController{
		app: app,
		log: logger,
		Nav: NewAuthNavigator(),
		SM:  NewStateMachine(models.NoScreen()),
	}
}

// Start shows the navigator's initial screen. Enter hooks must be registered first.
func (c *AppController) Start() {
	c.show(c.Nav.Current())
}

// OnLoginSubmit is the submit callback of the login form.
func (c *AppController) OnLoginSubmit(username, password string) {
	next := c.Nav.AttemptLogin(username, password)
	if next.Kind == models.ScreenSuccess {
		c.log.Info("login accepted", "username", username)
	} else {
		c.log.Info("login denied", "username", username)
	}
	c.show(next)
}

// OnReturnToLogin backs both "Cerrar Sesión" and "Regresar".
func (c *AppController) OnReturnToLogin() {
	from := c.Nav.Current()
	c.log.Info("return to login", "from", from.Kind.String())
	c.show(c.Nav.ReturnToLogin())
}

// OnInertAction handles buttons that have no behaviour yet.
func (c *AppController) OnInertAction(label string) {
	c.log.Debug("action not implemented", "action", label, "screen", c.Nav.Current().Kind.String())
}

// OnBack handles the Escape key. Outside the login screen it returns to
// login; on the login screen it stops the application and reports true.
func (c *AppController) OnBack() bool {
	if c.Nav.Current().Kind != models.ScreenLogin {
		c.OnReturnToLogin()
		return false
	}
	c.log.Info("quit requested from login screen")
	c.app.Stop()
	return true
}

func (c *AppController) show(s models.Screen) {
	c.log.Debug("screen transition", "from", c.SM.Current().String(), "to", s.String())
	c.SM.Transition(s)
}
