package main

import (
	"fmt"
	"log/slog"
	"os"

	"loginadvance/controllers"
	"loginadvance/logging"
	"loginadvance/models"
	"loginadvance/views"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type ui struct {
	app     *tview.Application
	pages   *tview.Pages
	ctrl    *controllers.AppController
	login   *views.LoginView
	success *views.SuccessView
	denied  *views.DeniedView
}

func recoverFromPanic(logger *slog.Logger) {
	if r := recover(); r != nil {
		logger.Error("panic recovered", "panic", r)
	}
}

func buildUI(app *tview.Application, logger *slog.Logger) *ui {
	ctrl := controllers.NewAppController(app, logger)

	u := &ui{
		app:   app,
		pages: tview.NewPages(),
		ctrl:  ctrl,
	}
	u.login = views.NewLoginView(func(username, password string) {
		defer recoverFromPanic(logger)
		ctrl.OnLoginSubmit(username, password)
	})
	onInert := func(label string) {
		defer recoverFromPanic(logger)
		ctrl.OnInertAction(label)
	}
	onReturn := func() {
		defer recoverFromPanic(logger)
		ctrl.OnReturnToLogin()
	}
	u.success = views.NewSuccessView(onInert, onReturn)
	u.denied = views.NewDeniedView(onInert, onReturn)

	u.pages.AddPage(models.ScreenLogin.Page(), u.login.Primitive(), true, false)
	u.pages.AddPage(models.ScreenSuccess.Page(), u.success.Primitive(), true, false)
	u.pages.AddPage(models.ScreenDenied.Page(), u.denied.Primitive(), true, false)

	// ── LOGIN ─────────────────────────────────────────────────────────────────
	ctrl.SM.OnEnter(models.ScreenLogin, func(s models.Screen) {
		defer recoverFromPanic(logger)
		u.pages.SwitchToPage(s.Kind.Page())
		app.SetFocus(u.login.Focus())
	})
	// Typed credentials never outlive the login screen.
	ctrl.SM.OnExit(models.ScreenLogin, func() {
		defer recoverFromPanic(logger)
		u.login.Reset()
	})

	// ── SUCCESS ───────────────────────────────────────────────────────────────
	ctrl.SM.OnEnter(models.ScreenSuccess, func(s models.Screen) {
		defer recoverFromPanic(logger)
		u.success.SetUsername(s.Username)
		u.pages.SwitchToPage(s.Kind.Page())
		app.SetFocus(u.success.Focus())
	})

	// ── DENIED ────────────────────────────────────────────────────────────────
	ctrl.SM.OnEnter(models.ScreenDenied, func(s models.Screen) {
		defer recoverFromPanic(logger)
		u.denied.Reset()
		u.pages.SwitchToPage(s.Kind.Page())
		app.SetFocus(u.denied.Focus())
	})

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() != tcell.KeyEscape {
			return event
		}
		defer recoverFromPanic(logger)
		ctrl.OnBack()
		return nil
	})

	return u
}

func main() {
	logger, closeLog, err := logging.OpenFile(logging.DefaultFile, logging.Options{Level: "info"})
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging disabled:", err)
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("fatal panic in main", "panic", r)
			closeLog()
			os.Exit(1)
		}
	}()

	app := tview.NewApplication()
	u := buildUI(app, logger)
	app.SetRoot(u.pages, true)

	// Showing the first screen only sets focus and the front page, both of
	// which are safe before the event loop starts.
	u.ctrl.Start()

	logger.Info("starting", "screen", u.ctrl.Nav.Current().String())
	if err := app.Run(); err != nil {
		logger.Error("application error", "err", err)
		closeLog()
		fmt.Fprintln(os.Stderr, "Application error:", err)
		os.Exit(1)
	}
	logger.Info("stopped")
	closeLog()
}
