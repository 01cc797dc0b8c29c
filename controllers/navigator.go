package controllers

import "loginadvance/models"

// AuthNavigator decides which screen follows a login attempt.
// It runs on the UI event loop only and holds no lock.
type AuthNavigator struct {
	creds   models.Credentials
	current models.Screen
}

func NewAuthNavigator() *AuthNavigator {
	return &AuthNavigator{
		creds:   models.AdminCredentials,
		current: models.LoginScreen(),
	}
}

// AttemptLogin replaces the current screen with Success(username) when the
// pair matches the admin credentials, and with Denied otherwise.
func (n *AuthNavigator) AttemptLogin(username, password string) models.Screen {
	if n.creds.Matches(username, password) {
		n.current = models.SuccessScreen(username)
	} else {
		n.current = models.DeniedScreen()
	}
	return n.current
}

// ReturnToLogin always yields Login and drops any username.
func (n *AuthNavigator) ReturnToLogin() models.Screen {
	n.current = models.LoginScreen()
	return n.current
}

func (n *AuthNavigator) Current() models.Screen {
	return n.current
}
