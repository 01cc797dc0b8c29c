package models

import "fmt"

// Display text. The app ships in Spanish.
const (
	AppTitle = " Login Advance "

	UsernameLabel = "Usuario"
	PasswordLabel = "Contraseña"
	SubmitLabel   = "Ingresar"

	LogoutLabel = "Cerrar Sesión"

	DeniedTitle   = "Acceso Denegado"
	DeniedMessage = "Usuario o contraseña incorrectos"
	BackLabel     = "Regresar"
)

// SuccessActions and DeniedActions label the buttons that are not implemented.
var (
	SuccessActions = []string{"Ver Perfil", "Configuración", "Notificaciones"}
	DeniedActions  = []string{"Registrarse", "Olvidé mi contraseña"}
)

// WelcomeText returns the success headline for username.
func WelcomeText(username string) string {
	return fmt.Sprintf("¡Bienvenido %s!", username)
}
