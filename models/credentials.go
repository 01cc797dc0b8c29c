package models

// Credentials is a username/password pair.
type Credentials struct {
	Username string
	Password string
}

// AdminCredentials is the only pair that grants access.
var AdminCredentials = Credentials{Username: "Admin", Password: "Admin"}

// Matches reports whether username and password are exactly equal to c.
// The comparison is case-sensitive and empty strings get no special treatment.
func (c Credentials) Matches(username, password string) bool {
	return username == c.Username && password == c.Password
}
