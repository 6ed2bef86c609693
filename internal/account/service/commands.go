package service

// RegisterCommand carries the fields needed to register a user or client
// account. The password arrives in plaintext and is hashed before storage.
type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}
