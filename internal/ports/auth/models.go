package auth

// Operator es el administrador del refugio, autenticado con el par de la config.
type Operator struct {
	Username string
}
