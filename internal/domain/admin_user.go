package domain

import "time"

// AdminUser es una cuenta del panel de administración.
type AdminUser struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// IdentityClaim es el payload mínimo que viaja dentro de un token de sesión.
type IdentityClaim struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
