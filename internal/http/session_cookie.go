package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookie es el único componente que toca el carrier de credenciales
// a nivel transporte.
type SessionCookie struct {
	name     string
	maxAge   int
	secure   bool
	sameSite http.SameSite
}

func NewSessionCookie(name string, maxAgeSeconds int, secure bool) *SessionCookie {
	if name == "" {
		name = "auth-token"
	}
	return &SessionCookie{
		name:     name,
		maxAge:   maxAgeSeconds,
		secure:   secure,
		sameSite: http.SameSiteStrictMode,
	}
}

// Write setea la cookie de sesión con el token firmado.
func (s *SessionCookie) Write(c *gin.Context, token string) {
	c.SetSameSite(s.sameSite)
	c.SetCookie(s.name, token, s.maxAge, "/", "", s.secure, true)
}

// Read devuelve el token de la cookie, o false si no está presente.
func (s *SessionCookie) Read(c *gin.Context) (string, bool) {
	token, err := c.Cookie(s.name)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// Clear sobrescribe la cookie con valor vacío y expiración en el pasado.
// Idempotente: es seguro llamarla sin sesión activa.
func (s *SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(s.sameSite)
	c.SetCookie(s.name, "", -1, "/", "", s.secure, true)
}
