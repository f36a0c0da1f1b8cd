package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"adopta-gatos/internal/domain"
	"adopta-gatos/internal/service"
)

const sessionClaimKey = "session_claim"

// RouteGuard decide por request si el path exige sesión válida. Es una
// función pura sobre (path, cookie): no guarda estado mutable compartido.
type RouteGuard struct {
	auth        *service.AuthService
	cookie      *SessionCookie
	publicPaths []string
	protected   []string
	loginPath   string
	defaultDeny bool
}

func NewRouteGuard(auth *service.AuthService, cookie *SessionCookie, publicPaths, protectedPrefixes []string, loginPath string, defaultDeny bool) *RouteGuard {
	if loginPath == "" {
		loginPath = "/admin/login"
	}
	return &RouteGuard{
		auth:        auth,
		cookie:      cookie,
		publicPaths: publicPaths,
		protected:   protectedPrefixes,
		loginPath:   loginPath,
		defaultDeny: defaultDeny,
	}
}

// isPublic matchea exacto o por prefijo con barra final.
func (g *RouteGuard) isPublic(path string) bool {
	for _, p := range g.publicPaths {
		if path == p || strings.HasPrefix(path, strings.TrimSuffix(p, "/")+"/") {
			return true
		}
	}
	return false
}

func (g *RouteGuard) isProtected(path string) bool {
	for _, p := range g.protected {
		if path == p || strings.HasPrefix(path, strings.TrimSuffix(p, "/")+"/") {
			return true
		}
	}
	return false
}

// Middleware aplica la decisión del guard a cada request entrante.
func (g *RouteGuard) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if g.isPublic(path) || path == g.loginPath {
			c.Next()
			return
		}

		if !g.isProtected(path) {
			// Paths fuera de ambas listas: permitidos salvo default-deny.
			if g.defaultDeny {
				c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				c.Abort()
				return
			}
			c.Next()
			return
		}

		token, ok := g.cookie.Read(c)
		if !ok {
			c.Redirect(http.StatusFound, g.loginPath)
			c.Abort()
			return
		}

		claim, valid := g.auth.VerifySession(token)
		if !valid {
			// Cookie presente pero token inválido: limpiar antes de redirigir.
			g.cookie.Clear(c)
			c.Redirect(http.StatusFound, g.loginPath)
			c.Abort()
			return
		}

		c.Set(sessionClaimKey, claim)
		c.Next()
	}
}

// SessionClaim obtiene la identidad decodificada que dejó el guard.
func SessionClaim(c *gin.Context) (domain.IdentityClaim, bool) {
	val, ok := c.Get(sessionClaimKey)
	if !ok {
		return domain.IdentityClaim{}, false
	}
	claim, ok := val.(domain.IdentityClaim)
	return claim, ok
}
