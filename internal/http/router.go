package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PublicPaths y ProtectedPrefixes definen la política de acceso por defecto.
var (
	PublicPaths       = []string{"/cats", "/adoptions", "/auth", "/healthz"}
	ProtectedPrefixes = []string{"/admin"}
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	guard *RouteGuard,
	authH *AuthHandler,
	catH *CatHandler,
	reqH *RequestHandler,
	healthH gin.HandlerFunc,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y CORS.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery())
	if len(corsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = corsOrigins
		corsCfg.AllowCredentials = true
		r.Use(cors.New(corsCfg))
	}
	r.Use(guard.Middleware())

	r.GET("/healthz", healthH)

	// Catálogo público y alta de solicitudes.
	r.GET("/cats", catH.ListCats)
	r.GET("/cats/:id", catH.GetCat)
	r.POST("/adoptions", reqH.SubmitRequest)

	auth := r.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/logout", authH.Logout)
	auth.GET("/session", authH.Session)

	// Panel de administración, protegido por el guard.
	admin := r.Group("/admin")
	admin.GET("/cats", catH.ListCats)
	admin.POST("/cats", catH.CreateCat)
	admin.PUT("/cats/:id", catH.UpdateCat)
	admin.DELETE("/cats/:id", catH.DeleteCat)
	admin.GET("/adoptions", reqH.ListRequests)
	admin.GET("/adoptions/:id", reqH.GetRequest)
	admin.POST("/adoptions/:id/review", reqH.ReviewRequest)
	admin.DELETE("/adoptions/:id", reqH.DeleteRequest)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
