package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const DefaultOrigin = "http://localhost:3000"

// CORSMiddlewares allows the dashboard frontends in origins, or DefaultOrigin
// when none are configured.
func CORSMiddlewares(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     originsOrDefault(origins),
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Sec-WebSocket-Protocol", "Upgrade"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// CheckOrigin reports whether a WebSocket upgrade comes from an allowed
// frontend. Browsers do not apply CORS to upgrades, so the handshake checks
// the Origin header itself. Requests without one are not from a browser.
func CheckOrigin(origins []string) func(*http.Request) bool {
	allowed := originsOrDefault(origins)
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == origin {
				return true
			}
		}
		return false
	}
}

func originsOrDefault(origins []string) []string {
	if len(origins) == 0 {
		return []string{DefaultOrigin}
	}
	return origins
}
