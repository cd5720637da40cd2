package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cookie describes a cookie the handlers write.
type Cookie struct {
	Name     string
	Value    string
	MaxAge   int
	Path     string
	Domain   string
	Secure   bool
	HTTPOnly bool
	SameSite http.SameSite
}

func SetCookie(ctx *gin.Context, c Cookie) {
	ctx.SetSameSite(c.SameSite)
	ctx.SetCookie(c.Name, c.Value, c.MaxAge, c.Path, c.Domain, c.Secure, c.HTTPOnly)
}

// ParseSameSite converts a config string to http.SameSite, defaulting to Lax.
func ParseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
