package context

import (
	"plantcare/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for storing the verified session identity in echo.Context.
const KeyIdentity ContextKey = "identity"

// SetIdentity stores the verified identity of the request.
func SetIdentity(c echo.Context, identity *service.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the identity set by the auth middleware.
func GetIdentity(c echo.Context) (*service.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(*service.Identity)

	return identity, ok && identity != nil
}
