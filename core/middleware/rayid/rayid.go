// Package rayid tags every incoming request with a unique ray id.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Local is the fiber context locals key carrying the ray id.
const Local = "ray_id"

// Header is the response header exposing the ray id to clients.
const Header = "X-Ray-Id"

// New returns a middleware that assigns a ray id to each request and echoes
// it in the response, so client reports can be matched to server logs.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals(Local, id)
		c.Set(Header, id)
		return c.Next()
	}
}
