package utils

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// DecodeParam reads a path parameter and percent-decodes it. Korean station
// names arrive URL-encoded and fiber leaves params raw.
func DecodeParam(c *fiber.Ctx, name string) (string, error) {
	return url.PathUnescape(c.Params(name))
}
