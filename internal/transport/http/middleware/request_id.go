package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDLocal = "request_id"

type requestIDKey struct{}

// RequestID reuses the inbound header value when present, otherwise it mints
// a UUID. The id is echoed back on the response under the same header.
func RequestID(header string) fiber.Handler {
	if header == "" {
		header = fiber.HeaderXRequestID
	}
	return func(c *fiber.Ctx) error {
		reqID := c.Get(header)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Locals(requestIDLocal, reqID)
		c.SetUserContext(context.WithValue(c.UserContext(), requestIDKey{}, reqID))
		c.Set(header, reqID)
		return c.Next()
	}
}

func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDLocal).(string); ok {
		return id
	}
	return ""
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
