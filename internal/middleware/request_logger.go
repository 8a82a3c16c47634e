package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestLogger is a Fiber middleware that tags every request with an ID and
// logs when it starts and how it ended.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDHeader, requestID)
		c.Locals("request_id", requestID)

		method, path := c.Method(), c.Path()
		log.Printf("Request %s: %s %s started", requestID, method, path)

		// Errors are rendered here so the logged status is the one sent.
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				log.Printf("Request %s: %s %s failed after %dms: %v",
					requestID, method, path, time.Since(start).Milliseconds(), err)
				return err
			}
		}

		log.Printf("Request %s: %s %s completed in %dms with status %d",
			requestID, method, path, time.Since(start).Milliseconds(), c.Response().StatusCode())
		return nil
	}
}
