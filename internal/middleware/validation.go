package middleware

import (
	"github.com/gofiber/fiber/v2"

	"craftify/internal/domain"
	"craftify/internal/validation"
)

const validatedBodyKey = "validated_body"

// ValidateBody decodes the JSON body into T, validates it and stores it for
// the handler. Failures go to the ErrorHandler as INVALID_INPUT.
func ValidateBody[T any](v *validation.Validator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if err := c.App().Config().JSONDecoder(c.Body(), req); err != nil {
			return domain.NewInvalidInputError([]string{"request body must be a JSON object"})
		}
		if err := v.Struct(req); err != nil {
			return err
		}

		c.Locals(validatedBodyKey, req)
		return c.Next()
	}
}

// ValidatedBody returns the body stored by ValidateBody, or nil when the
// route was registered without it.
func ValidatedBody[T any](c *fiber.Ctx) *T {
	req, _ := c.Locals(validatedBodyKey).(*T)
	return req
}
