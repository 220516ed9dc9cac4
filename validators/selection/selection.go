package selectionValidator

import (
	"craftopia/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateSelection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClassID   uint    `json:"classId"`
			ClassName string  `json:"className"`
			Image     string  `json:"image"`
			Price     float64 `json:"price"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate ClassID
		if reqData.ClassID == 0 {
			errors["classId"] = "Class id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSelection", reqData)
		return c.Next()
	}
}
