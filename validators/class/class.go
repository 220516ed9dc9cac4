package classValidator

import (
	"craftopia/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func CreateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name            string  `json:"name"`
			Image           string  `json:"image"`
			InstructorName  string  `json:"instructorName"`
			InstructorEmail string  `json:"instructorEmail"`
			Price           float64 `json:"price"`
			AvailableSeats  int     `json:"availableSeats"`
			Status          string  `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Class name is required!"
		}

		// Validate InstructorEmail
		if strings.TrimSpace(reqData.InstructorEmail) == "" {
			errors["instructorEmail"] = "Instructor email is required!"
		} else if err := validate.Var(reqData.InstructorEmail, "email"); err != nil {
			errors["instructorEmail"] = "Instructor email must be a valid email address!"
		}

		// Validate Price
		if reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}

		// Validate AvailableSeats
		if reqData.AvailableSeats < 0 {
			errors["availableSeats"] = "Available seats must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClass", reqData)
		return c.Next()
	}
}

// UpdateClass parses the sparse admin update. Every field is optional; nil
// means "leave unchanged", so pointers are kept all the way to the store.
func UpdateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status   *string `json:"status"`
			Clicked  *bool   `json:"clicked"`
			Feedback *string `json:"feedback"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedClassUpdate", reqData)
		return c.Next()
	}
}
