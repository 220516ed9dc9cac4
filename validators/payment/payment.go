package paymentValidator

import (
	"craftopia/middleware"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateIntent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Price float64 `json:"price"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Price
		if reqData.Price <= 0 {
			errors["price"] = "Price must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedIntent", reqData)
		return c.Next()
	}
}

func CompletePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClassID         string          `json:"classId"`
			ClassName       string          `json:"className"`
			Amount          float64         `json:"amount"`
			TransactionID   string          `json:"transactionId"`
			GatewayResponse json.RawMessage `json:"gatewayResponse"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate ClassID
		if strings.TrimSpace(reqData.ClassID) == "" {
			errors["classId"] = "Class id is required!"
		}

		// Validate Amount
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
