package paymentRoutes

import (
	paymentController "craftopia/controllers/payment"
	"craftopia/middleware"
	paymentValidator "craftopia/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App, ctl *paymentController.PaymentController) {
	app.Post("/create-payment-intent", middleware.JWTMiddleware, paymentValidator.CreateIntent(), ctl.CreateIntent)
	app.Post("/payments", middleware.JWTMiddleware, paymentValidator.CompletePayment(), ctl.CompletePayment)
	app.Get("/payments/:email", middleware.JWTMiddleware, ctl.ListPayments)
}
