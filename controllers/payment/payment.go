package paymentController

import (
	"encoding/json"
	"log"
	"math"
	"strconv"
	"time"

	"craftopia/gateway"
	"craftopia/middleware"
	"craftopia/models"
	"craftopia/repository"
	"craftopia/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type PaymentController struct {
	Payments   repository.PaymentRepository
	Selections repository.SelectionRepository
	Classes    repository.ClassRepository
	Gateway    gateway.IntentCreator
}

func NewPaymentController(
	payments repository.PaymentRepository,
	selections repository.SelectionRepository,
	classes repository.ClassRepository,
	gw gateway.IntentCreator,
) *PaymentController {
	return &PaymentController{
		Payments:   payments,
		Selections: selections,
		Classes:    classes,
		Gateway:    gw,
	}
}

// CreateIntent asks the card processor for a payment intent covering the
// class price. Price arrives in dollars, the processor wants cents.
func (ctl *PaymentController) CreateIntent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIntent").(*struct {
		Price float64 `json:"price"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	amountCents := int64(math.Round(reqData.Price * 100))

	intent, err := ctl.Gateway.CreateIntent(amountCents, "usd")
	if err != nil {
		log.Printf("Failed to create payment intent: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment intent!", nil)
	}

	// The raw intent payload rides along so the client can hand it back on
	// /payments, where it lands on the ledger row.
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment intent created!", fiber.Map{
		"clientSecret": intent.ClientSecret,
		"intent":       json.RawMessage(intent.Raw),
	})
}

// CompletePayment converts a selection into an enrollment: it records the
// ledger row, drops the caller's matching selection(s) and bumps the class
// counters. The three writes run as a best-effort sequence with no
// transaction and no rollback; a failed later step leaves the earlier writes
// in place. The seat decrement is unconditional, so concurrent payments for
// the same class can race. Callers get all three sub-results back.
func (ctl *PaymentController) CompletePayment(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized Access!", nil)
	}

	reqData, ok := c.Locals("validatedPayment").(*struct {
		ClassID         string          `json:"classId"`
		ClassName       string          `json:"className"`
		Amount          float64         `json:"amount"`
		TransactionID   string          `json:"transactionId"`
		GatewayResponse json.RawMessage `json:"gatewayResponse"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// The class may be addressed by its numeric id or by a selection ref;
	// resolve the numeric id up front (reads only, write order is preserved).
	classID, resolved := ctl.resolveClassID(reqData.ClassID)

	payment := models.Payment{
		StudentEmail:    email,
		ClassID:         reqData.ClassID,
		ClassName:       reqData.ClassName,
		Amount:          reqData.Amount,
		TransactionID:   reqData.TransactionID,
		Date:            time.Now(),
		GatewayResponse: datatypes.JSON(reqData.GatewayResponse),
	}

	if err := ctl.Payments.Create(&payment); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	var deleted int64
	if resolved {
		var err error
		deleted, err = ctl.Selections.DeleteForEnrollment(classID, email)
		if err != nil {
			log.Printf("Failed to remove selection for class %s: %v", reqData.ClassID, err)
		}
	}

	var modified int64
	if resolved {
		class, err := ctl.Classes.FindByID(classID)
		if err != nil {
			log.Printf("Failed to load class %d for seat update: %v", classID, err)
		} else {
			modified, err = ctl.Classes.UpdateFields(classID, map[string]interface{}{
				"available_seats": class.AvailableSeats - 1,
				"total_enrolled":  class.TotalEnrolled + 1,
			})
			if err != nil {
				log.Printf("Failed to update seats for class %d: %v", classID, err)
			}
		}
	}

	if err := utils.SendEnrollmentReceipt(email, payment.ClassName, payment.Amount); err != nil {
		log.Printf("Failed to send enrollment receipt to %s: %v", email, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment completed!", fiber.Map{
		"insertedId":    payment.ID,
		"deletedCount":  deleted,
		"modifiedCount": modified,
	})
}

// resolveClassID maps the client-supplied identifier to the numeric class
// id: a decimal string is taken as the id itself, anything else is tried as
// a selection ref.
func (ctl *PaymentController) resolveClassID(id string) (uint, bool) {
	if n, err := strconv.ParseUint(id, 10, 64); err == nil {
		return uint(n), true
	}
	selection, err := ctl.Selections.FindByRef(id)
	if err != nil {
		return 0, false
	}
	return selection.ClassID, true
}

// ListPayments returns the caller's own ledger, newest first. Asking for
// another student's email is acting on someone else's resource and is
// forbidden.
func (ctl *PaymentController) ListPayments(c *fiber.Ctx) error {
	email := c.Params("email")
	caller, _ := c.Locals("email").(string)

	if caller != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Forbidden access", nil)
	}

	payments, err := ctl.Payments.FindByStudent(email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", payments)
}
