package selectionController

import (
	"craftopia/middleware"
	"craftopia/models"
	"craftopia/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SelectionController struct {
	Selections repository.SelectionRepository
}

func NewSelectionController(selections repository.SelectionRepository) *SelectionController {
	return &SelectionController{Selections: selections}
}

// CreateSelection inserts a cart entry for the caller. There is no
// uniqueness check; selecting the same class twice yields two rows.
func (ctl *SelectionController) CreateSelection(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized Access!", nil)
	}

	reqData, ok := c.Locals("validatedSelection").(*struct {
		ClassID   uint    `json:"classId"`
		ClassName string  `json:"className"`
		Image     string  `json:"image"`
		Price     float64 `json:"price"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	selection := models.SelectedClass{
		Ref:          uuid.NewString(),
		StudentEmail: email,
		ClassID:      reqData.ClassID,
		ClassName:    reqData.ClassName,
		Image:        reqData.Image,
		Price:        reqData.Price,
	}

	if err := ctl.Selections.Create(&selection); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to select class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class selected successfully!", selection)
}

// ListSelections returns every pending selection, not just the caller's.
func (ctl *SelectionController) ListSelections(c *fiber.Ctx) error {
	selections, err := ctl.Selections.FindAll()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch selections!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Selections fetched successfully!", selections)
}

// RemoveSelection deletes by numeric id or by ref; both addressing forms are
// supported.
func (ctl *SelectionController) RemoveSelection(c *fiber.Ctx) error {
	id := c.Params("id")

	rows, err := ctl.Selections.DeleteByIdentifier(id)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove selection!", nil)
	}
	if rows == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Selection not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Selection removed successfully!", fiber.Map{
		"deletedCount": rows,
	})
}
