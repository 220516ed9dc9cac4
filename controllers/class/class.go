package classController

import (
	"strconv"

	"craftopia/middleware"
	"craftopia/models"
	"craftopia/repository"

	"github.com/gofiber/fiber/v2"
)

// PopularLimit caps the public "popular classes" listing.
const PopularLimit = 6

type ClassController struct {
	Classes repository.ClassRepository
}

func NewClassController(classes repository.ClassRepository) *ClassController {
	return &ClassController{Classes: classes}
}

// CreateClass stores an instructor's posting. The status field is stored as
// supplied; the admin review flow moves it between pending, approved and
// denied.
func (ctl *ClassController) CreateClass(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedClass").(*struct {
		Name            string  `json:"name"`
		Image           string  `json:"image"`
		InstructorName  string  `json:"instructorName"`
		InstructorEmail string  `json:"instructorEmail"`
		Price           float64 `json:"price"`
		AvailableSeats  int     `json:"availableSeats"`
		Status          string  `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	class := models.Class{
		Name:            reqData.Name,
		Image:           reqData.Image,
		InstructorName:  reqData.InstructorName,
		InstructorEmail: reqData.InstructorEmail,
		Price:           reqData.Price,
		AvailableSeats:  reqData.AvailableSeats,
		Status:          reqData.Status,
	}

	if err := ctl.Classes.Create(&class); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class created successfully!", class)
}

func (ctl *ClassController) ListByInstructor(c *fiber.Ctx) error {
	email := c.Params("email")

	classes, err := ctl.Classes.FindByInstructor(email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

func (ctl *ClassController) ListAll(c *fiber.Ctx) error {
	classes, err := ctl.Classes.FindAll()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

func (ctl *ClassController) ListApproved(c *fiber.Ctx) error {
	classes, err := ctl.Classes.FindApproved()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

func (ctl *ClassController) ListPopular(c *fiber.Ctx) error {
	classes, err := ctl.Classes.FindTopEnrolled(PopularLimit)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

// UpdateClass applies the admin's sparse update: only fields present in the
// request are written, anything absent keeps its prior value.
func (ctl *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class id!", nil)
	}

	reqData, ok := c.Locals("validatedClassUpdate").(*struct {
		Status   *string `json:"status"`
		Clicked  *bool   `json:"clicked"`
		Feedback *string `json:"feedback"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	fields := make(map[string]interface{})
	if reqData.Status != nil {
		fields["status"] = *reqData.Status
	}
	if reqData.Clicked != nil {
		fields["clicked"] = *reqData.Clicked
	}
	if reqData.Feedback != nil {
		fields["feedback"] = *reqData.Feedback
	}
	if len(fields) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Nothing to update!", nil)
	}

	rows, err := ctl.Classes.UpdateFields(uint(id), fields)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class!", nil)
	}
	if rows == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class updated successfully!", fiber.Map{
		"modifiedCount": rows,
	})
}
