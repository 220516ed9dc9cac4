package userController

import (
	"strconv"

	"craftopia/middleware"
	"craftopia/models"
	"craftopia/repository"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Users repository.UserRepository
}

func NewUserController(users repository.UserRepository) *UserController {
	return &UserController{Users: users}
}

// Register creates a user on first sight of an email. A repeat registration
// is reported as informational, not as a failure, and never writes a second
// row.
func (ctl *UserController) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Photo string `json:"photo"`
		Role  string `json:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if _, err := ctl.Users.FindByEmail(reqData.Email); err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "The User already exists", nil)
	}

	user := models.User{
		Name:  reqData.Name,
		Email: reqData.Email,
		Photo: reqData.Photo,
		Role:  reqData.Role,
	}

	if err := ctl.Users.Create(&user); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User registered successfully!", user)
}

func (ctl *UserController) ListUsers(c *fiber.Ctx) error {
	users, err := ctl.Users.FindAll()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

func (ctl *UserController) ListInstructors(c *fiber.Ctx) error {
	instructors, err := ctl.Users.FindByRole("instructor")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch instructors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructors fetched successfully!", instructors)
}

func (ctl *UserController) UpdateRole(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	reqData, ok := c.Locals("validatedRole").(*struct {
		Role    string `json:"role"`
		Clicked bool   `json:"clicked"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	rows, err := ctl.Users.UpdateRole(uint(id), reqData.Role, reqData.Clicked)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}
	if rows == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated successfully!", fiber.Map{
		"modifiedCount": rows,
	})
}

// CheckAdmin answers "is this email an admin". Only the caller's own email
// may be asked about; any other email answers false without touching the
// store.
func (ctl *UserController) CheckAdmin(c *fiber.Ctx) error {
	email := c.Params("email")
	caller, _ := c.Locals("email").(string)

	if caller != email {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Role checked!", fiber.Map{
			"admin": false,
		})
	}

	user, err := ctl.Users.FindByEmail(email)
	isAdmin := err == nil && user.Role == "admin"

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role checked!", fiber.Map{
		"admin": isAdmin,
	})
}

// CheckInstructor mirrors CheckAdmin for the instructor role.
func (ctl *UserController) CheckInstructor(c *fiber.Ctx) error {
	email := c.Params("email")
	caller, _ := c.Locals("email").(string)

	if caller != email {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Role checked!", fiber.Map{
			"instructor": false,
		})
	}

	user, err := ctl.Users.FindByEmail(email)
	isInstructor := err == nil && user.Role == "instructor"

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role checked!", fiber.Map{
		"instructor": isInstructor,
	})
}
