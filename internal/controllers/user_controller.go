package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/linkup-api/internal/models"
	"github.com/franciscosanchezn/linkup-api/internal/services"
)

type UserController struct {
	userService services.UserService
}

func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

type createUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// CreateUser godoc
// @Summary Register a user
// @Description Stores the user unless the email is already registered. The role is always "user".
// @Tags users
// @Accept json
// @Produce json
// @Param user body createUserRequest true "User"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.MessageResponse
// @Failure 500 {object} models.MessageResponse
// @Router /users [post]
func (uc *UserController) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewMessage("Invalid request body"))
		return
	}

	// role is never taken from the client; only an admin can promote
	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     models.RoleUser,
	}

	created, err := uc.userService.CreateUser(c.Request.Context(), user)
	if err != nil {
		storageFailure(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists", "insertedId": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": user.ID})
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} models.MessageResponse
// @Failure 403 {object} models.MessageResponse
// @Security BearerAuth
// @Router /users [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.userService.ListUsers(c.Request.Context())
	if err != nil {
		storageFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin godoc
// @Summary Check admin status
// @Description Reports whether the caller (whose email must match the path) is an admin
// @Tags users
// @Produce json
// @Param email path string true "Caller email"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} models.MessageResponse
// @Security BearerAuth
// @Router /users/admin/{email} [get]
func (uc *UserController) CheckAdmin(c *gin.Context) {
	user, found, err := uc.userService.FindUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		storageFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": found && user.IsAdmin()})
}

// MakeAdmin godoc
// @Summary Promote a user to admin
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.MessageResponse
// @Security BearerAuth
// @Router /users/admin/{id} [patch]
func (uc *UserController) MakeAdmin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := uc.userService.SetRole(c.Request.Context(), id, models.RoleAdmin); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.NewMessage("User not found"))
			return
		}
		storageFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "matchedCount": 1, "modifiedCount": 1})
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.MessageResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := uc.userService.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.NewMessage("User not found"))
			return
		}
		storageFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": 1})
}
