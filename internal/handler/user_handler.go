package handler

import (
	"errors"

	"meshitomo/internal/service"
	"meshitomo/pkg/jwt"
	"meshitomo/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Register creates a new account.
func (h *UserHandler) Register(c *gin.Context) {
	type req struct {
		UserName string `json:"user_name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, token, err := h.service.Register(r.UserName, r.Email, r.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			response.Conflict(c, err.Error())
		case errors.Is(err, service.ErrIDCapacity):
			response.Conflict(c, err.Error())
		case errors.Is(err, service.ErrStorage):
			response.InternalError(c, "registration failed")
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	response.SuccessWithMessage(c, "registered", &response.RegisterResponse{
		User:        response.FilterUserInfo(user),
		AccessToken: token,
	})
}

// Login authenticates with email or user id plus password.
func (h *UserHandler) Login(c *gin.Context) {
	type req struct {
		LoginID  string `json:"login_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, token, err := h.service.Login(r.LoginID, r.Password)
	if err != nil {
		if errors.Is(err, service.ErrStorage) {
			response.InternalError(c, "login failed")
			return
		}
		response.Unauthorized(c, err.Error())
		return
	}

	response.SuccessWithMessage(c, "logged in", &response.LoginResponse{
		User:        response.FilterUserInfo(user),
		AccessToken: token,
	})
}

// GetProfile returns the session user's profile with the icon address.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := jwt.GetUserID(c)

	user, err := h.service.GetByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "profile lookup failed")
		return
	}

	iconAddress, err := h.service.IconAddress(user.ProfilePhotoID)
	if err != nil {
		response.InternalError(c, "profile lookup failed")
		return
	}

	response.Success(c, gin.H{
		"user":         response.FilterUserInfo(user),
		"icon_address": iconAddress,
	})
}

// UpdateUserName changes the display name.
func (h *UserHandler) UpdateUserName(c *gin.Context) {
	type req struct {
		UserName string `json:"user_name" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.UpdateUserName(jwt.GetUserID(c), r.UserName); err != nil {
		if errors.Is(err, service.ErrStorage) {
			response.InternalError(c, "name update failed")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.SuccessWithMessage(c, "name updated", nil)
}

// UpdateEmail changes the email address.
func (h *UserHandler) UpdateEmail(c *gin.Context) {
	type req struct {
		Email string `json:"email" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.UpdateEmail(jwt.GetUserID(c), r.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			response.Conflict(c, err.Error())
		case errors.Is(err, service.ErrStorage):
			response.InternalError(c, "email update failed")
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}
	response.SuccessWithMessage(c, "email updated", nil)
}

// UpdatePassword changes the password after verifying the current one.
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	type req struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.UpdatePassword(jwt.GetUserID(c), r.CurrentPassword, r.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, "current password is incorrect")
		case errors.Is(err, service.ErrStorage):
			response.InternalError(c, "password update failed")
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}
	response.SuccessWithMessage(c, "password updated", nil)
}

// UpdateProfilePhoto sets or clears the profile photo id.
func (h *UserHandler) UpdateProfilePhoto(c *gin.Context) {
	type req struct {
		ProfilePhotoID *int `json:"profile_photo_id"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.UpdateProfilePhoto(jwt.GetUserID(c), r.ProfilePhotoID); err != nil {
		response.InternalError(c, "profile photo update failed")
		return
	}
	response.SuccessWithMessage(c, "profile photo updated", nil)
}

// SearchUsers finds users by keyword for the friend-add screen.
func (h *UserHandler) SearchUsers(c *gin.Context) {
	users, err := h.service.SearchUsers(c.Query("keyword"))
	if err != nil {
		response.InternalError(c, "user search failed")
		return
	}
	response.Success(c, gin.H{"users": users})
}
