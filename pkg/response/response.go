package response

import (
	"net/http"

	"meshitomo/internal/model"

	"github.com/gin-gonic/gin"
)

// Response is the unified JSON envelope.
// Code 0 means success, anything else is an error code.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success writes a successful response.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage writes a successful response with a custom message.
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// Error writes an error response.
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest writes a 400-coded error.
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// Unauthorized writes a 401-coded error.
func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message)
}

// NotFound writes a 404-coded error.
func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

// Conflict writes a 409-coded error.
func Conflict(c *gin.Context, message string) {
	Error(c, 409, message)
}

// InternalError writes a 500-coded error.
func InternalError(c *gin.Context, message string) {
	Error(c, 500, message)
}

// UserInfo is the outward-facing user view with the password hash stripped.
type UserInfo struct {
	UserID         int    `json:"user_id"`
	UserName       string `json:"user_name"`
	Email          string `json:"email"`
	ProfilePhotoID *int   `json:"profile_photo_id"`
}

// FilterUserInfo converts a model.User, hiding sensitive fields.
func FilterUserInfo(user *model.User) *UserInfo {
	if user == nil {
		return nil
	}

	return &UserInfo{
		UserID:         user.UserID,
		UserName:       user.UserName,
		Email:          user.Email,
		ProfilePhotoID: user.ProfilePhotoID,
	}
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	User        *UserInfo `json:"user"`
	AccessToken string    `json:"access_token"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	User        *UserInfo `json:"user"`
	AccessToken string    `json:"access_token"`
}
