package handler

import (
	"errors"
	"strconv"

	"meshitomo/internal/service"
	"meshitomo/pkg/jwt"
	"meshitomo/pkg/response"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	service *service.FollowService
}

func NewFollowHandler(s *service.FollowService) *FollowHandler {
	return &FollowHandler{service: s}
}

// Follow makes the session user follow followed_id.
func (h *FollowHandler) Follow(c *gin.Context) {
	type req struct {
		FollowedID int `json:"followed_id" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Follow(jwt.GetUserID(c), r.FollowedID); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFollow):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrAlreadyFollowing):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, "follow failed")
		}
		return
	}
	response.SuccessWithMessage(c, "followed", nil)
}

// Unfollow removes the session user's follow of followed_id.
func (h *FollowHandler) Unfollow(c *gin.Context) {
	followedID, err := strconv.Atoi(c.Param("followed_id"))
	if err != nil || followedID <= 0 {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.service.Unfollow(jwt.GetUserID(c), followedID); err != nil {
		if errors.Is(err, service.ErrSelfFollow) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "unfollow failed")
		return
	}
	response.SuccessWithMessage(c, "unfollowed", nil)
}

// Following lists the users the session user follows.
func (h *FollowHandler) Following(c *gin.Context) {
	users, err := h.service.Followed(jwt.GetUserID(c))
	if err != nil {
		response.InternalError(c, "follow lookup failed")
		return
	}
	response.Success(c, gin.H{"users": users})
}

// Followers lists the users following the session user.
func (h *FollowHandler) Followers(c *gin.Context) {
	users, err := h.service.Followers(jwt.GetUserID(c))
	if err != nil {
		response.InternalError(c, "follower lookup failed")
		return
	}
	response.Success(c, gin.H{"users": users})
}

// Check reports whether the session user follows followed_id.
func (h *FollowHandler) Check(c *gin.Context) {
	followedID, err := strconv.Atoi(c.Param("followed_id"))
	if err != nil || followedID <= 0 {
		response.BadRequest(c, "invalid user id")
		return
	}

	following, err := h.service.IsFollowing(jwt.GetUserID(c), followedID)
	if err != nil {
		response.InternalError(c, "follow check failed")
		return
	}
	response.Success(c, gin.H{"following": following})
}
