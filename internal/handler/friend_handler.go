package handler

import (
	"errors"
	"strconv"

	"meshitomo/internal/service"
	"meshitomo/pkg/jwt"
	"meshitomo/pkg/response"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	service *service.FriendshipService
}

func NewFriendHandler(s *service.FriendshipService) *FriendHandler {
	return &FriendHandler{service: s}
}

// Add creates a friendship between the session user and friend_id.
func (h *FriendHandler) Add(c *gin.Context) {
	type req struct {
		FriendID int `json:"friend_id" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Create(jwt.GetUserID(c), r.FriendID); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFriendship):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrAlreadyFriends):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, "friendship creation failed")
		}
		return
	}
	response.SuccessWithMessage(c, "friend added", nil)
}

// Remove deletes the friendship with friend_id.
func (h *FriendHandler) Remove(c *gin.Context) {
	friendID, err := strconv.Atoi(c.Param("friend_id"))
	if err != nil || friendID <= 0 {
		response.BadRequest(c, "invalid friend id")
		return
	}

	if err := h.service.Delete(jwt.GetUserID(c), friendID); err != nil {
		if errors.Is(err, service.ErrSelfFriendship) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "friendship removal failed")
		return
	}
	response.SuccessWithMessage(c, "friend removed", nil)
}

// List returns the ids of the session user's friends.
func (h *FriendHandler) List(c *gin.Context) {
	friendIDs, err := h.service.Friends(jwt.GetUserID(c))
	if err != nil {
		response.InternalError(c, "friend lookup failed")
		return
	}
	response.Success(c, gin.H{"friend_ids": friendIDs})
}

// Check reports whether the session user and friend_id are friends.
func (h *FriendHandler) Check(c *gin.Context) {
	friendID, err := strconv.Atoi(c.Param("friend_id"))
	if err != nil || friendID <= 0 {
		response.BadRequest(c, "invalid friend id")
		return
	}

	exists, err := h.service.Exists(jwt.GetUserID(c), friendID)
	if err != nil {
		response.InternalError(c, "friendship check failed")
		return
	}
	response.Success(c, gin.H{"friends": exists})
}
