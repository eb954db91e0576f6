package handler

import (
	"errors"
	"strconv"

	"meshitomo/internal/service"
	"meshitomo/pkg/jwt"
	"meshitomo/pkg/response"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	service *service.FavoriteService
}

func NewFavoriteHandler(s *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: s}
}

// List returns the session user's favorites, newest first.
func (h *FavoriteHandler) List(c *gin.Context) {
	shops, err := h.service.List(jwt.GetUserID(c))
	if err != nil {
		response.InternalError(c, "favorite lookup failed")
		return
	}
	response.Success(c, gin.H{"shops": shops})
}

// Sync replaces the whole favorite set.
func (h *FavoriteHandler) Sync(c *gin.Context) {
	type req struct {
		ShopIDs []int `json:"shop_ids"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Sync(jwt.GetUserID(c), r.ShopIDs); err != nil {
		if errors.Is(err, service.ErrStorage) {
			response.InternalError(c, "favorite sync failed")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.SuccessWithMessage(c, "favorites synced", nil)
}

// Diff applies an added/removed delta to the favorite set.
func (h *FavoriteHandler) Diff(c *gin.Context) {
	type req struct {
		Added   []int `json:"added"`
		Removed []int `json:"removed"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.UpdateDiff(jwt.GetUserID(c), r.Added, r.Removed); err != nil {
		if errors.Is(err, service.ErrStorage) {
			response.InternalError(c, "favorite update failed")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.SuccessWithMessage(c, "favorites updated", nil)
}

// Remove deletes one favorite.
func (h *FavoriteHandler) Remove(c *gin.Context) {
	shopID, err := strconv.Atoi(c.Param("shop_id"))
	if err != nil || shopID <= 0 {
		response.BadRequest(c, "invalid shop id")
		return
	}

	if err := h.service.Remove(jwt.GetUserID(c), shopID); err != nil {
		response.InternalError(c, "favorite removal failed")
		return
	}
	response.SuccessWithMessage(c, "favorite removed", nil)
}
