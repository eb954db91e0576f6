package handler

import (
	"strconv"

	"meshitomo/internal/service"
	"meshitomo/pkg/jwt"
	"meshitomo/pkg/response"

	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	service *service.ShopService
}

func NewShopHandler(s *service.ShopService) *ShopHandler {
	return &ShopHandler{service: s}
}

// Search filters the catalog by budget, distance code and genre. When the
// request carries a valid session, each row is annotated with is_favorite.
func (h *ShopHandler) Search(c *gin.Context) {
	req := service.SearchRequest{
		Distance: c.Query("distance"),
		Genres:   c.QueryArray("genre"),
		UserID:   jwt.GetUserID(c),
	}

	if raw := c.Query("budget"); raw != "" {
		budget, err := strconv.Atoi(raw)
		if err != nil || budget < 0 {
			response.BadRequest(c, "invalid budget")
			return
		}
		req.Budget = budget
	}

	results, err := h.service.Search(req)
	if err != nil {
		response.InternalError(c, "shop search failed")
		return
	}
	response.Success(c, gin.H{"shops": results})
}

// ListAll returns the whole catalog.
func (h *ShopHandler) ListAll(c *gin.Context) {
	shops, err := h.service.ListAll()
	if err != nil {
		response.InternalError(c, "shop lookup failed")
		return
	}
	response.Success(c, gin.H{"shops": shops})
}
