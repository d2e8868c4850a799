package handler

import (
	"log"
	"net/http"

	"charity-events/internal/dto"
	"charity-events/internal/service"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	svc service.CategoryService
}

func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/categories", h.ListCategories)
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.svc.ListCategories(c.Request().Context())
	if err != nil {
		log.Printf("categories: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Server error: Failed to load categories")
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, dto.ToCategoryResponse(&categories[i]))
	}

	return c.JSON(http.StatusOK, resp)
}
