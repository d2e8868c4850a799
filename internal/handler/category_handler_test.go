package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"charity-events/internal/dto"
	"charity-events/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type mockCategoryService struct {
	listFn func(ctx context.Context) ([]models.Category, error)
}

func (m *mockCategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return m.listFn(ctx)
}

func TestListCategories_Handler_Success(t *testing.T) {
	svc := &mockCategoryService{
		listFn: func(ctx context.Context) ([]models.Category, error) {
			return []models.Category{
				{ID: 3, Name: "Animals"},
				{ID: 1, Name: "Health"},
			}, nil
		},
	}

	c, rec := newContext(t, "/api/categories")
	assert.NoError(t, NewCategoryHandler(svc).ListCategories(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.CategoryResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "Animals", resp[0].Name)
	assert.Equal(t, uint(1), resp[1].ID)
}

func TestListCategories_Handler_Error(t *testing.T) {
	svc := &mockCategoryService{
		listFn: func(ctx context.Context) ([]models.Category, error) {
			return nil, errors.New("db error")
		},
	}

	c, _ := newContext(t, "/api/categories")
	err := NewCategoryHandler(svc).ListCategories(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
	assert.Equal(t, "Server error: Failed to load categories", he.Message)
}
