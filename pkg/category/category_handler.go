package category

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Lilia-Brown/expensy-api/internal/rest"
	log "github.com/sirupsen/logrus"
)

type CategoryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	IsDefault   bool   `json:"isDefault"`
}

type Handler struct {
	categoryService Service
}

func NewHandler(categoryService Service) *Handler {
	return &Handler{categoryService}
}

// GetAll handles GET /categories, ordered by name.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.GetAll(r.Context())
	if err != nil {
		log.Errorf("failed to fetch categories: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Failed to fetch categories.")
		return
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, toDTO(category))
	}
	rest.JSON(w, http.StatusOK, dtos)
}

// Create handles POST /categories.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if dto.Name == "" {
		rest.Error(w, http.StatusBadRequest, "Category name is required.")
		return
	}

	created, err := h.categoryService.Create(r.Context(), Category{
		Name:        dto.Name,
		Description: dto.Description,
		Icon:        dto.Icon,
		Color:       dto.Color,
		IsDefault:   dto.IsDefault,
	})
	if errors.Is(err, ErrNameExists) {
		rest.Error(w, http.StatusConflict, "Category with this name already exists.")
		return
	} else if err != nil {
		log.Errorf("failed to create category: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Failed to create category.")
		return
	}

	rest.JSON(w, http.StatusCreated, toDTO(created))
}

func toDTO(category Category) CategoryDTO {
	return CategoryDTO{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Icon:        category.Icon,
		Color:       category.Color,
		IsDefault:   category.IsDefault,
	}
}
