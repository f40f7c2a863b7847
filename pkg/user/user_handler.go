package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Lilia-Brown/expensy-api/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// UserDTO is the response shape of a user. The password hash is deliberately
// absent: it never leaves the service.
type UserDTO struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username,omitempty"`
	UserImageURL string    `json:"userImageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type registrationDTO struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Username     string `json:"username"`
	UserImageURL string `json:"userImageUrl"`
}

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{userService}
}

// CreateUser handles POST /users (sign up). No authentication required.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new user")

	var dto registrationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if dto.Email == "" || dto.Password == "" {
		rest.Error(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	created, err := h.userService.Register(r.Context(), Registration{
		Email:        dto.Email,
		Password:     dto.Password,
		Username:     dto.Username,
		UserImageURL: dto.UserImageURL,
	})
	if errors.Is(err, ErrEmailExists) {
		rest.Error(w, http.StatusConflict, "User with this email already exists.")
		return
	} else if err != nil {
		log.Errorf("failed to create user: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Failed to create user.")
		return
	}

	rest.JSON(w, http.StatusCreated, ToDTO(created))
}

// GetUser handles GET /users/{id}. A caller may only view their own profile.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	callerId, err := CurrentId(r.Context())
	if err != nil {
		rest.Error(w, http.StatusUnauthorized, "Unauthorized: User ID not found.")
		return
	}
	if callerId != id {
		rest.Error(w, http.StatusForbidden, "Not authorized to view this profile.")
		return
	}

	found, err := h.userService.GetUser(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		rest.Error(w, http.StatusNotFound, "User not found.")
		return
	} else if err != nil {
		log.Errorf("failed to fetch user: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Failed to fetch user.")
		return
	}

	rest.JSON(w, http.StatusOK, ToDTO(found))
}

// ToDTO strips the password hash and maps a User to its response shape.
func ToDTO(user User) UserDTO {
	return UserDTO{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		UserImageURL: user.UserImageURL,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
