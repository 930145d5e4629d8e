package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-client/internal/adapters/http/dto"
)

// NavHandler serves the navigation routes that exist only as placeholders.
type NavHandler struct{}

// NewNavHandler creates a NavHandler.
func NewNavHandler() *NavHandler {
	return &NavHandler{}
}

// Login handles GET /login.
func (h *NavHandler) Login(w http.ResponseWriter, r *http.Request) {
	dto.WriteProblem(w, r, http.StatusNotImplemented, "the login page is not available")
}

// Register handles GET /register.
func (h *NavHandler) Register(w http.ResponseWriter, r *http.Request) {
	dto.WriteProblem(w, r, http.StatusNotImplemented, "the register page is not available")
}
