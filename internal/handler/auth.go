package handler

import (
	"net/http"

	"comanda/internal/dto"
	"comanda/internal/middleware"
	"comanda/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves credential exchange and staff account management.
type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SignIn(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SignUp(c.Request.Context(), middleware.SubjectID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOut is stateless: tokens expire on their own, there is no server-side
// revocation list.
func (h *AuthHandler) SignOut(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Authenticate reports whether the presented token is valid; reaching the
// handler means the JWT middleware already accepted it.
func (h *AuthHandler) Authenticate(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Secret echoes the subject id bound to the presented token.
func (h *AuthHandler) Secret(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SubjectResponse{ID: middleware.SubjectID(c)})
}

func (h *AuthHandler) ListEmployees(c *gin.Context) {
	resp, err := h.svc.ListEmployees(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) GetEmployee(c *gin.Context) {
	resp, err := h.svc.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	resp, err := h.svc.DeleteAccount(c.Request.Context(), middleware.SubjectID(c), c.Param("userName"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
