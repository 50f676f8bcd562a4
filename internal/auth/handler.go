package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	accounts *UserService
	auth     *AuthService
}

func NewAuthHandler(accounts *UserService, auth *AuthService) *AuthHandler {
	return &AuthHandler{accounts: accounts, auth: auth}
}

func (h *AuthHandler) StudentLogin(c echo.Context) error {
	var req StudentLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Invalid request"})
	}

	token, err := h.auth.Authenticate(c.Request().Context(), RoleStudent, req.RollNo, req.Password)
	if err != nil {
		return loginFailure(c, err, "Invalid roll number")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "token": token})
}

func (h *AuthHandler) StaffLogin(c echo.Context) error {
	var req StaffLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Invalid request"})
	}

	token, err := h.auth.Authenticate(c.Request().Context(), RoleStaff, req.EmailKongu, req.Password)
	if err != nil {
		return loginFailure(c, err, "Invalid staff email")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "token": token})
}

// loginFailure keeps the historical contract: rejections come back as
// 200 {success:false, msg}, store failures as 500.
func loginFailure(c echo.Context, err error, unknownMsg string) error {
	switch {
	case errors.Is(err, ErrInvalidIdentifier):
		return c.JSON(http.StatusOK, echo.Map{"success": false, "msg": unknownMsg})
	case errors.Is(err, ErrIncorrectPassword):
		return c.JSON(http.StatusOK, echo.Map{"success": false, "msg": "Incorrect password"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}
}

func (h *AuthHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Invalid request"})
	}

	account, err := h.accounts.CreateAccount(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, ErrMissingField) || errors.Is(err, ErrInvalidRole) || errors.Is(err, ErrInvalidDomain) || errors.Is(err, ErrDuplicateUsername) {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
		}
		log.Println("POST /api/users error:", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "item": account})
}

func (h *AuthHandler) ListUsers(c echo.Context) error {
	items, err := h.accounts.ListAccounts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "items": items})
}

func (h *AuthHandler) DeleteUser(c echo.Context) error {
	if err := h.accounts.DeleteAccount(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *AuthHandler) Profile(c echo.Context) error {
	claims, ok := c.Get("user").(*PortalClaims)
	if !ok || claims == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "Invalid or missing token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"userId":  claims.UserID,
		"role":    claims.Role,
	})
}
