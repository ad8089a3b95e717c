package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Madhav-Gupta-28/primecart-backend-go/middleware"
	"github.com/Madhav-Gupta-28/primecart-backend-go/models"
	"github.com/Madhav-Gupta-28/primecart-backend-go/store"
	"github.com/Madhav-Gupta-28/primecart-backend-go/utils"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type profileRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type adminUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  *bool  `json:"isAdmin"`
}

// issueToken signs a token for user and sets it as the session cookie.
func (h *Handler) issueToken(c echo.Context, user *models.User) (string, error) {
	token, err := utils.GenerateJWT(user.ID.Hex(), h.opts.JWTSecret, h.opts.JWTTTL)
	if err != nil {
		return "", err
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.opts.SecureCookies,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(h.opts.JWTTTL / time.Second),
	})
	return token, nil
}

func (h *Handler) Register(c echo.Context) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, "User", http.StatusBadRequest, err)
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("Please fill all the inputs"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to process password"))
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if err := h.users.Create(c.Request().Context(), user); err != nil {
		return h.fail(c, "User", http.StatusBadRequest, err)
	}

	token, err := h.issueToken(c, user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to generate token"))
	}

	h.log.Info().Str("user_id", user.ID.Hex()).Msg("user registered")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"isAdmin":  user.IsAdmin,
		"token":    token,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, "User", http.StatusBadRequest, err)
	}

	user, err := h.users.FindByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, errorBody("Invalid email or password"))
		}
		return h.fail(c, "User", http.StatusInternalServerError, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, errorBody("Invalid email or password"))
	}

	token, err := h.issueToken(c, user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to generate token"))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"isAdmin":  user.IsAdmin,
		"token":    token,
	})
}

func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// GetUserProfile retrieves the user's profile
func (h *Handler) GetUserProfile(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("Not authorized"))
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUserProfile changes only the fields that were sent.
func (h *Handler) UpdateUserProfile(c echo.Context) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("Not authorized"))
	}

	var req profileRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, "User", http.StatusBadRequest, err)
	}

	user := *current
	user.Password = ""
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorBody("Failed to process password"))
		}
		user.Password = string(hashedPassword)
	}

	if err := h.users.Update(c.Request().Context(), &user); err != nil {
		return h.fail(c, "User", http.StatusBadRequest, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return h.fail(c, "User", http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) userFromParam(c echo.Context) (*models.User, error) {
	oid, err := store.ParseID(c.Param("id"))
	if err != nil {
		return nil, err
	}
	return h.users.FindByID(c.Request().Context(), oid)
}

func (h *Handler) GetUser(c echo.Context) error {
	user, err := h.userFromParam(c)
	if err != nil {
		return h.fail(c, "User", http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser refuses to remove admin accounts.
func (h *Handler) DeleteUser(c echo.Context) error {
	user, err := h.userFromParam(c)
	if err != nil {
		return h.fail(c, "User", http.StatusInternalServerError, err)
	}
	if user.IsAdmin {
		return c.JSON(http.StatusBadRequest, errorBody("Cannot delete admin user"))
	}

	if err := h.users.Delete(c.Request().Context(), user.ID); err != nil {
		return h.fail(c, "User", http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User removed"})
}

func (h *Handler) UpdateUser(c echo.Context) error {
	user, err := h.userFromParam(c)
	if err != nil {
		return h.fail(c, "User", http.StatusInternalServerError, err)
	}

	var req adminUserRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, "User", http.StatusBadRequest, err)
	}
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	user.Password = ""

	if err := h.users.Update(c.Request().Context(), user); err != nil {
		return h.fail(c, "User", http.StatusBadRequest, err)
	}
	return c.JSON(http.StatusOK, user)
}
