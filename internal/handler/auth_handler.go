package handler

import (
	"errors"
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 会員登録・ログイン・プロフィールと管理者ログインのHTTP
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type RegisterRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Address  string `json:"address" form:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Address  string `json:"address" form:"address"`
	Password string `json:"password" form:"password"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/register", h.register)
	e.POST("/login", h.login)
	e.GET("/logout", h.logout)
	e.POST("/admin/login", h.adminLogin)

	g := e.Group("/profile")
	g.Use(middleware.LoginGuard())
	g.GET("", h.profile)
	g.POST("", h.updateProfile)
}

func (h *AuthHandler) register(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if uerr := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
	}); uerr != nil {
		return writeError(c, uerr)
	}

	return flashRedirect(c, sess, "Registration successful!", "/login")
}

func (h *AuthHandler) login(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	user, uerr := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if uerr != nil {
		if he, ok := usecase.AsHTTPError(uerr); ok && he.Status == http.StatusUnauthorized {
			return flashRedirect(c, sess, "Invalid email or password.", "/login")
		}
		return writeError(c, uerr)
	}

	sess.UserID = user.ID
	sess.UserName = user.Name

	return flashRedirect(c, sess, "Login successful!", "/menu")
}

func (h *AuthHandler) logout(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	// カートごと消える（セッションスコープなので仕様どおり）
	sess.Reset()

	return flashRedirect(c, sess, "Logged out.", "/login")
}

// 管理者ログイン。リダイレクトせずJSONで認否だけ返す。
func (h *AuthHandler) adminLogin(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if !h.uc.AdminLogin(req.Password) {
		return c.JSON(http.StatusOK, echo.Map{"authenticated": false})
	}

	sess.Admin = true
	return c.JSON(http.StatusOK, echo.Map{"authenticated": true})
}

func (h *AuthHandler) profile(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	out, uerr := h.uc.GetProfile(c.Request().Context(), sess.UserID)
	if uerr != nil {
		if errors.Is(uerr, usecase.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		}
		return writeError(c, uerr)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"profile": out,
		"flashes": sess.PopFlashes(),
	})
}

func (h *AuthHandler) updateProfile(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if uerr := h.uc.UpdateProfile(c.Request().Context(), sess.UserID, usecase.UpdateProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Address:  req.Address,
		Password: req.Password,
	}); uerr != nil {
		if errors.Is(uerr, usecase.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		}
		return writeError(c, uerr)
	}

	// 表示名も追従させる
	sess.UserName = req.Name

	return flashRedirect(c, sess, "Profile updated!", "/profile")
}
