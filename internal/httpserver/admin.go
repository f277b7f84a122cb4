package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pizzahouse/menu-client/internal/alert"
	"github.com/pizzahouse/menu-client/internal/gateway"
	"github.com/pizzahouse/menu-client/internal/logging"
	"github.com/pizzahouse/menu-client/internal/media"
	"github.com/pizzahouse/menu-client/internal/session"
)

type AdminHTTP struct {
	Gateway   *gateway.Client
	Media     media.ObjectStore
	Banner    *alert.Banner
	JWTSecret []byte
}

// Login forwards the credentials to the remote validate endpoint and sets
// the session cookie when the remote accepts them.
func (h *AdminHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.login")

	var req struct {
		AdminID  string `json:"adminId"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Error("admin_login_failed", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	ok, err := h.Gateway.ValidateAdmin(ctx, req.AdminID, req.Password)
	if err != nil {
		h.Banner.Set(alert.KindFault, "Failed to validate admin credentials")
		l.Error("admin_login_failed", "error", err)
		return httpError(err)
	}
	if !ok {
		l.Warn("admin_login_rejected")
		return echo.NewHTTPError(http.StatusUnauthorized, "incorrect admin id or password")
	}

	token, err := session.NewToken(req.AdminID, h.JWTSecret, time.Now())
	if err != nil {
		l.Error("admin_login_failed", "reason", "token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create session")
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(session.TTL),
		HttpOnly: true,
	})
	l.Info("admin_login_success")
	return c.JSON(http.StatusOK, map[string]bool{"isValid": true})
}

// UploadMedia stores the form image and returns the URL callers pass as
// the image precondition when adding a product.
func (h *AdminHTTP) UploadMedia(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.upload_media")

	file, err := c.FormFile("image")
	if err != nil {
		l.Error("upload_media_failed", "reason", "missing file", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "image file required")
	}
	src, err := file.Open()
	if err != nil {
		l.Error("upload_media_failed", "reason", "open file", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read image file")
	}
	defer src.Close()

	handle, err := h.Media.Upload(ctx, file.Filename, src)
	if err != nil {
		h.Banner.Set(alert.KindFault, "Failed to upload image")
		l.Error("upload_media_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot store image")
	}

	l.Info("upload_media_success", "handle", handle)
	return c.JSON(http.StatusCreated, map[string]string{
		"handle": handle,
		"url":    h.Media.ResolveURL(handle),
	})
}
