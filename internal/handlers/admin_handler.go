package handlers

import (
	"errors"
	"fmt"

	"github.com/dabson254/lapor-hilang/internal/config"
	"github.com/dabson254/lapor-hilang/internal/dto"
	"github.com/dabson254/lapor-hilang/internal/middleware"
	"github.com/dabson254/lapor-hilang/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	auth    *services.AuthService
	reports *services.ReportService
	cfg     *config.Config
}

func NewAdminHandler(auth *services.AuthService, reports *services.ReportService, cfg *config.Config) *AdminHandler {
	return &AdminHandler{auth: auth, reports: reports, cfg: cfg}
}

func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	token, admin, err := h.auth.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.AdminLoginResponse{
		Success: true,
		Token:   token,
		Admin: dto.AdminResponse{
			IDAdmin:   admin.ID,
			NamaAdmin: admin.Name,
			Username:  admin.Username,
		},
		Message: "Login successful",
	})
}

func (h *AdminHandler) Verify(c *fiber.Ctx) error {
	var req dto.VerifyTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	adminID, username, err := h.auth.VerifyToken(req.Token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid or expired token",
		})
	}

	return c.JSON(dto.VerifyTokenResponse{
		Valid:    true,
		AdminID:  adminID,
		Username: username,
	})
}

func (h *AdminHandler) Profile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid admin ID",
		})
	}

	admin, err := h.auth.GetAdminByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.AdminResponse{
		IDAdmin:   admin.ID,
		NamaAdmin: admin.Name,
		Username:  admin.Username,
	})
}

// Create provisions an admin account. It accepts either the bootstrap
// X-Admin-Token (first account, no admins exist yet) or a verified admin
// session of an existing account.
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	if !h.provisioningAllowed(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin provisioning requires a valid admin token",
		})
	}

	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.NamaAdmin == "" || req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "nama_admin, username and password are required",
		})
	}

	admin, err := h.auth.CreateAdmin(req.NamaAdmin, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create admin",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateAdminResponse{
		Success: true,
		Admin: dto.AdminResponse{
			IDAdmin:   admin.ID,
			NamaAdmin: admin.Name,
			Username:  admin.Username,
		},
		Message: fmt.Sprintf("Admin '%s' created successfully", admin.Username),
	})
}

func (h *AdminHandler) provisioningAllowed(c *fiber.Ctx) bool {
	if h.cfg.AdminToken != "" && c.Get("X-Admin-Token") == h.cfg.AdminToken {
		return true
	}
	if auth := c.Get("Authorization"); len(auth) > 7 {
		if _, _, err := h.auth.VerifyToken(auth[7:]); err == nil {
			return true
		}
	}
	return false
}

// Cleanup triggers an out-of-band expiry sweep, recording the admin's
// username as the actor.
func (h *AdminHandler) Cleanup(c *fiber.Ctx) error {
	days := c.QueryInt("days", h.cfg.CleanupDays)

	actor := middleware.AdminUsername(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	affected, logged, err := h.reports.ExpirySweep(c.Context(), days, actor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Cleanup failed",
		})
	}

	return c.JSON(dto.CleanupResponse{Success: true, Affected: affected, Logged: logged})
}
