package middleware

import (
	"github.com/dabson254/lapor-hilang/internal/dto"
	"github.com/dabson254/lapor-hilang/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// AdminRequired sits behind JWTProtected and checks that the session's
// admin_id claim still maps to an admin row. The username claim is exposed
// as c.Locals("admin_username") for audit tagging.
func AdminRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID, username, ok := AdminClaims(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		var admin models.Admin
		if err := db.First(&admin, "id_admin = ?", adminID).Error; err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}

		c.Locals("admin_username", username)
		return c.Next()
	}
}

// AdminClaims extracts the admin id and username from the parsed session
// token placed in context by JWTProtected.
func AdminClaims(c *fiber.Ctx) (uint, string, bool) {
	token, ok := c.Locals("admin").(*jwt.Token)
	if !ok || token == nil {
		return 0, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}

	adminID, _ := claims["admin_id"].(float64)
	username, _ := claims["username"].(string)
	if adminID == 0 || username == "" {
		return 0, "", false
	}
	return uint(adminID), username, true
}

// AdminUsername returns the audit tag set by AdminRequired.
func AdminUsername(c *fiber.Ctx) string {
	if username, ok := c.Locals("admin_username").(string); ok {
		return username
	}
	return ""
}
