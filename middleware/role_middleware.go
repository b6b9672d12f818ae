package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "recruiting-dashboard-backend/lib/utils/auth-utils"
	"recruiting-dashboard-backend/models"
	apimodels "recruiting-dashboard-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if id, ok := sub.(string); ok {
			return id
		}
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		if stringName, ok := name.(string); ok {
			return stringName
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

// StaffRequired gates pipeline management and analytics: hr, manager and
// admin pass, candidate accounts do not.
func StaffRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsStaff() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not allowed"))
		}
		return ctx.Next()
	}
}

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not allowed"))
		}
		return ctx.Next()
	}
}
