package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")

	// Public routes
	api.Post("/login", LoginAPI)
	api.Post("/logout", LogoutAPI)

	// Protected routes
	api.Use(AuthMiddleware)
	api.Get("/me", MeAPI)
	api.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates the JWT and sets the user context. The token
// is read from the HTTP-only cookie or a bearer header; the SPA uses the
// cookie, scripted clients the header.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid token"})
	}

	user := &models.User{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		IsActive:  true,
	}
	roles := make([]*models.Role, len(claims.Roles))
	for i, name := range claims.Roles {
		roles[i] = &models.Role{Name: name}
	}
	user.Roles = roles

	c.Locals("user_id", user.ID)
	c.Locals("user_email", user.Email)
	c.Locals("user_roles", roles)
	c.Locals("user", user)

	return c.Next()
}

// RoleMiddleware checks that the user carries one of the allowed roles.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRoles, ok := c.Locals("user_roles").([]*models.Role)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"success": false, "error": "Insufficient permissions"})
		}

		for _, userRole := range userRoles {
			for _, allowed := range allowedRoles {
				if userRole.Name == allowed {
					return c.Next()
				}
			}
		}

		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Insufficient permissions"})
	}
}
