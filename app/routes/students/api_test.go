package students

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HussainIjaz209/OKS-sub001/app/models"
)

func userWithRoles(id string, roles ...string) *models.User {
	u := &models.User{ID: id}
	for _, name := range roles {
		u.Roles = append(u.Roles, &models.Role{Name: name})
	}
	return u
}

func TestCanViewDashboard(t *testing.T) {
	tests := []struct {
		name      string
		user      *models.User
		studentID string
		want      bool
	}{
		{"admin sees any student", userWithRoles("u1", models.RoleAdmin), "s1", true},
		{"bursar sees any student", userWithRoles("u1", models.RoleBursar), "s1", true},
		{"teacher sees any student", userWithRoles("u1", models.RoleTeacher), "s1", true},
		{"student sees own dashboard", userWithRoles("s1", models.RoleStudent), "s1", true},
		{"student denied another dashboard", userWithRoles("s1", models.RoleStudent), "s2", false},
		{"roleless account only matches itself", userWithRoles("u1"), "s1", false},
		{"no user denied", nil, "s1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canViewDashboard(tt.user, tt.studentID))
		})
	}
}

func TestGetStudentDashboardAPIForbidsOtherStudents(t *testing.T) {
	app := fiber.New()
	app.Get("/api/students/:id/dashboard", func(c *fiber.Ctx) error {
		c.Locals("user", userWithRoles("s1", models.RoleStudent))
		return GetStudentDashboardAPI(c)
	})

	req := httptest.NewRequest("GET", "/api/students/s2/dashboard", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreateStudentAPIRejectsIncompleteBody(t *testing.T) {
	app := fiber.New()
	app.Post("/api/students", CreateStudentAPI)

	body := `{"first_name":"Amina"}`
	req := httptest.NewRequest("POST", "/api/students", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
