package httpx

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemsOf(t *testing.T, body []byte) []any {
	t.Helper()
	items, ok := decodeBody(t, body)["items"].([]any)
	require.True(t, ok, string(body))
	return items
}

func TestModules_RequiresLogin(t *testing.T) {
	env := newTestEnv(t)
	rec := env.newClient(t).do(http.MethodGet, "/api/modules", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "authentication_required", decodeBody(t, rec.Body.Bytes())["error"])
}

func TestModules_ListsAccessibleModules(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)
	c.login("teacher@university.edu")

	rec := c.do(http.MethodGet, "/api/modules", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec.Body.Bytes())
	assert.Equal(t, "You can manage your courses, students, and academic content.", body["welcome"])

	modules, ok := body["modules"].([]any)
	require.True(t, ok)
	keys := make([]string, 0, len(modules))
	for _, m := range modules {
		keys = append(keys, m.(map[string]any)["key"].(string))
	}
	assert.Equal(t, []string{"lms", "enrollment", "library", "mms"}, keys)
}

func TestModules_ParentSeesNone(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)
	c.login("parent@university.edu")

	body := decodeBody(t, c.do(http.MethodGet, "/api/modules", "").Body.Bytes())
	assert.Empty(t, body["modules"])
}

func TestDashboardModule_Gate(t *testing.T) {
	tests := []struct {
		name   string
		email  string
		module string
		status int
	}{
		{name: "anonymous", module: "lms", status: http.StatusUnauthorized},
		{name: "student in lms", email: "student@university.edu", module: "lms", status: http.StatusOK},
		{name: "student in hris", email: "student@university.edu", module: "hris", status: http.StatusForbidden},
		{name: "dean in hris", email: "dean@university.edu", module: "hris", status: http.StatusOK},
		{name: "teacher in mms", email: "teacher@university.edu", module: "mms", status: http.StatusOK},
		{name: "unknown module", email: "dean@university.edu", module: "payroll", status: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			c := env.newClient(t)
			if tt.email != "" {
				c.login(tt.email)
			}
			rec := c.do(http.MethodGet, "/dashboard/"+tt.module, "", "Accept", "application/json")
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestDashboardModule_Capabilities(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)
	c.login("dean@university.edu")

	rec := c.do(http.MethodGet, "/dashboard/lms", "", "Accept", "application/json")
	require.Equal(t, http.StatusOK, rec.Code)
	caps, ok := decodeBody(t, rec.Body.Bytes())["capabilities"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, caps["lms.analytics"])
	assert.Equal(t, false, caps["lms.submit_assignments"])
}

func TestDashboardModule_BrowserFallbackPages(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)

	rec := c.do(http.MethodGet, "/dashboard/hris", "", "Accept", "text/html")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Authentication Required")
	assert.Contains(t, rec.Body.String(), `href="/login"`)

	c.login("student@university.edu")
	rec = c.do(http.MethodGet, "/dashboard/hris", "", "Accept", "text/html")
	require.Equal(t, http.StatusForbidden, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Access Denied")
	assert.Contains(t, body, "This page is restricted to: Administrator, Dean. Your current role is: Student")
	assert.Contains(t, body, `href="/dashboard"`)
}

func TestCourses_ScopedByRole(t *testing.T) {
	tests := []struct {
		email string
		want  int
	}{
		{email: "admin@university.edu", want: 3},
		{email: "teacher@university.edu", want: 1},
		{email: "student@university.edu", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			env := newTestEnv(t)
			c := env.newClient(t)
			c.login(tt.email)
			rec := c.do(http.MethodGet, "/api/lms/courses", "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Len(t, itemsOf(t, rec.Body.Bytes()), tt.want)
		})
	}
}

func TestCourses_TeacherCanEditOwn(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)
	c.login("teacher@university.edu")

	items := itemsOf(t, c.do(http.MethodGet, "/api/lms/courses", "").Body.Bytes())
	require.Len(t, items, 1)
	course := items[0].(map[string]any)
	assert.Equal(t, "CS101", course["code"])
	assert.Equal(t, true, course["can_edit"])
}

func TestCourseStudents(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.newClient(t)
	teacher.login("teacher@university.edu")

	rec := teacher.do(http.MethodGet, "/api/lms/courses/1/students", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, itemsOf(t, rec.Body.Bytes()), 1)

	rec = teacher.do(http.MethodGet, "/api/lms/courses/2/students", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = teacher.do(http.MethodGet, "/api/lms/courses/42/students", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	student := env.newClient(t)
	student.login("student@university.edu")
	rec = student.do(http.MethodGet, "/api/lms/courses/1/students", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDatasetFilters(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)
	c.login("admin@university.edu")

	tests := []struct {
		path string
		want int
	}{
		{path: "/api/lms/assignments", want: 3},
		{path: "/api/enrollment/applications", want: 3},
		{path: "/api/library/books", want: 3},
		{path: "/api/library/books?search=stewart", want: 1},
		{path: "/api/hris/employees", want: 3},
		{path: "/api/hris/employees?department=Administration", want: 1},
		{path: "/api/mms/materials?status=Low%20Stock", want: 1},
		{path: "/api/mms/materials?status=Discontinued", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := c.do(http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Len(t, itemsOf(t, rec.Body.Bytes()), tt.want)
		})
	}
}

func TestDatasetQueryProjection(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)
	c.login("dean@university.edu")

	rec := c.do(http.MethodGet, "/api/hris/employees?q="+url.QueryEscape("[?salary > `80000`].name"), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.ElementsMatch(t, []any{"Dr. Sarah Johnson", "Prof. Michael Chen"}, itemsOf(t, rec.Body.Bytes()))

	rec = c.do(http.MethodGet, "/api/hris/employees?q=%5B%3F", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation", decodeBody(t, rec.Body.Bytes())["error"])
}

func TestModuleRoutes_Forbidden(t *testing.T) {
	env := newTestEnv(t)
	c := env.newClient(t)
	c.login("teacher@university.edu")

	rec := c.do(http.MethodGet, "/api/hris/employees", "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody(t, rec.Body.Bytes())
	assert.Equal(t, "insufficient_permissions", body["error"])
	assert.Equal(t, "Teacher", body["current_role"])
	assert.Equal(t, []any{"Administrator", "Dean"}, body["required_roles"])
}
