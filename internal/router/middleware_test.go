package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clickcart/backend/internal/constants"

	"github.com/gin-gonic/gin"
)

func newGuardedEngine(userRole, userEmail, demoAdminEmail string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userRole != "" {
			c.Set("user_role", userRole)
		}
		if userEmail != "" {
			c.Set("user_email", userEmail)
		}
		c.Next()
	})
	r.Use(AdminRequiredMiddleware(), DemoAdminGuardMiddleware(demoAdminEmail))
	handler := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/admin/products", handler)
	r.POST("/admin/products", handler)
	r.DELETE("/admin/products/1", handler)
	return r
}

func doRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRequiredMiddleware(t *testing.T) {
	r := newGuardedEngine(constants.RoleUser, "user@example.com", "")
	if w := doRequest(r, http.MethodGet, "/admin/products"); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", w.Code)
	}

	r = newGuardedEngine("", "", "")
	if w := doRequest(r, http.MethodGet, "/admin/products"); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without role, got %d", w.Code)
	}

	r = newGuardedEngine(constants.RoleAdmin, "admin@example.com", "")
	if w := doRequest(r, http.MethodGet, "/admin/products"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}
}

func TestDemoAdminGuardBlocksWrites(t *testing.T) {
	r := newGuardedEngine(constants.RoleAdmin, "demo@example.com", "demo@example.com")

	if w := doRequest(r, http.MethodGet, "/admin/products"); w.Code != http.StatusOK {
		t.Fatalf("expected GET allowed for demo admin, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodPost, "/admin/products"); w.Code != http.StatusForbidden {
		t.Fatalf("expected POST blocked for demo admin, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodDelete, "/admin/products/1"); w.Code != http.StatusForbidden {
		t.Fatalf("expected DELETE blocked for demo admin, got %d", w.Code)
	}
}

func TestDemoAdminGuardMatchesConfiguredEmailOnly(t *testing.T) {
	// 大小写不敏感匹配
	r := newGuardedEngine(constants.RoleAdmin, "Demo@Example.com", "demo@example.com")
	if w := doRequest(r, http.MethodPost, "/admin/products"); w.Code != http.StatusForbidden {
		t.Fatalf("expected case-insensitive match to block, got %d", w.Code)
	}

	r = newGuardedEngine(constants.RoleAdmin, "real-admin@example.com", "demo@example.com")
	if w := doRequest(r, http.MethodPost, "/admin/products"); w.Code != http.StatusOK {
		t.Fatalf("expected other admin unaffected, got %d", w.Code)
	}

	// 未配置演示账号时不拦截
	r = newGuardedEngine(constants.RoleAdmin, "demo@example.com", "")
	if w := doRequest(r, http.MethodPost, "/admin/products"); w.Code != http.StatusOK {
		t.Fatalf("expected guard disabled without configured email, got %d", w.Code)
	}
}

func TestResolveAllowedOrigin(t *testing.T) {
	origins := []string{"https://shop.example.com", "http://localhost:3000"}

	if got := resolveAllowedOrigin("https://shop.example.com", origins, false); got != "https://shop.example.com" {
		t.Fatalf("expected origin echoed, got %q", got)
	}
	if got := resolveAllowedOrigin("https://evil.example.com", origins, false); got != "" {
		t.Fatalf("expected unknown origin rejected, got %q", got)
	}
	if got := resolveAllowedOrigin("https://any.example.com", []string{"*"}, false); got != "*" {
		t.Fatalf("expected wildcard, got %q", got)
	}
	// 携带凭据时通配符需要回显具体来源
	if got := resolveAllowedOrigin("https://any.example.com", []string{"*"}, true); got != "https://any.example.com" {
		t.Fatalf("expected origin echoed with credentials, got %q", got)
	}
}
