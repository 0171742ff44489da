package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/user/kinoclub/internal/model"
)

const testSecret = "test-secret"

func testUser() *model.User {
	return &model.User{ID: 7, Email: "ivan@example.com", Login: "ivan", Role: model.RoleUser}
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(testUser(), testSecret, time.Hour, TokenTypeAccess)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "ivan@example.com" || claims.Login != "ivan" || claims.Role != model.RoleUser {
		t.Fatalf("声明不完整: %+v", claims)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testUser(), testSecret, time.Hour, TokenTypeAccess)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(token, "other-secret"); err == nil {
		t.Fatal("错误密钥应当验签失败")
	}
}

func TestParseTokenUnknownRole(t *testing.T) {
	bogus := &model.User{ID: 7, Email: "ivan@example.com", Login: "ivan", Role: "SUPERUSER"}
	token, err := GenerateToken(bogus, testSecret, time.Hour, TokenTypeAccess)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(token, testSecret); err == nil {
		t.Fatal("未知角色的令牌应当被拒绝")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(testUser(), testSecret, -time.Minute, TokenTypeAccess)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(token, testSecret); err == nil {
		t.Fatal("过期令牌应当被拒绝")
	}
}

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})
	r.GET("/admin", RequireAuth(testSecret), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/open", OptionalAuth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})
	return r
}

func TestRequireAuthWithoutToken(t *testing.T) {
	r := newAuthTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际 %d", w.Code)
	}
}

func TestRequireAuthWithToken(t *testing.T) {
	r := newAuthTestRouter()
	token, err := GenerateToken(testUser(), testSecret, time.Hour, TokenTypeAccess)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际 %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireAuthRejectsRefreshToken(t *testing.T) {
	r := newAuthTestRouter()
	token, err := GenerateToken(testUser(), testSecret, time.Hour, TokenTypeRefresh)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("刷新令牌当作访问令牌期望 401，实际 %d", w.Code)
	}
}

func TestRequireAdminRejectsUser(t *testing.T) {
	r := newAuthTestRouter()
	token, err := GenerateToken(testUser(), testSecret, time.Hour, TokenTypeAccess)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("普通用户访问管理接口期望 403，实际 %d", w.Code)
	}
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	r := newAuthTestRouter()
	admin := &model.User{ID: 1, Email: "admin@example.com", Login: "admin", Role: model.RoleAdmin}
	token, err := GenerateToken(admin, testSecret, time.Hour, TokenTypeAccess)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("管理员访问管理接口期望 200，实际 %d", w.Code)
	}
}

func TestOptionalAuthAnonymous(t *testing.T) {
	r := newAuthTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("匿名访问可选登录接口期望 200，实际 %d", w.Code)
	}
	if w.Body.String() != `{"user_id":0}` {
		t.Fatalf("匿名时 user_id 应为 0，实际 %s", w.Body.String())
	}
}
