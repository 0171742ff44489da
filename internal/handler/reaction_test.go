package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/user/kinoclub/internal/model"
	"github.com/user/kinoclub/internal/service"
)

// fakeReactionStore 内存版反应存储
type fakeReactionStore struct {
	nextID int
	rows   map[int]*model.Reaction
}

func newFakeReactionStore() *fakeReactionStore {
	return &fakeReactionStore{rows: map[int]*model.Reaction{}}
}

func (f *fakeReactionStore) Find(userID, movieID int) (*model.Reaction, error) {
	for _, r := range f.rows {
		if r.UserID == userID && r.MovieID == movieID {
			copied := *r
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeReactionStore) Create(userID, movieID int, isLike bool) error {
	f.nextID++
	f.rows[f.nextID] = &model.Reaction{ID: f.nextID, UserID: userID, MovieID: movieID, IsLike: isLike}
	return nil
}

func (f *fakeReactionStore) UpdatePolarity(id int, isLike bool) error {
	if r, ok := f.rows[id]; ok {
		r.IsLike = isLike
	}
	return nil
}

func (f *fakeReactionStore) Delete(id int) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeReactionStore) CountByMovie(movieID int, isLike bool) (int64, error) {
	var count int64
	for _, r := range f.rows {
		if r.MovieID == movieID && r.IsLike == isLike {
			count++
		}
	}
	return count, nil
}

// fakeAuth 测试用登录中间件，直接往上下文塞用户信息
func fakeAuth(userID int, role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

func newReactionTestRouter(userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	registerValidations()

	h := &Handler{Reactions: service.NewReactionService(newFakeReactionStore())}

	r := gin.New()
	likes := r.Group("/api/likes")
	{
		likes.POST("/like", fakeAuth(userID, model.RoleUser), h.Like)
		likes.POST("/dislike", fakeAuth(userID, model.RoleUser), h.Dislike)
		likes.GET("/:movieId", h.GetReactions)
	}
	return r
}

type envelope struct {
	Code    int                     `json:"code"`
	Message string                  `json:"message"`
	Data    service.ReactionSummary `json:"data"`
	Success bool                    `json:"success"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("响应不是合法 JSON: %v: %s", err, w.Body.String())
	}
	return w, env
}

func TestLikeEndpointToggle(t *testing.T) {
	r := newReactionTestRouter(7)

	w, env := doJSON(t, r, http.MethodPost, "/api/likes/like", `{"movieId":42}`)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("点赞失败: %d %s", w.Code, w.Body.String())
	}
	if env.Data.Likes != 1 || env.Data.UserReaction != service.ReactionLike {
		t.Fatalf("期望 {1 0 like}，实际 %+v", env.Data)
	}

	// 反向点击翻转
	_, env = doJSON(t, r, http.MethodPost, "/api/likes/dislike", `{"movieId":42}`)
	if env.Data.Likes != 0 || env.Data.Dislikes != 1 || env.Data.UserReaction != service.ReactionDislike {
		t.Fatalf("期望 {0 1 dislike}，实际 %+v", env.Data)
	}

	// 同向点击撤销
	_, env = doJSON(t, r, http.MethodPost, "/api/likes/dislike", `{"movieId":42}`)
	if env.Data.Likes != 0 || env.Data.Dislikes != 0 || env.Data.UserReaction != service.ReactionNone {
		t.Fatalf("期望 {0 0 none}，实际 %+v", env.Data)
	}
}

func TestLikeEndpointInvalidMovieID(t *testing.T) {
	r := newReactionTestRouter(7)

	for _, body := range []string{`{"movieId":0}`, `{"movieId":-3}`, `{}`, `not-json`} {
		w, _ := doJSON(t, r, http.MethodPost, "/api/likes/like", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body=%s 期望 400，实际 %d", body, w.Code)
		}
	}
}

func TestGetReactionsAnonymous(t *testing.T) {
	r := newReactionTestRouter(7)

	if _, env := doJSON(t, r, http.MethodPost, "/api/likes/like", `{"movieId":42}`); !env.Success {
		t.Fatal("准备数据失败")
	}

	w, env := doJSON(t, r, http.MethodGet, "/api/likes/42", "")
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际 %d", w.Code)
	}
	if env.Data.Likes != 1 || env.Data.UserReaction != service.ReactionNone {
		t.Fatalf("匿名汇总期望 {1 0 none}，实际 %+v", env.Data)
	}
}

func TestGetReactionsInvalidMovieID(t *testing.T) {
	r := newReactionTestRouter(7)

	w, _ := doJSON(t, r, http.MethodGet, "/api/likes/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际 %d", w.Code)
	}
}
