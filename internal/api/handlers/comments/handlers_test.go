package comments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
)

const (
	testPostID    = "11111111-1111-1111-1111-111111111111"
	testCommentID = "22222222-2222-2222-2222-222222222222"
)

// mockCommentService implements comments.Service for testing
type mockCommentService struct {
	addFunc    func(ctx context.Context, userID string, req comments.AddRequest) (*comments.Comment, error)
	listFunc   func(ctx context.Context, postID string) ([]*comments.CommentView, error)
	editFunc   func(ctx context.Context, commentID, userID, content string) (*comments.Comment, error)
	deleteFunc func(ctx context.Context, commentID, userID string) error
	toggleFunc func(ctx context.Context, commentID, userID string) (*comments.ToggleResult, error)
}

func (m *mockCommentService) Add(ctx context.Context, userID string, req comments.AddRequest) (*comments.Comment, error) {
	if m.addFunc != nil {
		return m.addFunc(ctx, userID, req)
	}
	return &comments.Comment{ID: testCommentID, PostID: req.PostID, AuthorID: userID, Content: req.Content}, nil
}

func (m *mockCommentService) ListForPost(ctx context.Context, postID string) ([]*comments.CommentView, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, postID)
	}
	return nil, nil
}

func (m *mockCommentService) Edit(ctx context.Context, commentID, userID, content string) (*comments.Comment, error) {
	if m.editFunc != nil {
		return m.editFunc(ctx, commentID, userID, content)
	}
	return &comments.Comment{ID: commentID, AuthorID: userID, Content: content}, nil
}

func (m *mockCommentService) Delete(ctx context.Context, commentID, userID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, commentID, userID)
	}
	return nil
}

func (m *mockCommentService) ToggleLike(ctx context.Context, commentID, userID string) (*comments.ToggleResult, error) {
	if m.toggleFunc != nil {
		return m.toggleFunc(ctx, commentID, userID)
	}
	return &comments.ToggleResult{Liked: true, Message: "Liked", Comment: &comments.Comment{ID: commentID, LikeCount: 1}}, nil
}

func authedRequest(t *testing.T, method, target, userID string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req = req.WithContext(middleware.SetTestUserID(req.Context(), userID))
	}
	return req
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return env
}

func TestCreateCommentHandler_Success(t *testing.T) {
	handler := NewCreateCommentHandler(&mockCommentService{})

	req := authedRequest(t, http.MethodPost, "/api/comments", "u3",
		CreateCommentInput{PostID: testPostID, Content: "Nice!"})
	w := httptest.NewRecorder()
	handler.HandleCreate(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Comment added", env["message"])
}

func TestCreateCommentHandler_RequiresAuth(t *testing.T) {
	handler := NewCreateCommentHandler(&mockCommentService{})

	req := authedRequest(t, http.MethodPost, "/api/comments", "",
		CreateCommentInput{PostID: testPostID, Content: "Nice!"})
	w := httptest.NewRecorder()
	handler.HandleCreate(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateCommentHandler_RejectsMalformedPostID(t *testing.T) {
	handler := NewCreateCommentHandler(&mockCommentService{})

	req := authedRequest(t, http.MethodPost, "/api/comments", "u3",
		CreateCommentInput{PostID: "nope", Content: "Nice!"})
	w := httptest.NewRecorder()
	handler.HandleCreate(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Valid post ID is required", env["error"])
}

func TestCreateCommentHandler_MissingPostMapsTo404(t *testing.T) {
	handler := NewCreateCommentHandler(&mockCommentService{
		addFunc: func(ctx context.Context, userID string, req comments.AddRequest) (*comments.Comment, error) {
			return nil, comments.ErrPostNotFound
		},
	})

	req := authedRequest(t, http.MethodPost, "/api/comments", "u3",
		CreateCommentInput{PostID: testPostID, Content: "Nice!"})
	w := httptest.NewRecorder()
	handler.HandleCreate(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCommentsHandler_CountMatchesData(t *testing.T) {
	handler := NewGetCommentsHandler(&mockCommentService{
		listFunc: func(ctx context.Context, postID string) ([]*comments.CommentView, error) {
			return []*comments.CommentView{
				{ID: testCommentID, PostID: postID, Content: "Nice!",
					Author: comments.AuthorEntry{Username: "charlie"}},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/comments/"+testPostID, nil)
	req = withURLParam(req, "postId", testPostID)
	w := httptest.NewRecorder()
	handler.HandleGet(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, float64(1), env["count"])
}

func TestUpdateCommentHandler_RequiresContent(t *testing.T) {
	handler := NewUpdateCommentHandler(&mockCommentService{})

	req := authedRequest(t, http.MethodPut, "/api/comments/"+testCommentID, "u1",
		UpdateCommentInput{Content: " "})
	req = withURLParam(req, "id", testCommentID)
	w := httptest.NewRecorder()
	handler.HandleUpdate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLikeCommentHandler_ReportsToggleMessage(t *testing.T) {
	handler := NewLikeCommentHandler(&mockCommentService{})

	req := authedRequest(t, http.MethodPost, "/api/comments/"+testCommentID+"/like", "u2", nil)
	req = withURLParam(req, "id", testCommentID)
	w := httptest.NewRecorder()
	handler.HandleLike(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Liked", env["message"])
}
