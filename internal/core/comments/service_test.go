package comments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Inkwell/internal/core/authz"
)

// fakeCommentRepo is an in-memory Repository for service tests
type fakeCommentRepo struct {
	comments  map[string]*Comment
	likes     map[string]map[string]bool
	usernames map[string]string
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{
		comments:  make(map[string]*Comment),
		likes:     make(map[string]map[string]bool),
		usernames: make(map[string]string),
	}
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *Comment) error {
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	stored := *comment
	f.comments[comment.ID] = &stored
	f.likes[comment.ID] = make(map[string]bool)
	return nil
}

func (f *fakeCommentRepo) GetByID(ctx context.Context, id string) (*Comment, error) {
	stored, ok := f.comments[id]
	if !ok {
		return nil, ErrNotFound
	}
	comment := *stored
	comment.LikeCount = len(f.likes[id])
	return &comment, nil
}

func (f *fakeCommentRepo) ListByPost(ctx context.Context, postID string) ([]*CommentWithAuthor, error) {
	var rows []*CommentWithAuthor
	for id, c := range f.comments {
		if c.PostID != postID {
			continue
		}
		row := &CommentWithAuthor{Comment: *c, AuthorUsername: f.usernames[c.AuthorID]}
		row.LikeCount = len(f.likes[id])
		rows = append(rows, row)
	}
	return rows, nil
}

func (f *fakeCommentRepo) UpdateContent(ctx context.Context, id, content string) (*Comment, error) {
	stored, ok := f.comments[id]
	if !ok {
		return nil, ErrNotFound
	}
	stored.Content = content
	stored.UpdatedAt = time.Now()
	return f.GetByID(ctx, id)
}

func (f *fakeCommentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.comments[id]; !ok {
		return ErrNotFound
	}
	delete(f.comments, id)
	delete(f.likes, id)
	return nil
}

func (f *fakeCommentRepo) ToggleLike(ctx context.Context, commentID, userID string) (bool, error) {
	set := f.likes[commentID]
	if set[userID] {
		delete(set, userID)
		return false, nil
	}
	set[userID] = true
	return true, nil
}

// fakePostChecker reports a fixed set of posts as existing
type fakePostChecker struct {
	existing map[string]bool
}

func (f *fakePostChecker) Exists(ctx context.Context, postID string) (bool, error) {
	return f.existing[postID], nil
}

func TestCommentService_Add_RequiresExistingPost(t *testing.T) {
	repo := newFakeCommentRepo()
	checker := &fakePostChecker{existing: map[string]bool{}}
	service := NewCommentService(repo, checker)

	_, err := service.Add(context.Background(), "u1", AddRequest{PostID: "p1", Content: "Nice!"})
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.True(t, IsNotFound(err))
}

func TestCommentService_Add_RequiresContent(t *testing.T) {
	service := NewCommentService(newFakeCommentRepo(), &fakePostChecker{existing: map[string]bool{"p1": true}})

	_, err := service.Add(context.Background(), "u1", AddRequest{PostID: "p1", Content: "  "})
	assert.True(t, IsValidationError(err))
}

func TestCommentService_Scenario_AddAndList(t *testing.T) {
	repo := newFakeCommentRepo()
	repo.usernames["u3"] = "charlie"
	checker := &fakePostChecker{existing: map[string]bool{"p1": true}}
	service := NewCommentService(repo, checker)

	created, err := service.Add(context.Background(), "u3", AddRequest{PostID: "p1", Content: "Nice!"})
	require.NoError(t, err)
	assert.Equal(t, "p1", created.PostID)
	assert.Zero(t, created.LikeCount)

	views, err := service.ListForPost(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, views, 1)

	assert.Equal(t, "Nice!", views[0].Content)
	assert.Equal(t, "charlie", views[0].Author.Username)
	assert.NotEmpty(t, views[0].CreatedAt)
}

func TestCommentService_Edit_OwnershipEnforced(t *testing.T) {
	repo := newFakeCommentRepo()
	checker := &fakePostChecker{existing: map[string]bool{"p1": true}}
	service := NewCommentService(repo, checker)

	created, err := service.Add(context.Background(), "u1", AddRequest{PostID: "p1", Content: "original"})
	require.NoError(t, err)

	_, err = service.Edit(context.Background(), created.ID, "u2", "hijacked")
	assert.True(t, authz.IsNotAuthor(err))

	unchanged, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", unchanged.Content)

	updated, err := service.Edit(context.Background(), created.ID, "u1", "revised")
	require.NoError(t, err)
	assert.Equal(t, "revised", updated.Content)
}

func TestCommentService_Delete_OwnershipEnforced(t *testing.T) {
	repo := newFakeCommentRepo()
	checker := &fakePostChecker{existing: map[string]bool{"p1": true}}
	service := NewCommentService(repo, checker)

	created, err := service.Add(context.Background(), "u1", AddRequest{PostID: "p1", Content: "bye"})
	require.NoError(t, err)

	err = service.Delete(context.Background(), created.ID, "u2")
	assert.True(t, authz.IsNotAuthor(err))

	require.NoError(t, service.Delete(context.Background(), created.ID, "u1"))

	err = service.Delete(context.Background(), created.ID, "u1")
	assert.True(t, IsNotFound(err))
}

func TestCommentService_ToggleLike_PairRestoresState(t *testing.T) {
	repo := newFakeCommentRepo()
	checker := &fakePostChecker{existing: map[string]bool{"p1": true}}
	service := NewCommentService(repo, checker)

	created, err := service.Add(context.Background(), "u1", AddRequest{PostID: "p1", Content: "like me"})
	require.NoError(t, err)

	first, err := service.ToggleLike(context.Background(), created.ID, "u2")
	require.NoError(t, err)
	assert.Equal(t, "Liked", first.Message)
	assert.Equal(t, 1, first.Comment.LikeCount)

	second, err := service.ToggleLike(context.Background(), created.ID, "u2")
	require.NoError(t, err)
	assert.Equal(t, "Unliked", second.Message)
	assert.Equal(t, 0, second.Comment.LikeCount)
}

func TestCommentService_ToggleLike_NotFound(t *testing.T) {
	service := NewCommentService(newFakeCommentRepo(), &fakePostChecker{existing: map[string]bool{}})

	_, err := service.ToggleLike(context.Background(), "missing", "u1")
	assert.True(t, IsNotFound(err))
}
