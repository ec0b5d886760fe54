package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/bruxa61/PortfolioRAFA/errs"
	"github.com/bruxa61/PortfolioRAFA/models"
)

func TestToggleLike(t *testing.T) {
	db := newTestDB(t)
	svc := NewInteractionService(db)
	ctx := context.Background()

	user := seedUser(t, db, "user-1", false)
	project := seedProject(t, db, "Projeto Um", "projeto-um")

	result, err := svc.ToggleLike(ctx, project.ID, user.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !result.Liked {
		t.Error("first toggle: liked = false, want true")
	}
	if result.LikesCount != 1 {
		t.Errorf("first toggle: likes_count = %d, want 1", result.LikesCount)
	}

	if got := countRows(t, db, &models.Like{}, "project_id = ?", project.ID); got != 1 {
		t.Errorf("like rows = %d, want 1", got)
	}
	if got := countRows(t, db, &models.Notification{}, "type = ? AND is_read = ?", models.NotificationTypeLike, false); got != 1 {
		t.Errorf("unread like notifications = %d, want 1", got)
	}

	// Toggling again reverses the like.
	result, err = svc.ToggleLike(ctx, project.ID, user.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if result.Liked {
		t.Error("second toggle: liked = true, want false")
	}
	if result.LikesCount != 0 {
		t.Errorf("second toggle: likes_count = %d, want 0", result.LikesCount)
	}
	if got := countRows(t, db, &models.Like{}, "project_id = ?", project.ID); got != 0 {
		t.Errorf("like rows after unlike = %d, want 0", got)
	}
}

func TestToggleLikeCounterMatchesRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewInteractionService(db)
	ctx := context.Background()

	project := seedProject(t, db, "Projeto Dois", "projeto-dois")
	users := []*models.User{
		seedUser(t, db, "user-a", false),
		seedUser(t, db, "user-b", false),
		seedUser(t, db, "user-c", false),
	}

	// Arbitrary toggle sequence: a on, b on, a off, c on, b off, b on.
	sequence := []int{0, 1, 0, 2, 1, 1}
	for i, idx := range sequence {
		if _, err := svc.ToggleLike(ctx, project.ID, users[idx].ID); err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
	}

	rows := countRows(t, db, &models.Like{}, "project_id = ?", project.ID)
	counter := reloadProject(t, db, project.ID).LikesCount
	if int64(counter) != rows {
		t.Errorf("likes_count = %d but live rows = %d", counter, rows)
	}
	if rows != 2 { // b and c remain
		t.Errorf("live rows = %d, want 2", rows)
	}
}

// TestUnlikeStaleRowKeepsCounter covers two requests that both read
// the same like row before either deletes it: only the delete that
// actually removes the row may decrement the counter.
func TestUnlikeStaleRowKeepsCounter(t *testing.T) {
	db := newTestDB(t)
	svc := NewInteractionService(db)
	ctx := context.Background()

	user := seedUser(t, db, "user-race", false)
	project := seedProject(t, db, "Projeto Corrida", "projeto-corrida")

	if _, err := svc.ToggleLike(ctx, project.ID, user.ID); err != nil {
		t.Fatalf("liking: %v", err)
	}

	var like models.Like
	if err := db.Where("project_id = ? AND user_id = ?", project.ID, user.ID).First(&like).Error; err != nil {
		t.Fatalf("loading like: %v", err)
	}

	// Both calls hold the row read above; the second delete matches
	// nothing and must leave the counter alone.
	if err := svc.unlike(db, project, &like); err != nil {
		t.Fatalf("first unlike: %v", err)
	}
	if err := svc.unlike(db, project, &like); err != nil {
		t.Fatalf("stale unlike: %v", err)
	}

	reloaded := reloadProject(t, db, project.ID)
	if reloaded.LikesCount != 0 {
		t.Errorf("likes_count = %d, want 0", reloaded.LikesCount)
	}
	if got := countRows(t, db, &models.Like{}, "project_id = ?", project.ID); got != int64(reloaded.LikesCount) {
		t.Errorf("likes_count = %d but %d like rows exist", reloaded.LikesCount, got)
	}
}

func TestToggleLikeUnknownProject(t *testing.T) {
	db := newTestDB(t)
	svc := NewInteractionService(db)

	seedUser(t, db, "user-1", false)
	_, err := svc.ToggleLike(context.Background(), uuid.New(), "user-1")
	if !errs.IsNotFound(err) {
		t.Errorf("toggle on missing project: err = %v, want not-found", err)
	}
}

func TestToggleLikeAnonymous(t *testing.T) {
	db := newTestDB(t)
	svc := NewInteractionService(db)
	project := seedProject(t, db, "Projeto Três", "projeto-tres")

	if _, err := svc.ToggleLike(context.Background(), project.ID, ""); err == nil {
		t.Error("anonymous toggle succeeded, want error")
	}
}

func TestAddComment(t *testing.T) {
	db := newTestDB(t)
	svc := NewInteractionService(db)
	ctx := context.Background()

	user := seedUser(t, db, "user-1", false)
	project := seedProject(t, db, "Projeto Quatro", "projeto-quatro")

	comment, err := svc.AddComment(ctx, project.ID, user.ID, "Great work!")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if !comment.IsApproved {
		t.Error("new comment is_approved = false, want true")
	}
	if comment.Content != "Great work!" {
		t.Errorf("comment content = %q", comment.Content)
	}

	if got := reloadProject(t, db, project.ID).CommentsCount; got != 1 {
		t.Errorf("comments_count = %d, want 1", got)
	}
	if got := countRows(t, db, &models.Notification{}, "type = ?", models.NotificationTypeComment); got != 1 {
		t.Errorf("comment notifications = %d, want 1", got)
	}
}

func TestAddCommentValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewInteractionService(db)
	ctx := context.Background()

	user := seedUser(t, db, "user-1", false)
	project := seedProject(t, db, "Projeto Cinco", "projeto-cinco")

	for _, content := range []string{"", "   ", "\n\t "} {
		_, err := svc.AddComment(ctx, project.ID, user.ID, content)
		if !errs.IsValidation(err) {
			t.Errorf("AddComment(%q): err = %v, want validation error", content, err)
		}
	}

	// Nothing was written.
	if got := reloadProject(t, db, project.ID).CommentsCount; got != 0 {
		t.Errorf("comments_count = %d, want 0", got)
	}
	if got := countRows(t, db, &models.Comment{}, "project_id = ?", project.ID); got != 0 {
		t.Errorf("comment rows = %d, want 0", got)
	}
}

func TestAddCommentTrimsContent(t *testing.T) {
	db := newTestDB(t)
	svc := NewInteractionService(db)

	user := seedUser(t, db, "user-1", false)
	project := seedProject(t, db, "Projeto Seis", "projeto-seis")

	comment, err := svc.AddComment(context.Background(), project.ID, user.ID, "  nice!  ")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if comment.Content != "nice!" {
		t.Errorf("content = %q, want %q", comment.Content, "nice!")
	}
}
