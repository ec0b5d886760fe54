package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/bruxa61/PortfolioRAFA/errs"
	"github.com/bruxa61/PortfolioRAFA/models"
)

// fakeUploader stands in for object storage.
type fakeUploader struct {
	uploaded []string
	fail     bool
}

func (f *fakeUploader) Upload(_ context.Context, filename string, _ io.Reader, _ int64) (string, error) {
	if f.fail {
		return "", errors.New("storage unavailable")
	}
	f.uploaded = append(f.uploaded, filename)
	return "https://cdn.test/uploads/" + filename, nil
}

func TestSaveProjectCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurationService(db, &fakeUploader{})

	project, err := svc.SaveProject(context.Background(), ProjectInput{
		Title:        "Meu Projeto Incrível!",
		Description:  "descrição",
		Technologies: "go,postgres",
		IsPublished:  true,
	}, nil)
	if err != nil {
		t.Fatalf("SaveProject: %v", err)
	}

	if project.Slug != "meu-projeto-incrivel" {
		t.Errorf("slug = %q, want %q", project.Slug, "meu-projeto-incrivel")
	}
	if !project.IsPublished || project.IsFeatured {
		t.Errorf("flags = published %v featured %v, want true/false", project.IsPublished, project.IsFeatured)
	}
}

func TestSaveProjectSlugStableOnEdit(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurationService(db, &fakeUploader{})
	ctx := context.Background()

	project, err := svc.SaveProject(ctx, ProjectInput{Title: "Primeiro Título", Description: "d"}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	originalSlug := project.Slug

	updated, err := svc.SaveProject(ctx, ProjectInput{Title: "Título Totalmente Novo", Description: "d"}, &project.ID)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Slug != originalSlug {
		t.Errorf("slug changed on edit: %q -> %q", originalSlug, updated.Slug)
	}
	if updated.Title != "Título Totalmente Novo" {
		t.Errorf("title not updated: %q", updated.Title)
	}
}

func TestSaveProjectDuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurationService(db, &fakeUploader{})
	ctx := context.Background()

	if _, err := svc.SaveProject(ctx, ProjectInput{Title: "Mesmo Título", Description: "d"}, nil); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// "Mesmo Título" and "Mesmo Titulo" normalize to the same slug.
	_, err := svc.SaveProject(ctx, ProjectInput{Title: "Mesmo Titulo", Description: "d"}, nil)
	if err == nil {
		t.Fatal("second create succeeded, want uniqueness violation")
	}
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 409 {
		t.Errorf("err = %v, want 409 conflict", err)
	}

	// The failed save must not leave a row behind.
	if got := countRows(t, db, &models.Project{}, "1 = 1"); got != 1 {
		t.Errorf("project rows = %d, want 1", got)
	}
}

func TestSaveProjectValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurationService(db, &fakeUploader{})
	ctx := context.Background()

	if _, err := svc.SaveProject(ctx, ProjectInput{Title: "  ", Description: "d"}, nil); !errs.IsValidation(err) {
		t.Errorf("blank title: err = %v, want validation error", err)
	}
	if _, err := svc.SaveProject(ctx, ProjectInput{Title: "T", Description: ""}, nil); !errs.IsValidation(err) {
		t.Errorf("blank description: err = %v, want validation error", err)
	}
	if got := countRows(t, db, &models.Project{}, "1 = 1"); got != 0 {
		t.Errorf("project rows = %d, want 0", got)
	}
}

func TestSaveProjectMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurationService(db, &fakeUploader{})

	missing := uuid.New()
	_, err := svc.SaveProject(context.Background(), ProjectInput{Title: "T", Description: "d"}, &missing)
	if !errs.IsNotFound(err) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestSaveProjectWithUpload(t *testing.T) {
	db := newTestDB(t)
	uploader := &fakeUploader{}
	svc := NewCurationService(db, uploader)

	project, err := svc.SaveProject(context.Background(), ProjectInput{
		Title:       "Com Imagem",
		Description: "d",
		Image: &Upload{
			Filename: "screenshot.png",
			Size:     1024,
			Reader:   strings.NewReader("fake bytes"),
		},
	}, nil)
	if err != nil {
		t.Fatalf("SaveProject: %v", err)
	}

	if project.ImageURL == nil || !strings.Contains(*project.ImageURL, "screenshot.png") {
		t.Errorf("image URL not recorded: %v", project.ImageURL)
	}
	if len(uploader.uploaded) != 1 {
		t.Errorf("uploads = %d, want 1", len(uploader.uploaded))
	}
	if got := countRows(t, db, &models.ProjectMedia{}, "project_id = ?", project.ID); got != 1 {
		t.Errorf("media rows = %d, want 1", got)
	}
}

func TestSaveProjectUploadFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurationService(db, &fakeUploader{fail: true})

	_, err := svc.SaveProject(context.Background(), ProjectInput{
		Title:       "Upload Quebrado",
		Description: "d",
		Image:       &Upload{Filename: "a.png", Reader: strings.NewReader("x")},
	}, nil)
	if err == nil {
		t.Fatal("SaveProject succeeded despite upload failure")
	}
	if got := countRows(t, db, &models.Project{}, "1 = 1"); got != 0 {
		t.Errorf("project rows = %d, want 0", got)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	db := newTestDB(t)
	curation := NewCurationService(db, &fakeUploader{})
	interactions := NewInteractionService(db)
	ctx := context.Background()

	user := seedUser(t, db, "user-1", false)
	category := &models.Category{Name: "Web"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("seeding category: %v", err)
	}

	project := seedProject(t, db, "Para Excluir", "para-excluir")
	if err := db.Model(project).Update("category_id", category.ID).Error; err != nil {
		t.Fatalf("attaching category: %v", err)
	}

	if _, err := interactions.ToggleLike(ctx, project.ID, user.ID); err != nil {
		t.Fatalf("like: %v", err)
	}
	if _, err := interactions.AddComment(ctx, project.ID, user.ID, "adeus"); err != nil {
		t.Fatalf("comment: %v", err)
	}
	media := models.ProjectMedia{ProjectID: project.ID, Filename: "f.png", OriginalFilename: "f.png", MediaType: "image"}
	if err := db.Create(&media).Error; err != nil {
		t.Fatalf("seeding media: %v", err)
	}

	if err := curation.DeleteProject(ctx, project.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}

	for _, check := range []struct {
		name  string
		model any
	}{
		{"likes", &models.Like{}},
		{"comments", &models.Comment{}},
		{"media", &models.ProjectMedia{}},
	} {
		if got := countRows(t, db, check.model, "project_id = ?", project.ID); got != 0 {
			t.Errorf("%s rows after delete = %d, want 0", check.name, got)
		}
	}

	// The category survives.
	if got := countRows(t, db, &models.Category{}, "id = ?", category.ID); got != 1 {
		t.Error("category was deleted with the project")
	}
}

func TestDeleteProjectMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurationService(db, &fakeUploader{})

	if err := svc.DeleteProject(context.Background(), uuid.New()); !errs.IsNotFound(err) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestDeleteCategoryDetachesProjects(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurationService(db, &fakeUploader{})
	ctx := context.Background()

	category, err := svc.SaveCategory(ctx, CategoryInput{Name: "Mobile"}, nil)
	if err != nil {
		t.Fatalf("SaveCategory: %v", err)
	}

	project := seedProject(t, db, "App", "app")
	if err := db.Model(project).Update("category_id", category.ID).Error; err != nil {
		t.Fatalf("attaching category: %v", err)
	}

	if err := svc.DeleteCategory(ctx, category.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	got := reloadProject(t, db, project.ID)
	if got.CategoryID != nil {
		t.Errorf("project still references deleted category %v", *got.CategoryID)
	}
}

func TestSaveCategoryDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurationService(db, &fakeUploader{})
	ctx := context.Background()

	if _, err := svc.SaveCategory(ctx, CategoryInput{Name: "Games"}, nil); err != nil {
		t.Fatalf("first SaveCategory: %v", err)
	}
	if _, err := svc.SaveCategory(ctx, CategoryInput{Name: "Games"}, nil); err == nil {
		t.Error("duplicate category name accepted")
	}
}

func TestSaveAboutPageSingleton(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurationService(db, &fakeUploader{})
	ctx := context.Background()

	first, err := svc.SaveAboutPage(ctx, AboutInput{
		Title:        "Sobre Mim",
		Content:      "bio",
		Skills:       `["Go","Python"]`,
		ContactEmail: "me@example.com",
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if first.ID != models.AboutPageID {
		t.Errorf("about ID = %d, want %d", first.ID, models.AboutPageID)
	}

	second, err := svc.SaveAboutPage(ctx, AboutInput{Title: "Título Novo", Content: "bio 2"})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second save created a new row: %d", second.ID)
	}
	if got := countRows(t, db, &models.AboutPage{}, "1 = 1"); got != 1 {
		t.Errorf("about rows = %d, want 1", got)
	}
	if second.Content == nil || *second.Content != "bio 2" {
		t.Errorf("content not overwritten: %v", second.Content)
	}
}

// TestSaveAboutPageOverwritesBlanks: every submitted field replaces
// the stored one, blanks included.
func TestSaveAboutPageOverwritesBlanks(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurationService(db, &fakeUploader{})
	ctx := context.Background()

	if _, err := svc.SaveAboutPage(ctx, AboutInput{
		Title:        "Sobre Mim",
		Skills:       `["Go"]`,
		ContactEmail: "me@example.com",
	}); err != nil {
		t.Fatalf("first save: %v", err)
	}

	saved, err := svc.SaveAboutPage(ctx, AboutInput{})
	if err != nil {
		t.Fatalf("blank save: %v", err)
	}
	if saved.Title != "" {
		t.Errorf("title kept its old value: %q", saved.Title)
	}
	if saved.Skills != nil {
		t.Errorf("skills kept their old value: %s", saved.Skills)
	}
	if saved.ContactEmail != nil {
		t.Errorf("contact email kept its old value: %v", saved.ContactEmail)
	}
}

func TestMarkNotificationReadIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCurationService(db, &fakeUploader{})
	ctx := context.Background()

	notification := NewNotification("Oi", "mensagem", models.NotificationTypeGeneral, nil, nil)
	if err := db.Create(notification).Error; err != nil {
		t.Fatalf("seeding notification: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := svc.MarkNotificationRead(ctx, notification.ID); err != nil {
			t.Fatalf("MarkNotificationRead call %d: %v", i+1, err)
		}
	}

	var got models.Notification
	if err := db.First(&got, "id = ?", notification.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !got.IsRead {
		t.Error("is_read = false after marking read")
	}

	if err := svc.MarkNotificationRead(ctx, uuid.New()); !errs.IsNotFound(err) {
		t.Errorf("missing id: err = %v, want not-found", err)
	}
}
