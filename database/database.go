package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/bruxa61/PortfolioRAFA/models"
)

type Database struct {
	db               *gorm.DB
	userRepo         *UserRepo
	categoryRepo     *CategoryRepo
	projectRepo      *ProjectRepo
	commentRepo      *CommentRepo
	likeRepo         *LikeRepo
	notificationRepo *NotificationRepo
	aboutPageRepo    *AboutPageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:               db,
		userRepo:         NewUserRepo(db),
		categoryRepo:     NewCategoryRepo(db),
		projectRepo:      NewProjectRepo(db),
		commentRepo:      NewCommentRepo(db),
		likeRepo:         NewLikeRepo(db),
		notificationRepo: NewNotificationRepo(db),
		aboutPageRepo:    NewAboutPageRepo(db),
	}
}

// Migrate creates or updates the schema for every registered model.
func (d Database) Migrate() error {
	return d.db.AutoMigrate(models.All()...)
}

// Ping verifies datastore connectivity for the health endpoint.
func (d Database) Ping(ctx context.Context) error {
	var result int
	return d.db.WithContext(ctx).Raw("SELECT 1").Scan(&result).Error
}

// DB returns the shared GORM handle for transactional services.
func (d Database) DB() *gorm.DB {
	return d.db
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) LikeRepo() *LikeRepo {
	return d.likeRepo
}

func (d Database) NotificationRepo() *NotificationRepo {
	return d.notificationRepo
}

func (d Database) AboutPageRepo() *AboutPageRepo {
	return d.aboutPageRepo
}
