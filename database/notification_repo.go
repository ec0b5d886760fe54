package database

import (
	"gorm.io/gorm"

	"github.com/bruxa61/PortfolioRAFA/models"
)

type NotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *NotificationRepo {
	return &NotificationRepo{db}
}

// FindUnread returns unread notifications for the admin dashboard,
// newest first.
func (r *NotificationRepo) FindUnread(limit int) ([]*models.Notification, error) {
	var notifications []*models.Notification
	err := r.db.Where("is_read = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}
