package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/bruxa61/PortfolioRAFA/models"
)

// NewNotification builds an unread notification value. The caller
// inserts it inside its own transaction so the notification commits
// atomically with the mutation that triggered it.
func NewNotification(title, message, kind string, relatedProjectID *uuid.UUID, relatedUserID *string) *models.Notification {
	switch kind {
	case models.NotificationTypeLike, models.NotificationTypeComment, models.NotificationTypeGeneral:
	default:
		kind = models.NotificationTypeGeneral
	}

	return &models.Notification{
		Title:            title,
		Message:          message,
		Type:             kind,
		IsRead:           false,
		RelatedProjectID: relatedProjectID,
		RelatedUserID:    relatedUserID,
	}
}

func newLikeNotification(project *models.Project, actor *models.User) *models.Notification {
	return NewNotification(
		"Nova curtida!",
		fmt.Sprintf("%s curtiu o projeto '%s'", actor.DisplayName(), project.Title),
		models.NotificationTypeLike,
		&project.ID,
		&actor.ID,
	)
}

func newCommentNotification(project *models.Project, actor *models.User) *models.Notification {
	return NewNotification(
		"Novo comentário!",
		fmt.Sprintf("%s comentou no projeto '%s'", actor.DisplayName(), project.Title),
		models.NotificationTypeComment,
		&project.ID,
		&actor.ID,
	)
}
