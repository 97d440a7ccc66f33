package notification

import "parcel-service/internal/entities"

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}

	return &entities.Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Kind:        entities.ParcelEventKind(n.Kind),
		ParcelID:    n.ParcelID,
		Title:       n.Title,
		Body:        n.Body,
		CreatedAt:   n.CreatedAt,
	}
}

func ToDomainList(notificationModels []NotificationDB) []entities.Notification {
	notifications := make([]entities.Notification, 0, len(notificationModels))
	for i := range notificationModels {
		notifications = append(notifications, *ToDomain(&notificationModels[i]))
	}
	return notifications
}
