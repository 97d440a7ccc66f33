package outbox

import "parcel-service/internal/entities"

func ToDomain(e *ParcelEventDB) *entities.ParcelEvent {
	if e == nil {
		return nil
	}

	return &entities.ParcelEvent{
		ID:              e.ID,
		Kind:            entities.ParcelEventKind(e.Kind),
		RecipientID:     e.RecipientID,
		ParcelID:        e.ParcelID,
		ParcelTitle:     e.ParcelTitle,
		Price:           e.Price,
		CounterpartName: e.CounterpartName,
		CreatedAt:       e.CreatedAt,
		SentAt:          e.SentAt,
	}
}

func ToDomainList(eventModels []ParcelEventDB) []entities.ParcelEvent {
	events := make([]entities.ParcelEvent, 0, len(eventModels))
	for i := range eventModels {
		events = append(events, *ToDomain(&eventModels[i]))
	}
	return events
}
