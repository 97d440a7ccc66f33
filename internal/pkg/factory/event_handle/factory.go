package event_handle

import (
	"fmt"

	"parcel-service/internal/entities"
	"parcel-service/internal/service/notification"
)

type EventHandlerFactory struct{}

func NewEventHandlerFactory() *EventHandlerFactory {
	return &EventHandlerFactory{}
}

func (f *EventHandlerFactory) GetHandler(kind entities.ParcelEventKind) (notification.RenderFn, error) {
	switch kind {
	case entities.EventRequested:
		return requestedHandler, nil
	case entities.EventAssigned:
		return assignedHandler, nil
	case entities.EventRejected:
		return rejectedHandler, nil
	case entities.EventCancelled:
		return cancelledHandler, nil
	case entities.EventDelivered:
		return deliveredHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", notification.ErrUndefinedEventKind, kind)
	}
}

func requestedHandler(event entities.ParcelEvent) (string, string) {
	return "New delivery request",
		fmt.Sprintf("%s offers to deliver %q for %.2f", event.CounterpartName, event.ParcelTitle, event.Price)
}

func assignedHandler(event entities.ParcelEvent) (string, string) {
	return "You were assigned",
		fmt.Sprintf("%s assigned you to deliver %q for %.2f", event.CounterpartName, event.ParcelTitle, event.Price)
}

func rejectedHandler(event entities.ParcelEvent) (string, string) {
	return "Delivery request declined",
		fmt.Sprintf("%s declined your request to deliver %q", event.CounterpartName, event.ParcelTitle)
}

func cancelledHandler(event entities.ParcelEvent) (string, string) {
	return "Delivery cancelled",
		fmt.Sprintf("%s cancelled the delivery of %q", event.CounterpartName, event.ParcelTitle)
}

func deliveredHandler(event entities.ParcelEvent) (string, string) {
	return "Parcel delivered",
		fmt.Sprintf("%s delivered %q, %.2f charged", event.CounterpartName, event.ParcelTitle, event.Price)
}
