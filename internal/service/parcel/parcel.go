package parcel

import (
	"context"
	"fmt"

	"parcel-service/internal/entities"
)

// Parcel реализует state machine жизненного цикла посылки и консистентность
// зависящих от нее агрегатов аккаунтов. Каждая мутирующая операция выполняется
// в транзакции, первым шагом берется блокировка строки посылки, поэтому
// проверка предусловий и запись атомарны относительно других мутаторов.
type Parcel struct {
	repository     Repository
	accountService AccountService
	geocoder       Geocoder
	outbox         Outbox
	txManager      TxManager
}

func New(
	repository Repository,
	accountService AccountService,
	geocoder Geocoder,
	outbox Outbox,
	txManager TxManager,
) *Parcel {
	return &Parcel{
		repository:     repository,
		accountService: accountService,
		geocoder:       geocoder,
		outbox:         outbox,
		txManager:      txManager,
	}
}

func (s *Parcel) CreateParcel(ctx context.Context, caller entities.Caller, draft entities.ParcelDraft) (*entities.Parcel, error) {
	if !isValidID(caller.AccountID) {
		return nil, ErrInvalidAccountID
	}
	if !isValidAddress(draft.PickupAddress) || !isValidAddress(draft.DropoffAddress) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidPrice(draft.Price) {
		return nil, ErrInvalidPrice
	}
	if !isValidDeliveryType(draft.DeliveryType) {
		return nil, ErrInvalidDeliveryType
	}

	// Геокодируем до транзакции, внешний вызов не должен держать блокировки.
	pickup, err := s.geocoder.Resolve(ctx, draft.PickupAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve pickup: %w", ErrGeocodingUnavailable, err)
	}
	dropoff, err := s.geocoder.Resolve(ctx, draft.DropoffAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve dropoff: %w", ErrGeocodingUnavailable, err)
	}

	var created *entities.Parcel
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.accountService.GetAccount(ctx, caller.AccountID); err != nil {
			return fmt.Errorf("get sender account: %w", err)
		}

		status := entities.ParcelPending
		parcelModify := entities.ParcelModify{
			SenderID:     &caller.AccountID,
			Title:        &draft.Title,
			Pickup:       pickup,
			Dropoff:      dropoff,
			DeliveryType: &draft.DeliveryType,
			Price:        &draft.Price,
			Status:       &status,
		}

		created, err = s.repository.Create(ctx, parcelModify)
		if err != nil {
			return fmt.Errorf("create parcel: %w", err)
		}

		if _, err := s.accountService.ConsumeFreeDelivery(ctx, caller.AccountID); err != nil {
			return fmt.Errorf("consume free delivery: %w", err)
		}

		delta := entities.CounterDelta{
			AccountID:        caller.AccountID,
			TotalSentParcels: 1,
			TotalOrders:      1,
		}
		if err := s.accountService.ApplyCounterDelta(ctx, delta); err != nil {
			return fmt.Errorf("apply sender counters: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RequestToDeliver обрабатывает каждую посылку в собственной транзакции:
// конкурентные заявки на одну посылку складываются в множество, заявки на
// разные посылки друг друга не блокируют. Результат отдается поштучно.
func (s *Parcel) RequestToDeliver(ctx context.Context, caller entities.Caller, parcelIDs []int64) ([]entities.DeliveryRequestResult, error) {
	if len(parcelIDs) == 0 {
		return nil, ErrMissingRequiredFields
	}
	if !isValidID(caller.AccountID) {
		return nil, ErrInvalidAccountID
	}

	deliverer, err := s.accountService.GetAccount(ctx, caller.AccountID)
	if err != nil {
		return nil, fmt.Errorf("get deliverer account: %w", err)
	}

	results := make([]entities.DeliveryRequestResult, 0, len(parcelIDs))
	for _, parcelID := range parcelIDs {
		status, err := s.requestOne(ctx, deliverer, parcelID)
		results = append(results, entities.DeliveryRequestResult{
			ParcelID: parcelID,
			Status:   status,
			Err:      err,
		})
	}
	return results, nil
}

func (s *Parcel) requestOne(ctx context.Context, deliverer *entities.Account, parcelID int64) (entities.ParcelStatusType, error) {
	if !isValidID(parcelID) {
		return "", ErrInvalidParcelID
	}

	var resultStatus entities.ParcelStatusType
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("lock parcel: %w", err)
		}

		if current.SenderID == deliverer.ID {
			return ErrSelfDelivery
		}
		if current.Status != entities.ParcelPending && current.Status != entities.ParcelRequested {
			return ErrParcelStateConflict
		}

		inserted, err := s.repository.AddDeliveryRequest(ctx, parcelID, deliverer.ID)
		if err != nil {
			return fmt.Errorf("add delivery request: %w", err)
		}
		if !inserted {
			return ErrAlreadyRequested
		}

		resultStatus = current.Status
		if current.Status == entities.ParcelPending {
			requested := entities.ParcelRequested
			updated, err := s.repository.Update(ctx, entities.ParcelModify{
				ID:     &current.ID,
				Status: &requested,
			})
			if err != nil {
				return fmt.Errorf("advance parcel to requested: %w", err)
			}
			resultStatus = updated.Status
		}

		delta := entities.CounterDelta{
			AccountID:   deliverer.ID,
			TotalOrders: 1,
		}
		if err := s.accountService.ApplyCounterDelta(ctx, delta); err != nil {
			return fmt.Errorf("apply deliverer counters: %w", err)
		}

		return s.appendEvent(ctx, entities.EventRequested, current.SenderID, current, deliverer.Name)
	})
	if err != nil {
		return "", err
	}
	return resultStatus, nil
}

func (s *Parcel) AssignDeliverer(ctx context.Context, caller entities.Caller, parcelID, delivererID int64) (*entities.ParcelAssignment, error) {
	if !isValidID(parcelID) {
		return nil, ErrInvalidParcelID
	}
	if !isValidID(delivererID) {
		return nil, ErrInvalidAccountID
	}

	assignment := entities.ParcelAssignment{}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("lock parcel: %w", err)
		}

		if current.SenderID != caller.AccountID {
			return ErrNotParcelOwner
		}
		if current.Status != entities.ParcelRequested {
			return ErrParcelStateConflict
		}

		requests, err := s.repository.ListDeliveryRequests(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("list delivery requests: %w", err)
		}
		if !containsID(requests, delivererID) {
			return ErrNotRequested
		}

		sender, err := s.accountService.GetAccount(ctx, current.SenderID)
		if err != nil {
			return fmt.Errorf("get sender account: %w", err)
		}

		inTransit := entities.ParcelInTransit
		updated, err := s.repository.Update(ctx, entities.ParcelModify{
			ID:                  &current.ID,
			AssignedDelivererID: &delivererID,
			ReceiverID:          &delivererID,
			Status:              &inTransit,
		})
		if err != nil {
			return fmt.Errorf("assign deliverer: %w", err)
		}

		if err := s.repository.ClearDeliveryRequests(ctx, parcelID); err != nil {
			return fmt.Errorf("clear delivery requests: %w", err)
		}

		delta := entities.CounterDelta{
			AccountID:            delivererID,
			TotalReceivedParcels: 1,
		}
		if err := s.accountService.ApplyCounterDelta(ctx, delta); err != nil {
			return fmt.Errorf("apply deliverer counters: %w", err)
		}

		if err := s.appendEvent(ctx, entities.EventAssigned, delivererID, updated, sender.Name); err != nil {
			return err
		}

		assignment = entities.ParcelAssignment{
			ParcelID:    updated.ID,
			SenderID:    updated.SenderID,
			DelivererID: delivererID,
			Status:      updated.Status,
			AssignedAt:  updated.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// RemoveDeliveryRequest откат заявки отправителем: посылка возвращается в
// pending только когда множество заявок опустело.
func (s *Parcel) RemoveDeliveryRequest(ctx context.Context, caller entities.Caller, parcelID, delivererID int64) (*entities.Parcel, error) {
	if !isValidID(parcelID) {
		return nil, ErrInvalidParcelID
	}
	if !isValidID(delivererID) {
		return nil, ErrInvalidAccountID
	}

	var result *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("lock parcel: %w", err)
		}

		if current.SenderID != caller.AccountID {
			return ErrNotParcelOwner
		}
		if current.Status != entities.ParcelRequested {
			return ErrParcelStateConflict
		}

		removed, err := s.repository.RemoveDeliveryRequest(ctx, parcelID, delivererID)
		if err != nil {
			return fmt.Errorf("remove delivery request: %w", err)
		}
		if !removed {
			return ErrNotRequested
		}

		remaining, err := s.repository.ListDeliveryRequests(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("list delivery requests: %w", err)
		}

		result = current
		result.DeliveryRequests = remaining
		if len(remaining) == 0 {
			pending := entities.ParcelPending
			result, err = s.repository.Update(ctx, entities.ParcelModify{
				ID:     &current.ID,
				Status: &pending,
			})
			if err != nil {
				return fmt.Errorf("revert parcel to pending: %w", err)
			}
		}

		sender, err := s.accountService.GetAccount(ctx, current.SenderID)
		if err != nil {
			return fmt.Errorf("get sender account: %w", err)
		}

		return s.appendEvent(ctx, entities.EventRejected, delivererID, current, sender.Name)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Parcel) CancelAssignment(ctx context.Context, caller entities.Caller, parcelID int64) (*entities.Parcel, error) {
	if !isValidID(parcelID) {
		return nil, ErrInvalidParcelID
	}

	var result *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("lock parcel: %w", err)
		}

		if current.SenderID != caller.AccountID {
			return ErrNotParcelOwner
		}
		if current.Status != entities.ParcelInTransit || current.AssignedDelivererID == nil {
			return ErrParcelStateConflict
		}

		delivererID := *current.AssignedDelivererID

		sender, err := s.accountService.GetAccount(ctx, current.SenderID)
		if err != nil {
			return fmt.Errorf("get sender account: %w", err)
		}

		result, err = s.releaseParcel(ctx, parcelID)
		if err != nil {
			return err
		}

		return s.appendEvent(ctx, entities.EventCancelled, delivererID, current, sender.Name)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Parcel) CancelByDeliverer(ctx context.Context, caller entities.Caller, parcelID int64) (*entities.Parcel, error) {
	if !isValidID(parcelID) {
		return nil, ErrInvalidParcelID
	}

	var result *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("lock parcel: %w", err)
		}

		if current.Status != entities.ParcelInTransit {
			return ErrParcelStateConflict
		}
		if current.AssignedDelivererID == nil || *current.AssignedDelivererID != caller.AccountID {
			return ErrNotAssignedDeliverer
		}

		deliverer, err := s.accountService.GetAccount(ctx, caller.AccountID)
		if err != nil {
			return fmt.Errorf("get deliverer account: %w", err)
		}

		result, err = s.releaseParcel(ctx, parcelID)
		if err != nil {
			return err
		}

		return s.appendEvent(ctx, entities.EventCancelled, current.SenderID, current, deliverer.Name)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AdvanceStatus выполняется назначенным исполнителем. delivered терминален:
// повторная попытка перевода упирается в state conflict, поэтому начисления
// не могут задвоиться при ретраях клиента.
func (s *Parcel) AdvanceStatus(ctx context.Context, caller entities.Caller, parcelID int64, newStatus entities.ParcelStatusType) (*entities.Parcel, error) {
	if !isValidID(parcelID) {
		return nil, ErrInvalidParcelID
	}
	if !isValidAdvanceTarget(newStatus) {
		return nil, ErrInvalidStatus
	}

	var result *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("lock parcel: %w", err)
		}

		if current.Status != entities.ParcelInTransit {
			return ErrParcelStateConflict
		}
		if current.AssignedDelivererID == nil || *current.AssignedDelivererID != caller.AccountID {
			return ErrNotAssignedDeliverer
		}

		if newStatus == entities.ParcelInTransit {
			result = current
			return nil
		}

		delivered := entities.ParcelDelivered
		result, err = s.repository.Update(ctx, entities.ParcelModify{
			ID:     &current.ID,
			Status: &delivered,
		})
		if err != nil {
			return fmt.Errorf("advance parcel to delivered: %w", err)
		}

		deliverer, err := s.accountService.GetAccount(ctx, caller.AccountID)
		if err != nil {
			return fmt.Errorf("get deliverer account: %w", err)
		}

		delivererDelta := entities.CounterDelta{
			AccountID:            caller.AccountID,
			TotalEarning:         current.Price,
			MonthlyEarnings:      current.Price,
			TotalReceivedParcels: 1,
			TotalTripsCompleted:  1,
			TripCompleted:        true,
		}
		if err := s.accountService.ApplyCounterDelta(ctx, delivererDelta); err != nil {
			return fmt.Errorf("apply deliverer counters: %w", err)
		}

		senderDelta := entities.CounterDelta{
			AccountID:        current.SenderID,
			TotalDelivered:   1,
			TotalAmountSpent: current.Price,
		}
		if err := s.accountService.ApplyCounterDelta(ctx, senderDelta); err != nil {
			return fmt.Errorf("apply sender counters: %w", err)
		}

		return s.appendEvent(ctx, entities.EventDelivered, current.SenderID, current, deliverer.Name)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Parcel) DeleteParcel(ctx context.Context, caller entities.Caller, parcelID int64) error {
	if !isValidID(parcelID) {
		return ErrInvalidParcelID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("lock parcel: %w", err)
		}

		if current.SenderID != caller.AccountID {
			return ErrNotParcelOwner
		}
		if current.Status != entities.ParcelPending && current.Status != entities.ParcelRequested {
			return ErrParcelStateConflict
		}

		if err := s.repository.Delete(ctx, parcelID); err != nil {
			return fmt.Errorf("delete parcel: %w", err)
		}

		delta := entities.CounterDelta{
			AccountID:        current.SenderID,
			TotalSentParcels: -1,
			TotalOrders:      -1,
		}
		if err := s.accountService.ApplyCounterDelta(ctx, delta); err != nil {
			return fmt.Errorf("apply sender counters: %w", err)
		}
		return nil
	})
}

func (s *Parcel) PostReview(ctx context.Context, caller entities.Caller, parcelID, targetAccountID int64, rating int32, body string) (*entities.Review, error) {
	if !isValidID(parcelID) {
		return nil, ErrInvalidParcelID
	}
	if !isValidID(targetAccountID) {
		return nil, ErrInvalidAccountID
	}
	if !isValidRating(rating) {
		return nil, ErrInvalidRating
	}

	current, err := s.repository.GetByID(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}

	if current.Status != entities.ParcelDelivered {
		return nil, ErrParcelStateConflict
	}
	if !isParcelParty(current, caller.AccountID) {
		return nil, ErrNotParcelOwner
	}
	if !isParcelParty(current, targetAccountID) {
		return nil, ErrNotParcelParty
	}

	review, err := s.accountService.AddReview(ctx, entities.ReviewModify{
		AccountID: &targetAccountID,
		ParcelID:  &parcelID,
		RaterID:   &caller.AccountID,
		Rating:    &rating,
		Body:      &body,
	})
	if err != nil {
		return nil, fmt.Errorf("add review: %w", err)
	}
	return review, nil
}

func (s *Parcel) GetParcel(ctx context.Context, parcelID int64) (*entities.Parcel, error) {
	if !isValidID(parcelID) {
		return nil, ErrInvalidParcelID
	}

	current, err := s.repository.GetByID(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	return current, nil
}

// ListAvailable lock-free чтение витрины, слегка устаревшее состояние
// допустимо: мутация все равно перепроверит предусловия под блокировкой.
func (s *Parcel) ListAvailable(ctx context.Context) ([]entities.Parcel, error) {
	parcels, err := s.repository.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available parcels: %w", err)
	}
	return parcels, nil
}

func (s *Parcel) ListBySender(ctx context.Context, senderID int64) ([]entities.Parcel, error) {
	if !isValidID(senderID) {
		return nil, ErrInvalidAccountID
	}

	parcels, err := s.repository.ListBySender(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("list parcels by sender: %w", err)
	}
	return parcels, nil
}

func (s *Parcel) ListByDeliverer(ctx context.Context, delivererID int64) ([]entities.Parcel, error) {
	if !isValidID(delivererID) {
		return nil, ErrInvalidAccountID
	}

	parcels, err := s.repository.ListByAssignedDeliverer(ctx, delivererID)
	if err != nil {
		return nil, fmt.Errorf("list parcels by deliverer: %w", err)
	}
	return parcels, nil
}

func (s *Parcel) ListRequestedBy(ctx context.Context, delivererID int64) ([]entities.Parcel, error) {
	if !isValidID(delivererID) {
		return nil, ErrInvalidAccountID
	}

	parcels, err := s.repository.ListByRequestMember(ctx, delivererID)
	if err != nil {
		return nil, fmt.Errorf("list requested parcels: %w", err)
	}
	return parcels, nil
}

// releaseParcel снимает назначение и чистит заявки, посылка снова pending.
func (s *Parcel) releaseParcel(ctx context.Context, parcelID int64) (*entities.Parcel, error) {
	released, err := s.repository.ClearAssignment(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("clear assignment: %w", err)
	}
	if err := s.repository.ClearDeliveryRequests(ctx, parcelID); err != nil {
		return nil, fmt.Errorf("clear delivery requests: %w", err)
	}
	return released, nil
}

func (s *Parcel) appendEvent(ctx context.Context, kind entities.ParcelEventKind, recipientID int64, parcel *entities.Parcel, counterpartName string) error {
	eventModify := entities.ParcelEventModify{
		Kind:            &kind,
		RecipientID:     &recipientID,
		ParcelID:        &parcel.ID,
		ParcelTitle:     &parcel.Title,
		Price:           &parcel.Price,
		CounterpartName: &counterpartName,
	}
	if err := s.outbox.Append(ctx, eventModify); err != nil {
		return fmt.Errorf("append %s event: %w", kind, err)
	}
	return nil
}

func isParcelParty(p *entities.Parcel, accountID int64) bool {
	if p.SenderID == accountID {
		return true
	}
	if p.AssignedDelivererID != nil && *p.AssignedDelivererID == accountID {
		return true
	}
	if p.ReceiverID != nil && *p.ReceiverID == accountID {
		return true
	}
	return false
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
