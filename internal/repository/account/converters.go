package account

import (
	"parcel-service/internal/entities"
)

func ToDomain(a *AccountDB) *entities.Account {
	if a == nil {
		return nil
	}

	return &entities.Account{
		ID:             a.ID,
		Name:           a.Name,
		Phone:          a.Phone,
		Kind:           entities.AccountKindType(a.Kind),
		FreeDeliveries: a.FreeDeliveries,
		Counters: entities.AccountCounters{
			TotalSentParcels:     a.TotalSentParcels,
			TotalReceivedParcels: a.TotalReceivedParcels,
			TotalOrders:          a.TotalOrders,
			TotalDelivered:       a.TotalDelivered,
			TotalEarning:         a.TotalEarning,
			MonthlyEarnings:      a.MonthlyEarnings,
			TotalAmountSpent:     a.TotalAmountSpent,
			TripsPerDay:          a.TripsPerDay,
			TotalTripsCompleted:  a.TotalTripsCompleted,
		},
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func FromDomainModify(accountModify *entities.AccountModify) *AccountModifyDB {
	if accountModify == nil {
		return nil
	}
	accountDB := &AccountModifyDB{}

	if accountModify.ID != nil {
		accountDB.ID = accountModify.ID
	}
	if accountModify.Name != nil {
		accountDB.Name = accountModify.Name
	}
	if accountModify.Phone != nil {
		accountDB.Phone = accountModify.Phone
	}
	if accountModify.Kind != nil {
		kind := accountModify.Kind.String()
		accountDB.Kind = &kind
	}
	if accountModify.FreeDeliveries != nil {
		accountDB.FreeDeliveries = accountModify.FreeDeliveries
	}

	return accountDB
}

func ToReviewDomain(rv *ReviewDB) *entities.Review {
	if rv == nil {
		return nil
	}

	return &entities.Review{
		ID:        rv.ID,
		AccountID: rv.AccountID,
		ParcelID:  rv.ParcelID,
		RaterID:   rv.RaterID,
		Rating:    rv.Rating,
		Body:      rv.Body,
		CreatedAt: rv.CreatedAt,
	}
}

func ToReviewDomainList(reviewModels []ReviewDB) []entities.Review {
	reviews := make([]entities.Review, 0, len(reviewModels))
	for i := range reviewModels {
		reviews = append(reviews, *ToReviewDomain(&reviewModels[i]))
	}
	return reviews
}
