package account

import (
	"strings"

	"parcel-service/internal/entities"
)

func isValidID(id int64) bool {
	return id > 0
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidKind(kind entities.AccountKindType) bool {
	switch kind {
	case entities.KindSender, entities.KindDeliverer, entities.KindAdmin:
		return true
	default:
		return false
	}
}

func isValidRating(rating int32) bool {
	return rating >= 1 && rating <= 5
}
