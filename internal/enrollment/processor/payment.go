package processor

import (
	"strings"

	"hunt-server/internal/store"
)

var paymentTransitions = map[store.PaymentStatus][]store.PaymentStatus{
	store.PaymentStatusNone:     {store.PaymentStatusAwaiting, store.PaymentStatusPaid},
	store.PaymentStatusAwaiting: {store.PaymentStatusPaid, store.PaymentStatusNone},
	store.PaymentStatusPaid:     {store.PaymentStatusRefunded},
}

// CanTransitionPayment reports whether the payment axis may move from one status to another.
func CanTransitionPayment(from, to store.PaymentStatus) bool {
	for _, allowed := range paymentTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func validPaymentStatus(s store.PaymentStatus) bool {
	switch s {
	case store.PaymentStatusNone, store.PaymentStatusAwaiting, store.PaymentStatusPaid, store.PaymentStatusRefunded:
		return true
	}
	return false
}

// MapInboundPaymentStatus maps the payment service vocabulary onto PaymentStatus.
// Anything that is not paid, refunded or awaiting (failed, expired, voided) counts as NONE.
func MapInboundPaymentStatus(raw string) store.PaymentStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PAID":
		return store.PaymentStatusPaid
	case "REFUNDED":
		return store.PaymentStatusRefunded
	case "AWAITING":
		return store.PaymentStatusAwaiting
	default:
		return store.PaymentStatusNone
	}
}
