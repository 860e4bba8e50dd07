package model

import "inn/shared/model"

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldAmount        = "amount"
	FieldPaymentMethod = "payment_method"
	FieldPaymentStatus = "payment_status"
)

type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "Cash"
	PaymentMethodPaytm      PaymentMethod = "Paytm"
	PaymentMethodCreditCard PaymentMethod = "Credit Card"
	PaymentMethodBkash      PaymentMethod = "bKash"
	PaymentMethodNagad      PaymentMethod = "Nagad"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodPaytm, PaymentMethodCreditCard, PaymentMethodBkash, PaymentMethodNagad:
		return true
	default:
		return false
	}
}

// Electronic reports whether the method settles at payment time. Cash is
// settled at the reception desk, so it starts out Pending.
func (m PaymentMethod) Electronic() bool {
	return m.Valid() && m != PaymentMethodCash
}

// InitialStatus returns the payment status a newly attached payment starts
// in for this method.
func (m PaymentMethod) InitialStatus() PaymentStatus {
	if m.Electronic() {
		return PaymentStatusCompleted
	}

	return PaymentStatusPending
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPending || s == PaymentStatusCompleted
}

type Payment struct {
	ID            string        `db:"id"`
	BookingID     string        `db:"booking_id"`
	Amount        float64       `db:"amount"`
	PaymentMethod PaymentMethod `db:"payment_method"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	model.Metadata
}
