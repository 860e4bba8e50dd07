package dto

import (
	"inn/internal/domains/payment/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type AttachPaymentRequest struct {
	BookingID     string  `json:"booking_id"     validate:"required"`
	Amount        float64 `json:"amount"         validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=Cash Paytm 'Credit Card' bKash Nagad"`
}

func (c *AttachPaymentRequest) ToModel(user string) model.Payment {
	method := model.PaymentMethod(c.PaymentMethod)

	return model.Payment{
		ID:            uuid.NewString(),
		BookingID:     c.BookingID,
		Amount:        c.Amount,
		PaymentMethod: method,
		PaymentStatus: method.InitialStatus(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	BookingID     string  `json:"booking_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	PaymentStatus string  `json:"payment_status"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.PaymentMethod = string(model.PaymentMethod)
	r.PaymentStatus = string(model.PaymentStatus)
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
