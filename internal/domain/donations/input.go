package donations

import (
	"github.com/shopspring/decimal"

	"shelter-records/internal/platform/civil"
	"shelter-records/internal/platform/fields"
)

// Claves del formulario público de donación.
const (
	keyDonorName    = "donorName"
	keyDonorContact = "donorContact"
	keyAmount       = "donationAmount"
)

type SubmitInput struct {
	DonorName    string
	DonorContact string
	Amount       decimal.Decimal
}

// ParseSubmission valida el monto antes de abrir la tx: un monto inválido no escribe nada.
func ParseSubmission(m fields.Map) (SubmitInput, error) {
	var in SubmitInput
	var err error

	if in.DonorName, err = m.RequiredString(keyDonorName); err != nil {
		return SubmitInput{}, err
	}
	if in.Amount, err = m.RequiredAmount(keyAmount); err != nil {
		return SubmitInput{}, err
	}
	if in.DonorContact, err = m.Text(keyDonorContact); err != nil {
		return SubmitInput{}, err
	}
	return in, nil
}

type UpdateInput struct {
	DonorID *int64
	Amount  *decimal.Decimal
	Date    *civil.Date
	Method  *string
}

func ParseUpdate(m fields.Map) (UpdateInput, error) {
	var in UpdateInput

	id, ok, err := m.Int("DonorID")
	if err != nil {
		return UpdateInput{}, err
	}
	if ok {
		in.DonorID = &id
	}

	amount, ok, err := m.Amount("Amount")
	if err != nil {
		return UpdateInput{}, err
	}
	if ok {
		in.Amount = &amount
	}

	d, ok, err := m.Date("Date")
	if err != nil {
		return UpdateInput{}, err
	}
	if ok {
		in.Date = &d
	}

	if in.Method, err = m.OptionalString("Method"); err != nil {
		return UpdateInput{}, err
	}
	return in, nil
}

func (in UpdateInput) apply(d *Donation) {
	if in.DonorID != nil {
		d.DonorID = *in.DonorID
	}
	if in.Amount != nil {
		d.Amount = *in.Amount
	}
	if in.Date != nil {
		d.Date = *in.Date
	}
	if in.Method != nil {
		d.Method = *in.Method
	}
}
