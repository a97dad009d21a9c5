package checkout

import (
	"strings"

	"github.com/saylla/ponto-eletronico-shop/internal/domain"
)

// Form holds the checkout field values as the user fills them in.
// Card details are kept when the user switches away from credit card:
// they are simply not validated or submitted until switched back.
type Form struct {
	Address       domain.Address
	PaymentMethod domain.PaymentMethod
	Card          domain.CardDetails
}

// NewForm returns an empty form with credit card preselected, matching the
// default selection on the checkout screen.
func NewForm() *Form {
	return &Form{PaymentMethod: domain.PaymentMethodCreditCard}
}

// SetField merges a single field update into the form without touching
// unrelated fields. Paths use the wire names, card fields prefixed "card.".
func (f *Form) SetField(path, value string) error {
	switch path {
	case "full_name":
		f.Address.FullName = value
	case "email":
		f.Address.Email = value
	case "street":
		f.Address.Street = value
	case "city":
		f.Address.City = value
	case "state":
		f.Address.State = value
	case "zip_code":
		f.Address.ZipCode = value
	case "card.holder_name":
		f.Card.HolderName = value
	case "card.number":
		f.Card.Number = value
	case "card.expiry":
		f.Card.Expiry = value
	case "card.cvv":
		f.Card.CVV = value
	default:
		return ErrUnknownField
	}
	return nil
}

func (f *Form) SetPaymentMethod(method domain.PaymentMethod) error {
	if !method.Valid() {
		return ErrInvalidPaymentMethod
	}
	f.PaymentMethod = method
	return nil
}

// Validate checks the address fields first, then the card fields when the
// selected payment method requires them. The first failure wins; errors are
// not aggregated.
func (f *Form) Validate() error {
	if anyBlank(
		f.Address.FullName,
		f.Address.Email,
		f.Address.Street,
		f.Address.City,
		f.Address.State,
		f.Address.ZipCode,
	) {
		return ErrMissingAddressFields
	}

	if f.PaymentMethod.RequiresCardDetails() {
		if anyBlank(f.Card.HolderName, f.Card.Number, f.Card.Expiry, f.Card.CVV) {
			return ErrMissingCardFields
		}
	}

	return nil
}

func anyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
