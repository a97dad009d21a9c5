package domain

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodBoleto     PaymentMethod = "BOLETO"
	PaymentMethodPix        PaymentMethod = "PIX"
)

// RequiresCardDetails reports whether the card field set must be filled
// for this payment method.
func (m PaymentMethod) RequiresCardDetails() bool {
	return m == PaymentMethodCreditCard
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodBoleto, PaymentMethodPix:
		return true
	}
	return false
}

type Address struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
}

type CardDetails struct {
	HolderName string `json:"holder_name"`
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

type SubmissionStatus string

const (
	SubmissionIdle       SubmissionStatus = "IDLE"
	SubmissionValidating SubmissionStatus = "VALIDATING"
	SubmissionSubmitting SubmissionStatus = "SUBMITTING"
	SubmissionSucceeded  SubmissionStatus = "SUCCEEDED"
	SubmissionFailed     SubmissionStatus = "FAILED"
)

// IsTerminal reports whether no further transition is possible.
// FAILED is not terminal: the user corrects the form and resubmits.
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionSucceeded
}

// String representation (for logging)
func (s SubmissionStatus) String() string {
	return string(s)
}

// CanTransitionTo guards the submission state machine. SUBMITTING -> FAILED
// only occurs when a simulated failure has been injected.
func CanTransitionTo(from, to SubmissionStatus) bool {
	switch from {
	case SubmissionIdle:
		return to == SubmissionValidating
	case SubmissionValidating:
		return to == SubmissionSubmitting || to == SubmissionFailed
	case SubmissionSubmitting:
		return to == SubmissionSucceeded || to == SubmissionFailed
	case SubmissionFailed:
		return to == SubmissionIdle
	}
	return false
}
