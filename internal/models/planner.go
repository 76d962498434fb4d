package models

// Task is one checklist entry.
type Task struct {
	Name string
	Done bool
}

// PaymentMethod is how an expense was paid.
type PaymentMethod string

const (
	PaymentPix        PaymentMethod = "pix"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentCash       PaymentMethod = "cash"
	PaymentOther      PaymentMethod = "other"
)

// Valid reports whether m is one of the known methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentPix, PaymentCreditCard, PaymentCash, PaymentOther:
		return true
	}
	return false
}

// Expense is one entry of the expense ledger.
type Expense struct {
	// Description says what was bought (e.g., "Cake", "Balloons").
	Description string `json:"description"`

	// Amount is the price paid. Never negative.
	Amount float64 `json:"amount"`

	// PaymentMethod is one of the Payment* constants.
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// Gift is one entry of the gift registry.
type Gift struct {
	// Guest is who brought the gift.
	Guest string `json:"guest"`

	// Description is what the gift was.
	Description string `json:"description"`

	// ThankYouSent records whether a thank-you note went out.
	ThankYouSent bool `json:"thank_you_sent"`
}

// Suggestion is a gift idea shared with guests.
type Suggestion struct {
	Item    string `json:"item"`
	Details string `json:"details"`
}

// Game is a planned party game.
type Game struct {
	Name string `json:"name"`

	// Rules holds the rules and the materials needed, as free text.
	Rules string `json:"rules"`
}
