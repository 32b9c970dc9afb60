package payments

import "time"

// PaytrSettings is the single-row PayTR gateway configuration. Merchant
// credentials are stored verbatim and returned only to the admin dashboard.
type PaytrSettings struct {
	MerchantID   string    `json:"merchantId"`
	MerchantKey  string    `json:"merchantKey"`
	MerchantSalt string    `json:"merchantSalt"`
	TestMode     bool      `json:"testMode"`
	Enabled      bool      `json:"enabled"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DefaultPaytrSettings is what the dashboard sees before the gateway was
// ever configured. Card payments stay disabled and in test mode until the
// admin explicitly saves real credentials.
func DefaultPaytrSettings() *PaytrSettings {
	return &PaytrSettings{TestMode: true}
}

// BankAccount is a manual wire-transfer destination shown to clients at
// checkout when the card gateway is disabled.
type BankAccount struct {
	ID            int       `json:"id"`
	BankName      string    `json:"bankName"`
	AccountHolder string    `json:"accountHolder"`
	IBAN          string    `json:"iban"`
	Currency      string    `json:"currency"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
}
