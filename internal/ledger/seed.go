package ledger

import "github.com/shopspring/decimal"

const (
	DemoAccountID    = "1234567890"
	ReserveAccountID = "999999"
)

type seedAccount struct {
	id      string
	owner   string
	balance int64
	pin     string
	kind    AccountType
}

var seeds = []seedAccount{
	{id: DemoAccountID, owner: "Demo User", balance: 5000, pin: "mybank@123", kind: Savings},
	{id: ReserveAccountID, owner: "Central Reserve", balance: 1000000, pin: "admin", kind: Checking},
}

// Seed creates the demo savings account and the reserve checking account.
func (r *Registry) Seed() error {
	for _, s := range seeds {
		if _, err := r.CreateAccount(s.id, s.owner, decimal.NewFromInt(s.balance), s.pin, s.kind); err != nil {
			return err
		}
	}
	return nil
}
