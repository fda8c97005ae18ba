package card

import (
	"fmt"
	"time"
)

// BalanceCard holds a prepaid balance charged one fare per ride. Balance
// cards are always issued to the regular category. Invariant: the balance is
// only ever decremented behind a fare pre-check, so it never goes negative.
type BalanceCard struct {
	id      string
	balance float64
}

// NewBalance issues a balance card with the given starting balance.
func NewBalance(id string, initial float64) *BalanceCard {
	return &BalanceCard{id: id, balance: initial}
}

func (c *BalanceCard) ID() string         { return c.id }
func (c *BalanceCard) Category() Category { return CategoryRegular }

// Balance is the amount currently on the card.
func (c *BalanceCard) Balance() float64 { return c.balance }

// TopUp adds funds to the card.
func (c *BalanceCard) TopUp(amount float64) {
	c.balance += amount
}

func (c *BalanceCard) Valid(time.Time) bool {
	return c.balance >= Fare
}

func (c *BalanceCard) UseTrip(time.Time) bool {
	if c.balance < Fare {
		return false
	}
	c.balance -= Fare
	return true
}

func (c *BalanceCard) Denial(time.Time) Denial {
	return Denial{Kind: DenialInsufficientBalance, Balance: c.balance}
}

func (c *BalanceCard) Describe() string {
	return fmt.Sprintf("balance card %s (balance %.2f)", c.id, c.balance)
}
