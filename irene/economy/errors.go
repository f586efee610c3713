// Package economy holds the domain rules shared by the ledger, bag, shop and
// market engines: the error taxonomy, cooldown gating and reward resolution.
package economy

import (
	"errors"
	"fmt"
	"time"
)

// Expected, locally-recoverable outcomes. Every engine validates fully before
// mutating anything, so these never leave partial state behind.
var (
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
	ErrInvalidSelection     = errors.New("invalid selection")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrSelfTarget           = errors.New("cannot target yourself")
	ErrEmptyCatalog         = errors.New("card catalog is empty")
)

// CooldownError reports that a gated action is not ready yet.
type CooldownError struct {
	Action    string
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s on cooldown for %s", e.Action, e.Remaining)
}

// AsCooldown unwraps err into a CooldownError if it is one.
func AsCooldown(err error) (*CooldownError, bool) {
	var ce *CooldownError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
