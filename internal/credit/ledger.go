// Package credit implements the pricing rule and the balance debit used
// by provisioning. The debit itself always runs inside the caller's
// transaction so the charge and the Project creation commit or roll back
// together.
package credit

import (
	"context"
	"errors"
	"fmt"

	"repolens/internal/gateway/ent"
	"repolens/internal/gateway/ent/user"
)

// ErrInsufficientCredits is returned when a user's balance cannot cover
// the computed charge. No partial debit ever happens.
var ErrInsufficientCredits = errors.New("credit: insufficient credits")

// Pricing computes the charge for an index run. The rule is fixed:
// CreditsPerFile credits per eligible file.
type Pricing struct {
	CreditsPerFile int
}

// Cost returns the credits required to index fileCount files.
func (p Pricing) Cost(fileCount int) int {
	per := p.CreditsPerFile
	if per <= 0 {
		per = 1
	}
	if fileCount < 0 {
		return 0
	}
	return fileCount * per
}

// Balance reads a user's current balance.
func Balance(ctx context.Context, client *ent.Client, userID string) (int, error) {
	u, err := client.User.Query().Where(user.ID(userID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, fmt.Errorf("credit: unknown user %s", userID)
		}
		return 0, err
	}
	return u.CreditBalance, nil
}

// DebitTx decrements a user's balance by amount inside tx. It re-reads
// the balance under the transaction so a concurrent debit cannot drive
// it negative.
func DebitTx(ctx context.Context, tx *ent.Tx, userID string, amount int) error {
	if amount < 0 {
		return fmt.Errorf("credit: negative debit %d", amount)
	}
	u, err := tx.User.Query().Where(user.ID(userID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("credit: unknown user %s", userID)
		}
		return err
	}
	if u.CreditBalance < amount {
		return fmt.Errorf("%w: balance %d, need %d", ErrInsufficientCredits, u.CreditBalance, amount)
	}
	_, err = tx.User.UpdateOneID(userID).
		SetCreditBalance(u.CreditBalance - amount).
		Save(ctx)
	return err
}
