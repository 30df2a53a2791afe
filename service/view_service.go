package service

import (
	"sort"
	"strings"
	"time"

	"bankist/model"
)

// RenderView computes the complete view model for acc. It has no side
// effects; calling it twice with the same input gives the same output.
//
// Rows come newest first, as the page prepends each one. With sorted set the
// movements are ordered by ascending amount before that reversal, so the
// rows of a sorted view read in descending amount order: largest deposit
// first, largest withdrawal last. Index keeps the 1-based ascending position.
func RenderView(acc *model.Account, now time.Time, sorted bool, f *Formatter) *model.AccountView {
	summary := Summarize(acc.Amounts(), acc.InterestRate)

	movements := make([]model.Movement, len(acc.Movements))
	copy(movements, acc.Movements)
	if sorted {
		sort.SliceStable(movements, func(i, j int) bool {
			return movements[i].Amount.LessThan(movements[j].Amount)
		})
	}

	rows := make([]model.MovementRow, 0, len(movements))
	for i := len(movements) - 1; i >= 0; i-- {
		m := movements[i]
		kind := model.MovementWithdrawal
		if m.IsDeposit() {
			kind = model.MovementDeposit
		}
		rows = append(rows, model.MovementRow{
			Index: i + 1,
			Type:  kind,
			Date:  f.FormatMovementDate(m.Date, now),
			Value: f.FormatCurrency(m.Amount),
		})
	}

	return &model.AccountView{
		Username:  acc.Username,
		Welcome:   welcome(acc.Owner),
		Date:      f.FormatNow(now),
		Balance:   f.FormatCurrency(summary.Balance),
		Income:    f.FormatCurrency(summary.Income),
		Outgo:     f.FormatCurrency(summary.Outgo),
		Interest:  f.FormatCurrency(summary.Interest),
		Sorted:    sorted,
		Movements: rows,
	}
}

func welcome(owner string) string {
	parts := strings.Fields(owner)
	if len(parts) == 0 {
		return "Welcome back"
	}
	return "Welcome back, " + parts[0]
}
