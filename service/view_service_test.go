package service

import (
	"testing"
	"time"

	"bankist/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var viewNow = time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)

func viewAccount() *model.Account {
	acc := &model.Account{
		Owner:        "Jessica Davis",
		Username:     "jd",
		InterestRate: dec("1.2"),
		Currency:     "USD",
		Locale:       "en-US",
	}
	for i, v := range []string{"200", "450", "-400", "3000"} {
		acc.Movements = append(acc.Movements, model.Movement{
			Amount: dec(v),
			Date:   viewNow.AddDate(0, 0, -(3 - i)),
		})
	}
	return acc
}

func TestRenderView(t *testing.T) {
	f := mustFormatter(t, "en-US", "USD")
	v := RenderView(viewAccount(), viewNow, false, f)

	assert.Equal(t, "jd", v.Username)
	assert.Equal(t, "Welcome back, Jessica", v.Welcome)
	assert.Equal(t, "10/18/2026, 15:30", v.Date)
	assert.Equal(t, "$3,250.00", v.Balance)
	assert.Equal(t, "$3,650.00", v.Income)
	assert.Equal(t, "$400.00", v.Outgo)
	assert.Equal(t, "$43.80", v.Interest)
	assert.False(t, v.Sorted)

	require.Len(t, v.Movements, 4)
	assert.Equal(t, model.MovementRow{Index: 4, Type: model.MovementDeposit, Date: "Today", Value: "$3,000.00"}, v.Movements[0])
	assert.Equal(t, model.MovementRow{Index: 3, Type: model.MovementWithdrawal, Date: "Yesterday", Value: "-$400.00"}, v.Movements[1])
	assert.Equal(t, model.MovementRow{Index: 2, Type: model.MovementDeposit, Date: "2 Days Ago", Value: "$450.00"}, v.Movements[2])
	assert.Equal(t, model.MovementRow{Index: 1, Type: model.MovementDeposit, Date: "3 Days Ago", Value: "$200.00"}, v.Movements[3])
}

func TestRenderView_Sorted(t *testing.T) {
	f := mustFormatter(t, "en-US", "USD")
	acc := viewAccount()
	v := RenderView(acc, viewNow, true, f)

	require.Len(t, v.Movements, 4)
	values := []string{v.Movements[0].Value, v.Movements[1].Value, v.Movements[2].Value, v.Movements[3].Value}
	// newest-first display of the ascending order
	assert.Equal(t, []string{"$3,000.00", "$450.00", "$200.00", "-$400.00"}, values)
	// Index is the ascending position, so reading by Index is non-decreasing
	assert.Equal(t, 4, v.Movements[0].Index)
	assert.Equal(t, 1, v.Movements[3].Index)
	// dates follow their amounts
	assert.Equal(t, "Yesterday", v.Movements[3].Date)
	assert.True(t, v.Sorted)

	// the account itself keeps insertion order
	assert.True(t, acc.Movements[2].Amount.Equal(dec("-400")))
}

func TestRenderView_Idempotent(t *testing.T) {
	f := mustFormatter(t, "en-US", "USD")
	acc := viewAccount()
	assert.Equal(t, RenderView(acc, viewNow, true, f), RenderView(acc, viewNow, true, f))
}

func TestRenderView_NoMovements(t *testing.T) {
	f := mustFormatter(t, "de-DE", "EUR")
	v := RenderView(&model.Account{Owner: "", Username: ""}, viewNow, false, f)
	assert.Equal(t, "Welcome back", v.Welcome)
	assert.Equal(t, "0,00 €", v.Balance)
	assert.Empty(t, v.Movements)
}
