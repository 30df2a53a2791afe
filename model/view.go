package model

// MovementRow is one rendered line of the movement list.
type MovementRow struct {
	// Index is the 1-based position in insertion (or sorted) order.
	Index int    `json:"index"`
	Type  string `json:"type"`
	Date  string `json:"date"`
	Value string `json:"value"`
}

const (
	MovementDeposit    = "deposit"
	MovementWithdrawal = "withdrawal"
)

// AccountView is everything the UI shows for the logged-in account, already
// formatted for the account's locale and currency.
type AccountView struct {
	Username  string        `json:"username"`
	Welcome   string        `json:"welcome"`
	Date      string        `json:"date"`
	Balance   string        `json:"balance"`
	Income    string        `json:"income"`
	Outgo     string        `json:"outgo"`
	Interest  string        `json:"interest"`
	Sorted    bool          `json:"sorted"`
	Movements []MovementRow `json:"movements"`
}
