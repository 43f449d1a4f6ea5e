package entity

import "github.com/shopspring/decimal"

// RosterRecord is a prior-year roster row. Read only.
type RosterRecord struct {
	Row         int
	Player      string
	PlayerID    string
	PriorSalary decimal.NullDecimal
}

// KeeperRecord is a keeper-eligible row. PlayerID stays nil while unresolved.
type KeeperRecord struct {
	Row         int
	Player      string
	Team        string
	PriorSalary decimal.NullDecimal
	NextSalary  decimal.NullDecimal
	PlayerID    *string
}

// Resolved reports whether an identifier has been attached.
func (k KeeperRecord) Resolved() bool {
	return k.PlayerID != nil
}

// ImportRecord is a current-year import row. NextSalary starts at zero.
type ImportRecord struct {
	Row        int
	PlayerID   string
	NextSalary decimal.NullDecimal
}
