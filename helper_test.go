package wealthflow

import "time"

// TWD is a helper for tests to create Taiwan dollar money from const
func TWD(v float64) Money { return M(v, "TWD") }

// USD is a helper for tests to create US dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// at is a helper for tests to build timestamps from a compact literal.
func at(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			panic(err.Error())
		}
	}
	return t
}

// checkingAccount is a helper for tests to build a funded account.
func checkingAccount(id string, balance Money) Account {
	return Account{ID: id, Name: "Main", BankName: "CTBC", Type: Checking, Balance: balance}
}
