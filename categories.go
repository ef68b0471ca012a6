package wealthflow

import "slices"

// Transaction categories form two closed vocabularies, one per direction.
// The labels are the product's original Traditional-Chinese set; they are
// opaque tags to this package.
var (
	ExpenseCategories = []string{"飲食", "交通", "居住", "娛樂", "醫療", "購物", "其他"}
	IncomeCategories  = []string{"薪資", "投資", "獎金", "還款", "其他"}
)

// Categories returns the closed vocabulary for a transaction type.
func Categories(t TransactionType) []string {
	if t == Income {
		return IncomeCategories
	}
	return ExpenseCategories
}

// ValidCategory reports whether label belongs to the vocabulary of t.
func ValidCategory(t TransactionType, label string) bool {
	return slices.Contains(Categories(t), label)
}
