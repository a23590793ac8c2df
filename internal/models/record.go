package models

// RecordKind determines which collection a financial record belongs to
// and which category set applies to it.
type RecordKind string

const (
	RecordKindIncome  RecordKind = "receita"
	RecordKindExpense RecordKind = "despesa"
)

// Collection names used by the document store boundary.
const (
	CollectionIncomes  = "receitas"
	CollectionExpenses = "despesas"
)

// Valid reports whether the kind is one of the two supported kinds.
func (k RecordKind) Valid() bool {
	return k == RecordKindIncome || k == RecordKindExpense
}

// Collection returns the store collection name for the kind.
func (k RecordKind) Collection() string {
	if k == RecordKindIncome {
		return CollectionIncomes
	}
	return CollectionExpenses
}

// KindForCollection returns the record kind stored under a collection name.
func KindForCollection(collection string) (RecordKind, bool) {
	switch collection {
	case CollectionIncomes:
		return RecordKindIncome, true
	case CollectionExpenses:
		return RecordKindExpense, true
	}
	return "", false
}

// IncomeCategories is the fixed category set for income records.
var IncomeCategories = []string{"Salário", "Rendimentos", "Investimentos", "Extra"}

// ExpenseCategories is the fixed category set for expense records.
var ExpenseCategories = []string{"Alimentação", "Vestuário", "Lazer", "Moradia", "Transporte", "Saúde", "Outros"}

// CategoriesForKind returns the category enumeration for a kind.
func CategoriesForKind(kind RecordKind) []string {
	if kind == RecordKindIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// ValidCategory reports whether category belongs to the kind's enumeration.
func ValidCategory(kind RecordKind, category string) bool {
	for _, c := range CategoriesForKind(kind) {
		if c == category {
			return true
		}
	}
	return false
}

// Record represents a single income or expense entry.
// Date is kept as the DD/MM/YYYY display string the mobile clients send;
// it is required but not validated as a calendar date.
type Record struct {
	Base
	OwnerID     *string    `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	Kind        RecordKind `gorm:"not null;index" json:"kind"`
	Description string     `gorm:"not null" json:"description"`
	Amount      float64    `gorm:"not null" json:"amount"`
	Date        string     `gorm:"not null" json:"date"`
	Category    string     `gorm:"not null" json:"category"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}
