package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts go out as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type ExpenseCategory string

const (
	CategoryFood          ExpenseCategory = "food"
	CategoryTransport     ExpenseCategory = "transport"
	CategoryShopping      ExpenseCategory = "shopping"
	CategoryEntertainment ExpenseCategory = "entertainment"
	CategoryBills         ExpenseCategory = "bills"
	CategoryHealth        ExpenseCategory = "health"
	CategoryEducation     ExpenseCategory = "education"
	CategoryPersonal      ExpenseCategory = "personal"
	CategoryGifts         ExpenseCategory = "gifts"
	CategorySavings       ExpenseCategory = "savings"
	CategoryOther         ExpenseCategory = "other"
)

var ExpenseCategories = []ExpenseCategory{
	CategoryFood, CategoryTransport, CategoryShopping, CategoryEntertainment, CategoryBills,
	CategoryHealth, CategoryEducation, CategoryPersonal, CategoryGifts, CategorySavings, CategoryOther,
}

type Expense struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"uid"`
	Amount    decimal.Decimal `json:"amount"`
	Category  ExpenseCategory `json:"category"`
	Note      string          `json:"note,omitempty"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

// BudgetScope is either the overall monthly cap or a single category.
// The zero value is the overall scope.
type BudgetScope struct {
	category ExpenseCategory
}

func OverallBudget() BudgetScope {
	return BudgetScope{}
}

func CategoryBudget(c ExpenseCategory) BudgetScope {
	return BudgetScope{category: c}
}

// BudgetScopeFromNullable maps the persisted nullable column back to a scope.
func BudgetScopeFromNullable(c *string) BudgetScope {
	if c == nil || *c == "" {
		return OverallBudget()
	}
	return CategoryBudget(ExpenseCategory(*c))
}

func (s BudgetScope) IsOverall() bool {
	return s.category == ""
}

// Category returns the scoped category and false for the overall scope.
func (s BudgetScope) Category() (ExpenseCategory, bool) {
	return s.category, s.category != ""
}

// Nullable is the persisted form: nil for overall.
func (s BudgetScope) Nullable() *string {
	if s.IsOverall() {
		return nil
	}
	c := string(s.category)
	return &c
}

func (s BudgetScope) String() string {
	if s.IsOverall() {
		return "overall"
	}
	return string(s.category)
}

func (s BudgetScope) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

type BudgetGoal struct {
	ID     uuid.UUID       `json:"id"`
	UserID uuid.UUID       `json:"uid"`
	Month  time.Time       `json:"month"`
	Scope  BudgetScope     `json:"scope"`
	Amount decimal.Decimal `json:"amount"`
}
