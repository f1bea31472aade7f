package models

// Transaction categories. Income categories are never budget-tracked.
const (
	CategorySalary        = "salary"
	CategoryFreelance     = "freelance"
	CategoryInvestment    = "investment"
	CategoryFood          = "food"
	CategoryGroceries     = "groceries"
	CategoryDiningOut     = "dining_out"
	CategoryTransport     = "transport"
	CategoryEntertainment = "entertainment"
	CategorySubscriptions = "subscriptions"
	CategoryShopping      = "shopping"
	CategoryUtilities     = "utilities"
	CategoryRent          = "rent"
	CategoryHealth        = "health"
	CategoryEducation     = "education"
	CategoryTravel        = "travel"
	CategoryOther         = "other"
)

// Budget categories. Several transaction categories can roll up into one
// budget category; income and "other" map to none.
const (
	BudgetCategoryGroceries     = "groceries"
	BudgetCategoryDining        = "dining"
	BudgetCategoryTransport     = "transport"
	BudgetCategoryEntertainment = "entertainment"
	BudgetCategoryShopping      = "shopping"
	BudgetCategoryBills         = "bills"
	BudgetCategoryHealth        = "health"
	BudgetCategoryEducation     = "education"
	BudgetCategoryTravel        = "travel"
)

// budgetCategoryByTransaction is the static rollup table from transaction
// categories to budget categories.
var budgetCategoryByTransaction = map[string]string{
	CategoryFood:          BudgetCategoryGroceries,
	CategoryGroceries:     BudgetCategoryGroceries,
	CategoryDiningOut:     BudgetCategoryDining,
	CategoryTransport:     BudgetCategoryTransport,
	CategoryEntertainment: BudgetCategoryEntertainment,
	CategorySubscriptions: BudgetCategoryEntertainment,
	CategoryShopping:      BudgetCategoryShopping,
	CategoryUtilities:     BudgetCategoryBills,
	CategoryRent:          BudgetCategoryBills,
	CategoryHealth:        BudgetCategoryHealth,
	CategoryEducation:     BudgetCategoryEducation,
	CategoryTravel:        BudgetCategoryTravel,
}

// BudgetCategoryFor maps a transaction category to its budget category.
// The second return value is false for categories that are not budget-tracked.
func BudgetCategoryFor(transactionCategory string) (string, bool) {
	bc, ok := budgetCategoryByTransaction[transactionCategory]
	return bc, ok
}
