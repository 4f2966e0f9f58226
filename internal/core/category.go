package core

// Category is one entry of the fixed registry: display metadata plus
// income/expense eligibility. The registry ships as static
// configuration and is never persisted or mutated at runtime.
type Category struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Color           string `json:"color"`
	Icon            string `json:"icon"`
	IncomeEligible  bool   `json:"incomeEligible"`
	ExpenseEligible bool   `json:"expenseEligible"`
}

// FallbackCategory is used downstream to resolve category ids that no
// longer exist in the registry. Stored transactions may carry unknown
// ids; aggregation keeps them under their own key.
var FallbackCategory = Category{ID: "", Name: "Unknown", Color: "#E0E0E0", Icon: "📦", ExpenseEligible: true}

var categories = []Category{
	{ID: "food", Name: "Food & Dining", Color: "#FFB3BA", Icon: "🍕", ExpenseEligible: true},
	{ID: "transport", Name: "Transportation", Color: "#BAFFC9", Icon: "🚗", ExpenseEligible: true},
	{ID: "entertainment", Name: "Entertainment", Color: "#BAE1FF", Icon: "🎬", ExpenseEligible: true},
	{ID: "bills", Name: "Bills & Utilities", Color: "#FFFFBA", Icon: "📄", ExpenseEligible: true},
	{ID: "shopping", Name: "Shopping", Color: "#FFDFBA", Icon: "🛍️", ExpenseEligible: true},
	{ID: "health", Name: "Health & Fitness", Color: "#E0BBE4", Icon: "💊", ExpenseEligible: true},
	{ID: "education", Name: "Education", Color: "#FFC9DE", Icon: "📚", ExpenseEligible: true},
	{ID: "other", Name: "Other", Color: "#D4EDDA", Icon: "📦", IncomeEligible: true, ExpenseEligible: true},
	{ID: "salary", Name: "Salary", Color: "#D1ECF1", Icon: "💰", IncomeEligible: true},
	{ID: "freelance", Name: "Freelance", Color: "#F8D7DA", Icon: "💻", IncomeEligible: true},
	{ID: "investment", Name: "Investment", Color: "#FFEAA7", Icon: "📈", IncomeEligible: true},
}

// Categories returns the registry in its fixed display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// LookupCategory resolves a category id. ok is false for unknown ids;
// callers wanting display metadata should fall back to
// FallbackCategory.
func LookupCategory(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
