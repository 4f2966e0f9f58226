package core

// CategoryTotals maps category id to the summed expense amount for a
// single month. Categories with no matching expenses are absent, not
// zero-valued; consumers treat absence as zero.
type CategoryTotals map[string]Money

// PeriodSummary holds income, expenses and balance for one month.
// Balance is income minus expenses and may be negative.
type PeriodSummary struct {
	Income   Money `json:"income"`
	Expenses Money `json:"expenses"`
	Balance  Money `json:"balance"`
}

// MonthEntry is one point of the trailing 12-month trend series.
type MonthEntry struct {
	Key      MonthKey `json:"month"`
	Label    string   `json:"monthLabel"`
	Income   Money    `json:"income"`
	Expenses Money    `json:"expenses"`
	Net      Money    `json:"net"`
}
