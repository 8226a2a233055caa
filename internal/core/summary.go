package core

// MonthRevenue is the revenue picture for one calendar month.
// Profit is revenue minus costs and may be negative.
type MonthRevenue struct {
	Year    int
	Month   int // 1-12
	Revenue Money
	Costs   Money
	Profit  Money
}

// RevenueOverview is a rolling window of monthly revenue summaries,
// oldest month first.
type RevenueOverview struct {
	Months []MonthRevenue
}
