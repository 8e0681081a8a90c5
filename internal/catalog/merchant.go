package catalog

// MerchantBaseline anchors generated receipt amounts. Amounts beyond 1.5x the
// baseline are flagged as anomalies by the receipt generator.
type MerchantBaseline struct {
	Name       string
	Category   string
	BaseAmount float64
}

var merchants = []MerchantBaseline{
	{Name: "Starbucks Coffee", Category: "Food & Drink", BaseAmount: 150},
	{Name: "Target", Category: "Shopping", BaseAmount: 2500},
	{Name: "Shell Gas Station", Category: "Transportation", BaseAmount: 1500},
	{Name: "Amazon Fresh", Category: "Groceries", BaseAmount: 3000},
	{Name: "McDonald's", Category: "Food & Drink", BaseAmount: 400},
	{Name: "Walmart", Category: "Shopping", BaseAmount: 2000},
	{Name: "Best Buy", Category: "Electronics", BaseAmount: 15000},
	{Name: "Local Grocery Store", Category: "Groceries", BaseAmount: 1200},
	{Name: "Uber", Category: "Transportation", BaseAmount: 300},
	{Name: "Zomato", Category: "Food & Drink", BaseAmount: 500},
}

func MerchantCount() int {
	return len(merchants)
}

func MerchantByIndex(i int) MerchantBaseline {
	return merchants[i]
}
