package catalog

// LineItem is a single extracted receipt line.
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// ExtractionBundle is one canned OCR result the processing mock can return.
type ExtractionBundle struct {
	Merchant string
	Amount   float64
	Category string
	Items    []LineItem
}

var extractionBundles = []ExtractionBundle{
	{
		Merchant: "Starbucks Coffee",
		Amount:   15.47,
		Category: "Food & Drink",
		Items: []LineItem{
			{Name: "Grande Latte", Price: 5.25, Quantity: 1},
			{Name: "Blueberry Muffin", Price: 3.95, Quantity: 1},
			{Name: "Breakfast Sandwich", Price: 6.27, Quantity: 1},
		},
	},
	{
		Merchant: "Target",
		Amount:   87.23,
		Category: "Shopping",
		Items: []LineItem{
			{Name: "Toilet Paper 12-pack", Price: 24.99, Quantity: 1},
			{Name: "Laundry Detergent", Price: 15.49, Quantity: 1},
			{Name: "Snacks Variety Pack", Price: 12.99, Quantity: 2},
			{Name: "Cleaning Supplies", Price: 20.77, Quantity: 1},
		},
	},
	{
		Merchant: "Shell Gas Station",
		Amount:   42.15,
		Category: "Transportation",
		Items: []LineItem{
			{Name: "Regular Gasoline", Price: 42.15, Quantity: 1},
		},
	},
	{
		Merchant: "Amazon Fresh",
		Amount:   156.78,
		Category: "Groceries",
		Items: []LineItem{
			{Name: "Organic Bananas", Price: 4.99, Quantity: 1},
			{Name: "Chicken Breast", Price: 28.45, Quantity: 1},
			{Name: "Greek Yogurt", Price: 12.99, Quantity: 2},
			{Name: "Fresh Vegetables", Price: 23.67, Quantity: 1},
			{Name: "Pasta & Sauce", Price: 18.34, Quantity: 1},
			{Name: "Frozen Items", Price: 34.89, Quantity: 1},
			{Name: "Household Items", Price: 33.45, Quantity: 1},
		},
	},
}

func ExtractionBundleCount() int {
	return len(extractionBundles)
}

func ExtractionBundleByIndex(i int) ExtractionBundle {
	return extractionBundles[i]
}

// ReportedReceipt is a row in the canned spending-report table.
type ReportedReceipt struct {
	Merchant string
	Total    float64
	DaysAgo  int
}

var reportedReceipts = []ReportedReceipt{
	{Merchant: "Starbucks Coffee", Total: 15.47, DaysAgo: 1},
	{Merchant: "Target", Total: 87.23, DaysAgo: 2},
	{Merchant: "Shell Gas Station", Total: 42.15, DaysAgo: 3},
	{Merchant: "Amazon Fresh", Total: 156.78, DaysAgo: 4},
	{Merchant: "McDonald's", Total: 24.99, DaysAgo: 5},
	{Merchant: "Walmart", Total: 234.56, DaysAgo: 6},
	{Merchant: "Best Buy", Total: 399.99, DaysAgo: 7},
}

func ReportedReceipts() []ReportedReceipt {
	out := make([]ReportedReceipt, len(reportedReceipts))
	copy(out, reportedReceipts)
	return out
}
