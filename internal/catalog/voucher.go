package catalog

import "sort"

// VoucherCategory is the closed set of voucher categories the wallet exposes.
type VoucherCategory string

const (
	CategoryFood          VoucherCategory = "food"
	CategoryShopping      VoucherCategory = "shopping"
	CategoryTransport     VoucherCategory = "transport"
	CategoryEntertainment VoucherCategory = "entertainment"
	CategoryFuel          VoucherCategory = "fuel"
	CategoryGeneral       VoucherCategory = "general"
)

type Availability string

const (
	Available  Availability = "available"
	Limited    Availability = "limited"
	OutOfStock Availability = "out_of_stock"
)

// Voucher is an immutable catalog entry. Lower PopularityRank means more
// popular.
type Voucher struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Brand          string          `json:"brand"`
	Value          int             `json:"value"`
	PointsCost     int             `json:"pointsCost"`
	Category       VoucherCategory `json:"category"`
	ImageURL       string          `json:"imageUrl"`
	ExpiryDays     int             `json:"expiryDays"`
	Terms          []string        `json:"termsAndConditions"`
	Availability   Availability    `json:"availability"`
	PopularityRank int             `json:"popularityRank"`
}

var vouchers = []Voucher{
	{
		ID:          "voucher_starbucks_500",
		Title:       "₹500 Starbucks Gift Card",
		Description: "Enjoy your favorite coffee and treats at any Starbucks location",
		Brand:       "Starbucks",
		Value:       500,
		PointsCost:  2500,
		Category:    CategoryFood,
		ImageURL:    "https://via.placeholder.com/200x120/00704A/white?text=Starbucks",
		ExpiryDays:  365,
		Terms: []string{
			"Valid at all Starbucks locations in India",
			"Cannot be exchanged for cash",
			"Valid for 1 year from date of issue",
			"Single use only",
		},
		Availability:   Available,
		PopularityRank: 1,
	},
	{
		ID:          "voucher_amazon_1000",
		Title:       "₹1000 Amazon Gift Card",
		Description: "Shop millions of products on Amazon with this gift card",
		Brand:       "Amazon",
		Value:       1000,
		PointsCost:  4500,
		Category:    CategoryShopping,
		ImageURL:    "https://via.placeholder.com/200x120/FF9900/white?text=Amazon",
		ExpiryDays:  730,
		Terms: []string{
			"Valid on Amazon.in only",
			"Cannot be used for Amazon Prime subscription",
			"Valid for 2 years from date of issue",
			"Cannot be transferred to another account",
		},
		Availability:   Available,
		PopularityRank: 2,
	},
	{
		ID:          "voucher_uber_300",
		Title:       "₹300 Uber Ride Credit",
		Description: "Get ₹300 credit for your next Uber rides",
		Brand:       "Uber",
		Value:       300,
		PointsCost:  1400,
		Category:    CategoryTransport,
		ImageURL:    "https://via.placeholder.com/200x120/000000/white?text=Uber",
		ExpiryDays:  90,
		Terms: []string{
			"Valid for Uber rides only, not Uber Eats",
			"Credit expires in 90 days",
			"Cannot be combined with other offers",
			"Valid in India only",
		},
		Availability:   Available,
		PopularityRank: 3,
	},
	{
		ID:          "voucher_zomato_750",
		Title:       "₹750 Zomato Gift Card",
		Description: "Order your favorite food with this Zomato gift card",
		Brand:       "Zomato",
		Value:       750,
		PointsCost:  3500,
		Category:    CategoryFood,
		ImageURL:    "https://via.placeholder.com/200x120/E23744/white?text=Zomato",
		ExpiryDays:  180,
		Terms: []string{
			"Valid on Zomato app and website",
			"Applicable on food orders only",
			"Valid for 6 months from date of issue",
			"Cannot be used for Zomato Pro membership",
		},
		Availability:   Available,
		PopularityRank: 4,
	},
	{
		ID:          "voucher_bigbasket_600",
		Title:       "₹600 BigBasket Gift Card",
		Description: "Shop for groceries and essentials on BigBasket",
		Brand:       "BigBasket",
		Value:       600,
		PointsCost:  2800,
		Category:    CategoryShopping,
		ImageURL:    "https://via.placeholder.com/200x120/84C441/white?text=BigBasket",
		ExpiryDays:  365,
		Terms: []string{
			"Valid on BigBasket app and website",
			"Applicable on all products except gold coins",
			"Valid for 1 year from date of issue",
			"Minimum order value may apply",
		},
		Availability:   Limited,
		PopularityRank: 5,
	},
	{
		ID:          "voucher_bookmyshow_400",
		Title:       "₹400 BookMyShow Voucher",
		Description: "Book movie tickets and events with this voucher",
		Brand:       "BookMyShow",
		Value:       400,
		PointsCost:  1900,
		Category:    CategoryEntertainment,
		ImageURL:    "https://via.placeholder.com/200x120/C4242B/white?text=BookMyShow",
		ExpiryDays:  180,
		Terms: []string{
			"Valid for movie tickets and events",
			"Applicable on BookMyShow app and website",
			"Valid for 6 months from date of issue",
			"Cannot be used for convenience fees",
		},
		Availability:   Available,
		PopularityRank: 6,
	},
	{
		ID:          "voucher_shell_500",
		Title:       "₹500 Shell Fuel Card",
		Description: "Fill up your tank at any Shell petrol pump",
		Brand:       "Shell",
		Value:       500,
		PointsCost:  2400,
		Category:    CategoryFuel,
		ImageURL:    "https://via.placeholder.com/200x120/FFDD00/black?text=Shell",
		ExpiryDays:  365,
		Terms: []string{
			"Valid at all Shell petrol pumps in India",
			"Cannot be exchanged for cash",
			"Valid for 1 year from date of issue",
			"Cannot be used for lubricants",
		},
		Availability:   Available,
		PopularityRank: 7,
	},
	{
		ID:          "voucher_flipkart_800",
		Title:       "₹800 Flipkart Gift Card",
		Description: "Shop electronics, fashion, and more on Flipkart",
		Brand:       "Flipkart",
		Value:       800,
		PointsCost:  3700,
		Category:    CategoryShopping,
		ImageURL:    "https://via.placeholder.com/200x120/2874F0/white?text=Flipkart",
		ExpiryDays:  365,
		Terms: []string{
			"Valid on Flipkart app and website",
			"Cannot be used for gold coins or gift cards",
			"Valid for 1 year from date of issue",
			"Cannot be combined with other gift cards",
		},
		Availability:   Available,
		PopularityRank: 8,
	},
}

// Vouchers returns a copy of the full voucher table.
func Vouchers() []Voucher {
	out := make([]Voucher, len(vouchers))
	copy(out, vouchers)
	return out
}

func VoucherCount() int {
	return len(vouchers)
}

// VoucherByIndex supports seeded selection; index must be in [0, VoucherCount).
func VoucherByIndex(i int) Voucher {
	return vouchers[i]
}

func VoucherByID(id string) (Voucher, bool) {
	for _, v := range vouchers {
		if v.ID == id {
			return v, true
		}
	}
	return Voucher{}, false
}

// VouchersByCategory filters by category; empty category returns everything.
// The result is sorted by popularity, most popular first.
func VouchersByCategory(category VoucherCategory) []Voucher {
	out := make([]Voucher, 0, len(vouchers))
	for _, v := range vouchers {
		if category == "" || v.Category == category {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PopularityRank < out[j].PopularityRank
	})
	return out
}
