package catalog

// BadgeDefinition is a static achievement; whether a given user has earned it
// is derived per identity by the progress service.
type BadgeDefinition struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var badges = []BadgeDefinition{
	{ID: 1, Name: "First Scan", Description: "Scanned your first receipt.", Icon: "Trophy"},
	{ID: 2, Name: "Budget Master", Description: "Stayed within budget for a month.", Icon: "Shield"},
	{ID: 3, Name: "Super Saver", Description: "Saved over ₹40,000 in a month.", Icon: "Star"},
	{ID: 4, Name: "Anomaly Hunter", Description: "Detected 5 spending anomalies.", Icon: "Zap"},
	{ID: 5, Name: "Monthly Streak", Description: "Used the app every day for a month.", Icon: "Trophy"},
	{ID: 6, Name: "Smart Shopper", Description: "Compared prices before 10 purchases.", Icon: "ShoppingCart"},
	{ID: 7, Name: "Receipt Master", Description: "Scanned 50 receipts.", Icon: "Receipt"},
	{ID: 8, Name: "Level Up", Description: "Reached level 5 or higher.", Icon: "Crown"},
}

func Badges() []BadgeDefinition {
	out := make([]BadgeDefinition, len(badges))
	copy(out, badges)
	return out
}

type LevelStatus string

const (
	LevelCompleted LevelStatus = "completed"
	LevelActive    LevelStatus = "active"
	LevelLocked    LevelStatus = "locked"
)

// Level is a monthly savings challenge shown on the dashboard.
type Level struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Goal        int         `json:"goal"`
	Status      LevelStatus `json:"status"`
	Description string      `json:"description,omitempty"`
	Reward      string      `json:"reward,omitempty"`
}

var levels = []Level{
	{ID: 1, Name: "January Savings", Goal: 8000, Status: LevelCompleted, Description: "Save ₹8,000 in January", Reward: "Beginner Badge"},
	{ID: 2, Name: "February Frugality", Goal: 12000, Status: LevelCompleted, Description: "Save ₹12,000 in February", Reward: "Saver Badge"},
	{ID: 3, Name: "March Moolah", Goal: 16000, Status: LevelCompleted, Description: "Save ₹16,000 in March", Reward: "Thrifty Badge"},
	{ID: 4, Name: "April Accumulation", Goal: 20000, Status: LevelActive, Description: "Save ₹20,000 in April", Reward: "Smart Spender Badge"},
	{ID: 5, Name: "May Money", Goal: 25000, Status: LevelLocked, Description: "Save ₹25,000 in May", Reward: "Money Master Badge"},
	{ID: 6, Name: "June Journey", Goal: 30000, Status: LevelLocked, Description: "Save ₹30,000 in June", Reward: "Financial Guru Badge"},
	{ID: 7, Name: "July Jackpot", Goal: 35000, Status: LevelLocked, Description: "Save ₹35,000 in July", Reward: "Wealth Builder Badge"},
	{ID: 8, Name: "August Achievement", Goal: 40000, Status: LevelLocked, Description: "Save ₹40,000 in August", Reward: "Champion Badge"},
}

func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}
