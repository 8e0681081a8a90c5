package catalog

// ForecastNarrative is one canned budget forecast with its paired savings
// advice.
type ForecastNarrative struct {
	Forecast         string `json:"forecast"`
	SavingApproaches string `json:"savingApproaches"`
}

var forecasts = []ForecastNarrative{
	{
		Forecast:         "Based on your recent spending patterns, you're projected to spend approximately ₹28,500 next month. Your grocery spending shows a consistent pattern at ₹8,200 monthly, while your entertainment expenses have increased by 15% this quarter. Consider setting aside ₹5,000 for unexpected expenses.",
		SavingApproaches: "1. Implement the 50/30/20 rule: 50% needs, 30% wants, 20% savings. 2. Use automated transfers to move ₹3,000 monthly to a high-yield savings account immediately after payday. 3. Review and cancel unused subscriptions - you could save ₹1,200 monthly. 4. Try meal planning to reduce food waste and eating out expenses by 25%.",
	},
	{
		Forecast:         "Your spending velocity indicates a monthly burn rate of ₹32,000, with seasonal increases during festive months. Your current trajectory suggests you'll need ₹35,500 for next month's expenses, including a 10% buffer for inflation. Your transportation costs are well-optimized, but dining expenses show room for improvement.",
		SavingApproaches: "1. Create separate sinking funds for annual expenses like insurance and taxes. 2. Use the envelope budgeting method for variable expenses like dining and entertainment. 3. Set up automatic investments of ₹4,000 monthly in diversified mutual funds. 4. Challenge yourself to reduce discretionary spending by 20% through mindful purchasing decisions.",
	},
	{
		Forecast:         "Analyzing your receipt history reveals efficient spending habits with occasional impulse purchases. Your projected monthly expenses are ₹26,800, showing a 12% improvement from last quarter. Your grocery-to-dining ratio is healthy at 3:1, indicating good financial discipline.",
		SavingApproaches: "1. Maximize your emergency fund to cover 6 months of expenses (target: ₹1,60,800). 2. Implement a 24-hour rule for purchases over ₹2,000 to reduce impulse buying. 3. Use cashback credit cards for regular expenses and pay off balances monthly. 4. Consider increasing your SIP investments by ₹1,500 monthly to accelerate wealth building.",
	},
}

func ForecastCount() int {
	return len(forecasts)
}

func ForecastByIndex(i int) ForecastNarrative {
	return forecasts[i]
}

var spendingInsights = []string{
	"Based on your recent spending patterns, you've been quite consistent with your grocery shopping at Target and Amazon Fresh. Consider consolidating trips to save on gas.",
	"Your coffee spending at Starbucks has increased by 15% this month. Consider making coffee at home to save approximately ₹2,500 monthly.",
	"Great job on your transportation expenses! Your gas spending is 20% below average for users in your area.",
	"Your electronics purchase at Best Buy represents a significant one-time expense. Consider setting aside funds monthly for future tech upgrades.",
	"Your dining expenses show a healthy balance between convenience and cost. You're spending 12% less than the average user in your income bracket.",
}

func SpendingInsightCount() int {
	return len(spendingInsights)
}

func SpendingInsightByIndex(i int) string {
	return spendingInsights[i]
}

type NotificationType string

const (
	NotificationAnomaly     NotificationType = "anomaly"
	NotificationBudget      NotificationType = "budget"
	NotificationAchievement NotificationType = "achievement"
	NotificationReminder    NotificationType = "reminder"
)

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
)

// NotificationTemplate is one canned in-app notification.
type NotificationTemplate struct {
	Type     NotificationType
	Title    string
	Message  string
	Priority NotificationPriority
}

var notificationTemplates = []NotificationTemplate{
	{
		Type:     NotificationAnomaly,
		Title:    "Unusual Spending Detected",
		Message:  "High spending of ₹15,000 at Electronics Store detected.",
		Priority: PriorityHigh,
	},
	{
		Type:     NotificationBudget,
		Title:    "Budget Alert",
		Message:  "You've used 80% of your monthly budget.",
		Priority: PriorityMedium,
	},
	{
		Type:     NotificationAchievement,
		Title:    "New Badge Earned!",
		Message:  `Congratulations! You earned the "Smart Shopper" badge.`,
		Priority: PriorityLow,
	},
	{
		Type:     NotificationReminder,
		Title:    "Scan Reminder",
		Message:  "Don't forget to scan your receipts today!",
		Priority: PriorityLow,
	},
}

func NotificationTemplateCount() int {
	return len(notificationTemplates)
}

func NotificationTemplateByIndex(i int) NotificationTemplate {
	return notificationTemplates[i]
}
