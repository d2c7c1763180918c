package pipeline

// Fixed value pools the synthesizer stages sample from.

var authorFirstNames = []string{
	"John", "Jane", "Michael", "Sarah", "David", "Emily", "Robert", "Jessica",
	"William", "Ashley", "James", "Amanda", "Christopher", "Jennifer", "Daniel",
	"Lisa", "Matthew", "Michelle", "Anthony", "Kimberly",
}

var authorLastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin",
}

var nationalities = []string{"American", "British", "Canadian", "Australian", "Irish"}

var customerFirstNames = []string{
	"Alex", "Jordan", "Taylor", "Casey", "Morgan", "Riley", "Avery", "Quinn",
	"Blake", "Cameron", "Drew", "Emery", "Finley", "Hayden", "Jamie", "Parker",
}

var customerLastNames = []string{
	"Anderson", "Thompson", "White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis",
	"Robinson", "Walker", "Young", "Allen", "King", "Wright", "Scott", "Torres",
}

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
	"San Antonio", "San Diego", "Dallas", "San Jose", "Austin",
}

var states = []string{"CA", "NY", "TX", "FL", "IL"}

var genders = []string{"M", "F", "Other"}

var orderStatuses = []string{"Pending", "Processing", "Shipped", "Delivered", "Cancelled", "Returned"}

var paymentMethods = []string{"Credit Card", "Debit Card", "PayPal", "Bank Transfer", "Cash on Delivery"}

var paymentStatuses = []string{"Pending", "Paid", "Failed", "Refunded"}

var reviewTitles = []string{
	"Great book!", "Highly recommended", "Good read", "Interesting story", "Worth reading",
}

var reviewTexts = []string{
	"This book exceeded my expectations. The plot was engaging and the characters were well-developed.",
	"A fantastic read that kept me hooked from start to finish. Highly recommend to others.",
	"Good book with interesting themes. The writing style was enjoyable.",
	"An okay read. Some parts were slow but overall decent.",
	"Not my favorite, but others might enjoy it more than I did.",
}

var transactionTypes = []string{"Purchase", "Sale", "Adjustment", "Damaged"}

var referenceTypes = []string{"Purchase Order", "Order", "Manual", "System"}

var inventoryNotes = []string{
	"Initial stock purchase",
	"Customer order fulfillment",
	"Inventory adjustment",
	"Damaged goods removal",
}

var wishlistPriorities = []string{"Low", "Medium", "High"}

var wishlistNotes = []string{
	"Want to read this soon", "Recommended by friend", "Looks interesting",
}
