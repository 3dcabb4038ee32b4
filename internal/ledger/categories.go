package ledger

import "quartax/internal/domain"

// Category is one expense category with the keywords the deterministic
// categorizer matches against.
type Category struct {
	Name     string
	Keywords []string
}

// FallbackCategory is assigned when nothing matches.
const FallbackCategory = "Other Business Expenses"

// commonCategories apply to every business type.
var commonCategories = []Category{
	{Name: "Software & Subscriptions", Keywords: []string{"software", "subscription", "saas", "app", "license", "adobe", "dropbox", "zoom"}},
	{Name: "Phone & Internet", Keywords: []string{"phone", "cell", "mobile", "internet", "wifi", "data plan", "verizon", "t-mobile"}},
	{Name: "Office Supplies", Keywords: []string{"office", "supplies", "paper", "printer", "ink", "stationery"}},
	{Name: "Professional Services", Keywords: []string{"accountant", "lawyer", "attorney", "bookkeeping", "legal", "cpa"}},
	{Name: "Insurance", Keywords: []string{"insurance", "premium", "liability coverage"}},
	{Name: "Bank & Payment Fees", Keywords: []string{"bank fee", "transaction fee", "processing fee", "stripe", "paypal fee", "square fee"}},
}

// businessCategories are the per-business-type taxonomies.
var businessCategories = map[domain.BusinessType][]Category{
	domain.BusinessEcommerce: {
		{Name: "Inventory & COGS", Keywords: []string{"inventory", "wholesale", "stock", "goods", "supplier", "restock"}},
		{Name: "Shipping & Postage", Keywords: []string{"shipping", "postage", "usps", "ups", "fedex", "label", "mailer"}},
		{Name: "Packaging", Keywords: []string{"packaging", "boxes", "bubble wrap", "tape", "poly bag"}},
		{Name: "Marketplace Fees", Keywords: []string{"etsy fee", "amazon fee", "ebay fee", "marketplace", "listing fee", "shopify"}},
		{Name: "Advertising", Keywords: []string{"ads", "advertising", "promotion", "facebook ads", "google ads", "sponsored"}},
	},
	domain.BusinessRideshare: {
		{Name: "Fuel", Keywords: []string{"gas", "fuel", "gasoline", "charging", "ev charge"}},
		{Name: "Vehicle Maintenance", Keywords: []string{"oil change", "tires", "brake", "repair", "maintenance", "car wash", "mechanic"}},
		{Name: "Vehicle Payments & Lease", Keywords: []string{"lease", "car payment", "auto loan"}},
		{Name: "Tolls & Parking", Keywords: []string{"toll", "parking", "meter", "garage"}},
		{Name: "Rider Amenities", Keywords: []string{"water bottles", "mints", "phone charger", "snacks", "sanitizer"}},
	},
	domain.BusinessConsultant: {
		{Name: "Travel", Keywords: []string{"flight", "airfare", "hotel", "lodging", "train", "mileage", "rental car"}},
		{Name: "Meals & Entertainment", Keywords: []string{"meal", "lunch", "dinner", "coffee", "client dinner", "restaurant"}},
		{Name: "Education & Training", Keywords: []string{"course", "training", "conference", "certification", "workshop", "book"}},
		{Name: "Coworking & Rent", Keywords: []string{"coworking", "wework", "office rent", "desk rental"}},
		{Name: "Marketing", Keywords: []string{"website", "domain", "hosting", "business cards", "portfolio", "linkedin"}},
	},
}

// CategoriesFor returns the full taxonomy for a business type: its specific
// categories followed by the common ones.
func CategoriesFor(business domain.BusinessType) []Category {
	specific := businessCategories[business]
	out := make([]Category, 0, len(specific)+len(commonCategories))
	out = append(out, specific...)
	out = append(out, commonCategories...)
	return out
}
