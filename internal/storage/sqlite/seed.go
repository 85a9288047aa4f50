package sqlite

import "database/sql"

// predefinedCategoryNames is the reference list served by
// /budgetPlanner/predefined-categories. It mirrors the canonical planning
// categories of the mobile app.
var predefinedCategoryNames = []string{
	"Venue",
	"Photography",
	"Catering",
	"Florist",
	"Music",
	"Transportation",
	"Attire",
	"Stationery",
	"Gifts",
	"Jewelry",
	"Hair & Makeup",
	"Accommodations",
	"Honeymoon",
	"Beverages",
	"Cake",
}

// seedVendors is a small demo directory so /search-vendors returns
// something useful out of the box.
var seedVendors = []struct {
	id, name, image, location, keywords string
	reviews                             int
	rating                              float64
}{
	{"v-rosewood", "Rosewood Manor", "https://pictures.vowsync.dev/rosewood.jpg", "Portland", "wedding venues venue garden estate", 214, 4.8},
	{"v-harbor", "Harbor Lights Hall", "https://pictures.vowsync.dev/harbor.jpg", "Seattle", "wedding venues venue waterfront ballroom", 158, 4.6},
	{"v-aria", "Aria Photography", "https://pictures.vowsync.dev/aria.jpg", "Portland", "wedding photographer photography portraits", 322, 4.9},
	{"v-lens", "Golden Lens Studio", "https://pictures.vowsync.dev/lens.jpg", "Seattle", "wedding photographer videographer film", 97, 4.5},
	{"v-thyme", "Wild Thyme Catering", "https://pictures.vowsync.dev/thyme.jpg", "Portland", "wedding caterers catering seasonal", 185, 4.7},
	{"v-bloom", "Bloom & Branch", "https://pictures.vowsync.dev/bloom.jpg", "Portland", "florist flowers bouquets wedding decor", 143, 4.8},
	{"v-quartet", "Northwest Strings", "https://pictures.vowsync.dev/quartet.jpg", "Seattle", "wedding music quartet ceremony", 76, 4.9},
	{"v-tiered", "Tiered Dreams Bakery", "https://pictures.vowsync.dev/tiered.jpg", "Portland", "wedding cake bakery dessert", 201, 4.7},
	{"v-atelier", "White Atelier", "https://pictures.vowsync.dev/atelier.jpg", "Seattle", "wedding dress wedding atelier bridal", 118, 4.6},
	{"v-gilded", "Gilded Band Co.", "https://pictures.vowsync.dev/gilded.jpg", "Portland", "wedding rings jewelry goldsmith", 64, 4.8},
}

// seedReferenceData inserts the predefined categories and demo vendors.
// Inserts are idempotent so repeated startups are safe.
func seedReferenceData(db *sql.DB) error {
	for _, name := range predefinedCategoryNames {
		if _, err := db.Exec(
			"INSERT OR IGNORE INTO predefined_categories (name) VALUES (?)", name,
		); err != nil {
			return err
		}
	}

	for _, v := range seedVendors {
		if _, err := db.Exec(
			`INSERT OR IGNORE INTO vendors (id, name, image, number_of_reviews, location, rating, keywords)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			v.id, v.name, v.image, v.reviews, v.location, v.rating, v.keywords,
		); err != nil {
			return err
		}
	}
	return nil
}
