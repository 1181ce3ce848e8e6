// Package seed contiene el catálogo de ejemplo con el que arrancan los stores vacíos.
package seed

import (
	"github.com/shopspring/decimal"

	"pick-your-pup/internal/domain/catalog"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func nd(s string) decimal.NullDecimal {
	if s == "" {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d(s))
}

func puppy(name, breed, age, price, desc, rating string, status catalog.PuppyStatus) catalog.Puppy {
	return catalog.Puppy{
		Name:        name,
		Breed:       breed,
		Age:         age,
		Price:       d(price),
		Description: desc,
		Rating:      d(rating),
		Status:      status,
	}
}

func product(name, brand string, cat catalog.Category, typ, price, orig, size, desc, rating string) catalog.Product {
	return catalog.Product{
		Name:          name,
		Brand:         brand,
		Category:      cat,
		Type:          typ,
		Price:         d(price),
		OriginalPrice: nd(orig),
		Size:          size,
		Description:   desc,
		Rating:        d(rating),
		InStock:       true,
	}
}

// Puppies devuelve una copia nueva en cada llamada; sin IDs ni CreatedAt.
func Puppies() []catalog.Puppy {
	return []catalog.Puppy{
		puppy("Luna", "Labrador Retriever", "6 weeks old", "2500.00", "Sweet and gentle Luna loves playing fetch and enjoys attention.", "5.0", catalog.PuppyReserved),
		puppy("Max", "German Shepherd", "8 weeks old", "3200.00", "Intelligent and loyal Max is perfect for active families.", "4.9", catalog.PuppyAvailable),
		puppy("Bella", "French Bulldog", "12 weeks old", "4500.00", "Adorable Bella has a playful personality and loves attention.", "5.0", catalog.PuppyAvailable),
		puppy("Charlie", "Beagle", "9 weeks old", "2200.00", "Curious Charlie loves exploring and making new friends.", "4.8", catalog.PuppyAvailable),
		puppy("Zeus", "Husky", "11 weeks old", "3800.00", "Energetic Zeus loves outdoor adventures and cold weather.", "4.9", catalog.PuppyReserved),
		puppy("Daisy", "Poodle", "7 weeks old", "2800.00", "Sweet and hypoallergenic Daisy is perfect for any family.", "5.0", catalog.PuppyAvailable),
		puppy("Rocky", "Boxer", "14 weeks old", "2900.00", "Playful Rocky is full of energy and loves to play games.", "4.7", catalog.PuppyAvailable),
		puppy("Milo", "Corgi", "10 weeks old", "3500.00", "Adorable Milo has short legs and a big personality.", "4.8", catalog.PuppyAvailable),
	}
}

func Products() []catalog.Product {
	food, acc := catalog.CategoryFood, catalog.CategoryAccessories
	return []catalog.Product{
		product("Premium Puppy Kibble", "PurePup Pro", food, "dry", "45.99", "53.99", "25 lbs", "High-quality protein blend perfect for growing puppies.", "4.8"),
		product("Adult Dog Formula", "HealthyBite", food, "dry", "38.99", "", "30 lbs", "Organic ingredients for optimal adult dog nutrition.", "4.9"),
		product("Wet Food Variety Pack", "Gourmet Pup", food, "wet", "24.99", "", "12 pack", "Delicious wet food with real meat and vegetables.", "4.7"),
		product("Training Treats", "PupReward", food, "treats", "12.99", "", "16 oz", "Low-calorie treats perfect for training sessions.", "4.9"),
		product("Senior Dog Formula", "WiseAge", food, "dry", "42.99", "47.99", "20 lbs", "Specially formulated for senior dogs with joint support.", "4.6"),
		product("Grain-Free Recipe", "PurePup", food, "dry", "54.99", "", "28 lbs", "Grain-free formula with sweet potato and real meat.", "4.8"),

		product("Luxury Leather Collar", "ElegantPup", acc, "collars", "34.99", "42.99", "Small, Medium, Large", "Premium leather collar with brass buckle and personalized nameplate.", "4.9"),
		product("Modern Retractable Leash", "WalkEasy", acc, "collars", "28.99", "", "16ft, 26ft", "Ergonomic design with anti-slip handle and one-touch braking system.", "4.7"),
		product("Comfort Cloud Bed", "DreamyPaws", acc, "beds", "89.99", "109.99", "Small, Medium, Large, XL", "Memory foam bed with removable washable cover and orthopedic support.", "4.8"),
		product("Interactive Rope Ball", "PlayTime", acc, "toys", "15.99", "", "One Size", "Durable cotton rope toy that helps clean teeth while playing.", "4.8"),
		product("Stainless Steel Bowl Set", "FeedWell", acc, "feeding", "24.99", "", "Small, Large", "Non-slip base bowls with elevated stand for better digestion.", "4.9"),
		product("Travel Carrier Bag", "GoAnywhere", acc, "beds", "67.99", "82.99", "Small, Medium", "Airline-approved carrier with mesh ventilation and comfort padding.", "4.5"),
	}
}
