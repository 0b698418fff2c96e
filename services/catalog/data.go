package catalog

import "luxebeauty/models"

var categories = []models.Category{
	{ID: "all", Name: "All", Icon: "✨"},
	{ID: "bridal", Name: "Bridal", Icon: "👰"},
	{ID: "party", Name: "Party", Icon: "🎉"},
	{ID: "editorial", Name: "Editorial", Icon: "📸"},
	{ID: "hd", Name: "HD Makeup", Icon: "💎"},
	{ID: "airbrush", Name: "Airbrush", Icon: "🎨"},
	{ID: "sfx", Name: "SFX", Icon: "🎭"},
}

var services = []models.Service{
	{
		ID:          "1",
		Name:        "Bridal Glamour Package",
		Category:    "bridal",
		Description: "Complete bridal makeup with trial session, including hairstyling and touch-up kit for your special day.",
		Duration:    180,
		Price:       15000,
		Image:       "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=400&h=300&fit=crop",
		Rating:      4.9,
		Reviews:     328,
		Popular:     true,
	},
	{
		ID:          "2",
		Name:        "Party Glam Look",
		Category:    "party",
		Description: "Stunning party makeup with shimmer and glow, perfect for any celebration or night out.",
		Duration:    60,
		Price:       3500,
		Image:       "https://images.unsplash.com/photo-1512496015851-a90fb38ba796?w=400&h=300&fit=crop",
		Rating:      4.8,
		Reviews:     256,
		Popular:     true,
	},
	{
		ID:          "3",
		Name:        "HD Flawless Finish",
		Category:    "hd",
		Description: "High-definition makeup perfect for photography and special events with long-lasting coverage.",
		Duration:    90,
		Price:       5000,
		Image:       "https://images.unsplash.com/photo-1516975080664-ed2fc6a32937?w=400&h=300&fit=crop",
		Rating:      4.7,
		Reviews:     189,
	},
	{
		ID:          "4",
		Name:        "Editorial Photoshoot",
		Category:    "editorial",
		Description: "Creative and avant-garde makeup for editorial shoots, fashion shows, and artistic projects.",
		Duration:    120,
		Price:       8000,
		Image:       "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?w=400&h=300&fit=crop",
		Rating:      4.9,
		Reviews:     145,
	},
	{
		ID:          "5",
		Name:        "Airbrush Perfection",
		Category:    "airbrush",
		Description: "Flawless airbrush makeup application for a smooth, camera-ready finish that lasts all day.",
		Duration:    75,
		Price:       6000,
		Image:       "https://images.unsplash.com/photo-1519699047748-de8e457a634e?w=400&h=300&fit=crop",
		Rating:      4.8,
		Reviews:     203,
	},
	{
		ID:          "6",
		Name:        "SFX Halloween Special",
		Category:    "sfx",
		Description: "Special effects makeup for Halloween, costume parties, and theatrical performances.",
		Duration:    150,
		Price:       7500,
		Image:       "https://images.unsplash.com/photo-1509967419530-da38b4704bc6?w=400&h=300&fit=crop",
		Rating:      4.6,
		Reviews:     98,
	},
	{
		ID:          "7",
		Name:        "Natural Glow",
		Category:    "party",
		Description: "Subtle, natural-looking makeup that enhances your features with a radiant glow.",
		Duration:    45,
		Price:       2500,
		Image:       "https://images.unsplash.com/photo-1594744803329-e58b31de8bf5?w=400&h=300&fit=crop",
		Rating:      4.7,
		Reviews:     312,
		Popular:     true,
	},
	{
		ID:          "8",
		Name:        "Reception Ready",
		Category:    "bridal",
		Description: "Elegant reception makeup look with dramatic eyes and flawless skin for the evening celebration.",
		Duration:    90,
		Price:       8500,
		Image:       "https://images.unsplash.com/photo-1457972729786-0411a3b2b626?w=400&h=300&fit=crop",
		Rating:      4.8,
		Reviews:     176,
	},
}

var artists = []models.Artist{
	{
		ID:         "1",
		Name:       "Priya Sharma",
		Speciality: "Bridal & HD Makeup",
		Rating:     4.9,
		Reviews:    456,
		Experience: 8,
		Image:      "https://images.unsplash.com/photo-1580618672591-eb180b1a973f?w=200&h=200&fit=crop&crop=face",
		Location:   "Mumbai",
		Available:  true,
	},
	{
		ID:         "2",
		Name:       "Meera Kapoor",
		Speciality: "Editorial & Fashion",
		Rating:     4.8,
		Reviews:    312,
		Experience: 6,
		Image:      "https://images.unsplash.com/photo-1531746020798-e6953c6e8e04?w=200&h=200&fit=crop&crop=face",
		Location:   "Delhi",
		Available:  true,
	},
	{
		ID:         "3",
		Name:       "Aisha Khan",
		Speciality: "Party & Glam",
		Rating:     4.7,
		Reviews:    289,
		Experience: 5,
		Image:      "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=200&h=200&fit=crop&crop=face",
		Location:   "Bangalore",
		Available:  false,
	},
	{
		ID:         "4",
		Name:       "Riya Patel",
		Speciality: "Airbrush Expert",
		Rating:     4.9,
		Reviews:    234,
		Experience: 7,
		Image:      "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200&h=200&fit=crop&crop=face",
		Location:   "Mumbai",
		Available:  true,
	},
}

var offers = []models.Offer{
	{
		ID:          "1",
		Title:       "First Booking Offer",
		Description: "Get 20% off on your first makeup booking",
		Code:        "LUXE20",
		Discount:    20,
		Kind:        models.DiscountPercentage,
		ValidUntil:  "2025-01-31",
	},
	{
		ID:          "2",
		Title:       "Bridal Special",
		Description: "₹2000 off on bridal packages above ₹10000",
		Code:        "BRIDE2000",
		Discount:    2000,
		Kind:        models.DiscountAbsolute,
		ValidUntil:  "2025-02-28",
		MinOrder:    10000,
	},
	{
		ID:          "3",
		Title:       "Weekend Party",
		Description: "15% off on party makeup this weekend",
		Code:        "PARTY15",
		Discount:    15,
		Kind:        models.DiscountPercentage,
		ValidUntil:  "2025-01-05",
	},
}

var subscriptions = []models.Subscription{
	{
		ID:     "basic",
		Name:   "Basic",
		Price:  499,
		Period: "monthly",
		Features: []string{
			"5% off on all bookings",
			"Priority booking",
			"Free cancellation",
		},
	},
	{
		ID:     "premium",
		Name:   "Premium",
		Price:  999,
		Period: "monthly",
		Features: []string{
			"15% off on all bookings",
			"Priority booking",
			"Free cancellation",
			"Free trial sessions",
			"Exclusive offers",
		},
		Popular: true,
	},
	{
		ID:     "elite",
		Name:   "Elite",
		Price:  8999,
		Period: "yearly",
		Features: []string{
			"25% off on all bookings",
			"VIP priority booking",
			"Free cancellation anytime",
			"Unlimited trial sessions",
			"Personal makeup consultant",
			"Home service priority",
		},
	},
}

var timeSlots = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"12:00 PM", "12:30 PM", "01:00 PM", "02:00 PM", "02:30 PM", "03:00 PM",
	"03:30 PM", "04:00 PM", "04:30 PM", "05:00 PM", "05:30 PM", "06:00 PM",
}
