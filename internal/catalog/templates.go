package catalog

import "github.com/nvats/travelog/internal/domain"

// templates is the predefined set of day itinerary bundles, grouped by
// region in definition order. Like the product table it is read-only;
// importing a template copies its activities into a day with fresh IDs.
var templates = []domain.DayTemplate{
	// Hanoi
	{
		ID: "T-HN1", Region: domain.RegionHanoi,
		Name:        "HANOI CITY TOUR - FULL DAY",
		Description: "Comprehensive historical journey through the capital.",
		Activities: []domain.TemplateActivity{
			{Name: "Ho Chi Minh Complex Visit", StartTime: "08:00", Category: domain.CategorySightseeing, Notes: "Mausoleum, One Pillar Pagoda, and the House on Stilts."},
			{Name: "Temple of Literature", StartTime: "10:30", Category: domain.CategorySightseeing, Notes: "Vietnam's first university."},
			{Name: "Traditional Vietnamese Lunch", StartTime: "12:30", Category: domain.CategoryFood, Notes: "Authentic local cuisine."},
			{Name: "Museum of Ethnology", StartTime: "14:30", Category: domain.CategorySightseeing, Notes: "Learn about the 54 ethnic groups."},
			{Name: "Hoan Kiem Lake & Old Quarter", StartTime: "16:30", Category: domain.CategorySightseeing, Notes: "Heart of the city walk."},
		},
	},
	{
		ID: "T-HN2", Region: domain.RegionHanoi,
		Name:        "HANOI CITY TOUR - HALF DAY - MORNING",
		Description: "Morning highlights of the thousand-year-old city.",
		Activities: []domain.TemplateActivity{
			{Name: "Ho Chi Minh Mausoleum", StartTime: "08:00", Category: domain.CategorySightseeing, Notes: "Morning visit to the resting place of Uncle Ho."},
			{Name: "One Pillar Pagoda", StartTime: "09:30", Category: domain.CategorySightseeing, Notes: "Unique Buddhist temple architecture."},
			{Name: "Tran Quoc Pagoda", StartTime: "10:30", Category: domain.CategorySightseeing, Notes: "Oldest pagoda in Hanoi on West Lake."},
		},
	},
	{
		ID: "T-HN4", Region: domain.RegionHanoi,
		Name:        "HANOI CITY TOUR - JEEP - MORNING / AFTERNOON / EVENING",
		Description: "Adventure through the backstreets in a vintage army jeep.",
		Activities: []domain.TemplateActivity{
			{Name: "Jeep Pickup & Alleys Explore", StartTime: "08:30", Category: domain.CategoryTransport, Notes: "Winding through hidden Hanoi."},
			{Name: "Railway Village Visit", StartTime: "10:00", Category: domain.CategorySightseeing, Notes: "The famous train street."},
			{Name: "Long Bien Bridge Crossing", StartTime: "11:00", Category: domain.CategorySightseeing, Notes: "Iconic French-built bridge."},
			{Name: "Egg Coffee Tasting", StartTime: "12:00", Category: domain.CategoryFood, Notes: "Hanoi specialty stop."},
		},
	},
	{
		ID: "T-HN5", Region: domain.RegionHanoi,
		Name:        "INCENSE VILLAGE + CONICAL VILLAGE - HALF DAY - AFTERNOON",
		Description: "Colorful photography and craft heritage tour.",
		Activities: []domain.TemplateActivity{
			{Name: "Quang Phu Cau Incense Village", StartTime: "13:30", Category: domain.CategorySightseeing, Notes: "Stunning displays of colorful incense sticks."},
			{Name: "Chuong Conical Hat Village", StartTime: "15:30", Category: domain.CategorySightseeing, Notes: "See the making of the traditional Non La."},
		},
	},
	{
		ID: "T-HN6", Region: domain.RegionHanoi,
		Name:        "NINH BINH - HOA LU - TRANG AN (WITH LUNCH) - FULL DAY",
		Description: "UNESCO heritage river and cave exploration.",
		Activities: []domain.TemplateActivity{
			{Name: "Hoa Lu Ancient Capital", StartTime: "10:00", Category: domain.CategorySightseeing, Notes: "Temples of Dinh and Le dynasties."},
			{Name: "Local Specialty Lunch", StartTime: "12:30", Category: domain.CategoryFood, Notes: "Try the famous goat meat dishes."},
			{Name: "Trang An Sampan Ride", StartTime: "14:00", Category: domain.CategorySightseeing, Notes: "Paddling through stunning river caves."},
		},
	},
	{
		ID: "T-HN8", Region: domain.RegionHanoi,
		Name:        "HALONG BAY - APPOLO 5 STAR LUXURY CRUISE - FULL DAY TOUR",
		Description: "Luxury day sailing through the world-famous UNESCO site.",
		Activities: []domain.TemplateActivity{
			{Name: "Harbor Boarding", StartTime: "11:45", Category: domain.CategoryOther, Notes: "Welcome and safety briefing."},
			{Name: "Gourmet Buffet Lunch", StartTime: "12:15", Category: domain.CategoryFood, Notes: "Sailing past fighting cocks islets."},
			{Name: "Sung Sot Cave", StartTime: "14:00", Category: domain.CategorySightseeing, Notes: "Largest cavern in the bay."},
			{Name: "Titop Island Hike", StartTime: "15:30", Category: domain.CategorySightseeing, Notes: "Panoramic viewpoint ascent."},
		},
	},
	{
		ID: "T-HN10", Region: domain.RegionHanoi,
		Name:        "HALONG BAY OVERNIGHT CRUISE (2 DAY 1 NIGHT) - VERDURE LOTUS",
		Description: "A premium stay on the emerald waters.",
		Activities: []domain.TemplateActivity{
			{Name: "Day 1: Embarkation & Lunch", StartTime: "12:00", Category: domain.CategoryStay, Notes: "Check into your luxury cabin."},
			{Name: "Day 1: Kayaking & Sunset", StartTime: "15:30", Category: domain.CategorySightseeing, Notes: "Sunset party on the sundeck."},
			{Name: "Day 2: Tai Chi & Brunch", StartTime: "06:30", Category: domain.CategoryOther, Notes: "Morning ritual and breakfast."},
		},
	},

	// Danang
	{
		ID: "T-DN1", Region: domain.RegionDanang,
		Name:        "BA NA HILLS – GOLDEN BRIDGE FULL DAY TOUR (with lunch)",
		Description: "Iconic Hand Bridge and French Village.",
		Activities: []domain.TemplateActivity{
			{Name: "Cable Car to Ba Na Hills", StartTime: "09:00", Category: domain.CategoryTransport, Notes: "Breathtaking mountain ascent."},
			{Name: "Golden Bridge (Hand Bridge)", StartTime: "10:00", Category: domain.CategorySightseeing, Notes: "A walk on the clouds."},
			{Name: "International Buffet Lunch", StartTime: "12:30", Category: domain.CategoryFood, Notes: "Gourmet buffet at Mercure."},
			{Name: "Fantasy Park & Gardens", StartTime: "14:30", Category: domain.CategoryOther, Notes: "Explore the 9 flower gardens."},
		},
	},
	{
		ID: "T-DN4", Region: domain.RegionDanang,
		Name:        "MY SON HOLYLAND & RICE PAPER MAKING DELUXE MORNING",
		Description: "History and craft combined.",
		Activities: []domain.TemplateActivity{
			{Name: "My Son Sanctuary Tour", StartTime: "09:00", Category: domain.CategorySightseeing, Notes: "Ancient Champa ruins."},
			{Name: "Rice Paper Crafting", StartTime: "11:30", Category: domain.CategoryOther, Notes: "Traditional workshop."},
			{Name: "Danang Local Lunch", StartTime: "13:00", Category: domain.CategoryFood, Notes: "Authentic regional meal."},
		},
	},
	{
		ID: "T-DN7", Region: domain.RegionDanang,
		Name:        "HAI VAN PASS & HUE CITY EXPLORE FULL DAY TOUR",
		Description: "Imperial history and scenic passes.",
		Activities: []domain.TemplateActivity{
			{Name: "Hai Van Pass Photo Stop", StartTime: "08:30", Category: domain.CategorySightseeing, Notes: "Ocean Cloud Pass."},
			{Name: "Hue Citadel Discovery", StartTime: "11:00", Category: domain.CategorySightseeing, Notes: "Forbidden Purple City."},
			{Name: "Thien Mu Pagoda", StartTime: "14:00", Category: domain.CategorySightseeing, Notes: "Iconic 7-story temple."},
			{Name: "Khai Dinh Tomb", StartTime: "15:30", Category: domain.CategorySightseeing, Notes: "Stunning mosaic architecture."},
		},
	},
	{
		ID: "T-DN11", Region: domain.RegionDanang,
		Name:        "HOI AN CITY TOUR – BOAT RIDE – RELEASE FLOWER LANTERN",
		Description: "The magical evening charm of Hoi An.",
		Activities: []domain.TemplateActivity{
			{Name: "Ancient Town Walking Tour", StartTime: "16:00", Category: domain.CategorySightseeing, Notes: "Japanese Bridge and Old Houses."},
			{Name: "River Boat Ride", StartTime: "18:30", Category: domain.CategorySightseeing, Notes: "Lantern release on Hoai River."},
			{Name: "Hoi An Set Dinner", StartTime: "19:30", Category: domain.CategoryFood, Notes: "Local specialties: Cao Lau, White Rose."},
		},
	},

	// Phu Quoc
	{
		ID: "T-PQ1", Region: domain.RegionPhuQuoc,
		Name:        "STARFISH BEACH + GRAND WORLD - FULL DAY TOUR",
		Description: "Nature meets entertainment.",
		Activities: []domain.TemplateActivity{
			{Name: "Starfish Beach Visit", StartTime: "09:30", Category: domain.CategorySightseeing, Notes: "Crystal waters and starfish."},
			{Name: "Grand World City Tour", StartTime: "14:00", Category: domain.CategorySightseeing, Notes: "Explore the \"City of Festivals\"."},
			{Name: "Teddy Bear Museum", StartTime: "16:00", Category: domain.CategoryOther, Notes: "Whimsical tour for all ages."},
		},
	},
	{
		ID: "T-PQ3", Region: domain.RegionPhuQuoc,
		Name:        "4 ISLANDS HOPPING TOUR + KISS BRIDGE - FULL DAY TOUR",
		Description: "The ultimate island adventure.",
		Activities: []domain.TemplateActivity{
			{Name: "Speedboat to Mong Tay", StartTime: "09:00", Category: domain.CategoryTransport, Notes: "Pure white beach landing."},
			{Name: "Gam Ghi Snorkeling", StartTime: "11:00", Category: domain.CategorySightseeing, Notes: "Coral kingdom exploration."},
			{Name: "May Rut Island Lunch", StartTime: "13:00", Category: domain.CategoryFood, Notes: "BBQ seafood on the beach."},
			{Name: "Kiss Bridge Walk", StartTime: "16:30", Category: domain.CategorySightseeing, Notes: "The iconic sunset landmark."},
		},
	},
	{
		ID: "T-PQ8", Region: domain.RegionPhuQuoc,
		Name:        "VINWONDER + VINPEARL SAFARI - FULL DAY TOUR",
		Description: "Double the fun at Vietnam's top theme parks.",
		Activities: []domain.TemplateActivity{
			{Name: "Vinpearl Safari Morning", StartTime: "09:00", Category: domain.CategorySightseeing, Notes: "Wildlife safari bus tour."},
			{Name: "VinWonders Afternoon", StartTime: "13:30", Category: domain.CategoryOther, Notes: "Rides, water park, and aquarium."},
		},
	},

	// Ho Chi Minh City
	{
		ID: "T-HC1", Region: domain.RegionHCMC,
		Name:        "MEKONG DELTA - FULL DAY",
		Description: "Traditional river life exploration.",
		Activities: []domain.TemplateActivity{
			{Name: "Vinh Trang Pagoda", StartTime: "09:30", Category: domain.CategorySightseeing, Notes: "Beautiful Buddhist temple."},
			{Name: "River Boat Cruise", StartTime: "11:00", Category: domain.CategoryTransport, Notes: "Passing island orchards."},
			{Name: "Sampan Narrow Canal Ride", StartTime: "14:00", Category: domain.CategorySightseeing, Notes: "Row through coconut palm canals."},
			{Name: "Coconut Candy Workshop", StartTime: "15:30", Category: domain.CategoryOther, Notes: "Local craft demonstration."},
		},
	},
	{
		ID: "T-HC2", Region: domain.RegionHCMC,
		Name:        "CUCHI TUNNEL - HALF DAY - MORNING / AFTERNOON",
		Description: "Legendary war history tunnels.",
		Activities: []domain.TemplateActivity{
			{Name: "Cu Chi Tunnels Guided Walk", StartTime: "09:30", Category: domain.CategorySightseeing, Notes: "Walk through history."},
			{Name: "Trap & Tank Displays", StartTime: "10:30", Category: domain.CategorySightseeing, Notes: "Defensive systems artifacts."},
			{Name: "Wartime Tapioca Tasting", StartTime: "11:30", Category: domain.CategoryFood, Notes: "Taste the resistance diet."},
		},
	},
	{
		ID: "T-HC6", Region: domain.RegionHCMC,
		Name:        "CUCHI TUNNEL + MEKONG DELTA - FULL DAY",
		Description: "The best of history and nature in one day.",
		Activities: []domain.TemplateActivity{
			{Name: "Cu Chi Tunnels Discovery", StartTime: "08:30", Category: domain.CategorySightseeing, Notes: "Morning history exploration."},
			{Name: "Specialty Lunch", StartTime: "12:00", Category: domain.CategoryFood, Notes: "Elephant ear fish feast."},
			{Name: "Mekong Highlights", StartTime: "14:00", Category: domain.CategorySightseeing, Notes: "Boat trip and island visit."},
		},
	},
	{
		ID: "T-HC11", Region: domain.RegionHCMC,
		Name:        "SAIGON STEET FOOD TOUR BY BIKE - EVENING",
		Description: "Taste the real city flavor on two wheels.",
		Activities: []domain.TemplateActivity{
			{Name: "Scooter Pickup", StartTime: "18:00", Category: domain.CategoryTransport, Notes: "Start your evening adventure."},
			{Name: "Street Food Crawl", StartTime: "19:00", Category: domain.CategoryFood, Notes: "8 dishes across different districts."},
			{Name: "City Skyline Night View", StartTime: "21:00", Category: domain.CategorySightseeing, Notes: "Skyline view from Thu Thiem."},
		},
	},
}
