package catalog

import "github.com/nvats/travelog/internal/domain"

// products is the priced reference catalog used by the cost estimator,
// grouped by region in definition order. Base costs are in the agency's
// quoting currency per person. The table is read-only: quoting a product
// copies it onto a quote line and never touches this slice.
var products = []domain.TourProduct{
	// Hanoi
	{ID: "HN1", Region: domain.RegionHanoi, Category: domain.ProductShared, Name: "HANOI CITY TOUR - FULL DAY", BaseCost: 2400, Description: "Comprehensive city highlights tour.", Inclusions: "Lunch"},
	{ID: "HN2", Region: domain.RegionHanoi, Category: domain.ProductShared, Name: "HANOI CITY TOUR - HALF DAY - MORNING", BaseCost: 1650, Description: "Morning highlights.", Inclusions: "No Meals"},
	{ID: "HN3", Region: domain.RegionHanoi, Category: domain.ProductShared, Name: "HANOI CITY TOUR - HALF DAY - AFTERNOON", BaseCost: 1900, Description: "Afternoon highlights.", Inclusions: "No Meals"},
	{ID: "HN4", Region: domain.RegionHanoi, Category: domain.ProductShared, Name: "HANOI CITY TOUR - JEEP - MORNING / AFTERNOON / EVENING", BaseCost: 4800, Description: "Open-air vintage jeep experience.", Inclusions: "No Meals"},
	{ID: "HN5", Region: domain.RegionHanoi, Category: domain.ProductShared, Name: "INCENSE VILLAGE + CONICAL VILLAGE - HALF DAY - AFTERNOON", BaseCost: 2200, Description: "Cultural craft village tour.", Inclusions: "No Meals"},
	{ID: "HN6", Region: domain.RegionHanoi, Category: domain.ProductShared, Name: "NINH BINH - HOA LU - TRANG AN (WITH LUNCH) - FULL DAY", BaseCost: 3100, Description: "Spectacular karst landscapes.", Inclusions: "Lunch"},
	{ID: "HN7", Region: domain.RegionHanoi, Category: domain.ProductShared, Name: "NINH BINH - HOA LU - TAM COC (WITH LUNCH) - FULL DAY", BaseCost: 2900, Description: "Ancient capital and river caves.", Inclusions: "Lunch"},
	{ID: "HN8", Region: domain.RegionHanoi, Category: domain.ProductShared, Name: "HALONG BAY - APPOLO 5 STAR LUXURY CRUISE - FULL DAY TOUR", BaseCost: 3550, Description: "Premium day cruise.", Inclusions: "Buffet Lunch"},
	{ID: "HN9", Region: domain.RegionHanoi, Category: domain.ProductShared, Name: "HALONG BAY - SKY CRUISE 5 STAR CRUISE - FULL DAY TOUR", BaseCost: 3350, Description: "Luxury sailing experience.", Inclusions: "Buffet Lunch"},
	{ID: "HN10", Region: domain.RegionHanoi, Category: domain.ProductShared, Name: "HALONG BAY OVERNIGHT CRUISE (2 DAY 1 NIGHT) - VERDURE LOTUS", BaseCost: 14500, Description: "Premium overnight stay.", Inclusions: "L+D+B"},
	{ID: "HN11", Region: domain.RegionHanoi, Category: domain.ProductShared, Name: "HALONG BAY OVERNIGHT CRUISE (2 DAY 1 NIGHT) - ATHENA CRUISE", BaseCost: 15500, Description: "Luxury cabin experience.", Inclusions: "L+D+B"},
	{ID: "HN12", Region: domain.RegionHanoi, Category: domain.ProductShared, Name: "HALONG BAY OVERNIGHT CRUISE (2 DAY 1 NIGHT) - ALISA CRUISE", BaseCost: 16000, Description: "Top-tier luxury cruise.", Inclusions: "L+D+B"},
	{ID: "HN13", Region: domain.RegionHanoi, Category: domain.ProductPrivate, Name: "NINH BINH - HOA LU - TRANG AN (WITH LUNCH) - PRIVATE TOUR", BaseCost: 5500, Description: "Private guide and vehicle.", Inclusions: "Lunch"},
	{ID: "HN14", Region: domain.RegionHanoi, Category: domain.ProductPrivate, Name: "GRANDWORLD - AFTERNOON TOUR - PRIVATE TOUR", BaseCost: 3200, Description: "Private evening entertainment tour.", Inclusions: "No Meals"},
	{ID: "HN15", Region: domain.RegionHanoi, Category: domain.ProductPrivate, Name: "HANOI CITY TOUR - HALF DAY - NO GUIDE", BaseCost: 2000, Description: "Vehicle only service.", Inclusions: "No Meals"},
	{ID: "HN16", Region: domain.RegionHanoi, Category: domain.ProductPrivate, Name: "AIRPORT PICKUP + HANOI CITY TOUR - HALF DAY", BaseCost: 3500, Description: "Arrival + city orientation.", Inclusions: "Lunch"},
	{ID: "HN17", Region: domain.RegionHanoi, Category: domain.ProductPrivate, Name: "HANOI CITY TOUR - FULL DAY - WITH GUIDE", BaseCost: 4500, Description: "Full day private guidance.", Inclusions: "Lunch"},
	{ID: "HN18", Region: domain.RegionHanoi, Category: domain.ProductPrivate, Name: "AIRPORT PICKUP - HANOI", BaseCost: 800, Description: "Private transfer.", Inclusions: "No Meals"},
	{ID: "HN19", Region: domain.RegionHanoi, Category: domain.ProductPrivate, Name: "AIRPORT DROP - HANOI", BaseCost: 600, Description: "Private transfer.", Inclusions: "No Meals"},

	// Danang
	{ID: "DN1", Region: domain.RegionDanang, Category: domain.ProductShared, Name: "BA NA HILLS – GOLDEN BRIDGE FULL DAY TOUR (with lunch)", BaseCost: 4900, Description: "Iconic hand bridge and buffet.", Inclusions: "Buffet Lunch"},
	{ID: "DN2", Region: domain.RegionDanang, Category: domain.ProductShared, Name: "BA NA HILLS – GOLDEN BRIDGE FULL DAY TOUR (without lunch)", BaseCost: 4100, Description: "Bridge access only.", Inclusions: "No Meals"},
	{ID: "DN3", Region: domain.RegionDanang, Category: domain.ProductShared, Name: "DANANG CITY SITES & BA NA HILLS – GOLDEN BRIDGE", BaseCost: 6750, Description: "Combined highlight tour.", Inclusions: "Set Menu Lunch"},
	{ID: "DN4", Region: domain.RegionDanang, Category: domain.ProductShared, Name: "MY SON HOLYLAND & RICE PAPER MAKING DELUXE MORNING", BaseCost: 2550, Description: "Ancient ruins and craft.", Inclusions: "Set Menu Lunch"},
	{ID: "DN5", Region: domain.RegionDanang, Category: domain.ProductShared, Name: "MY SON HOLYLAND & RICE PAPER MAKING DELUXE AFTERNOON", BaseCost: 2550, Description: "Sunset ruins tour.", Inclusions: "Set Menu Dinner"},
	{ID: "DN6", Region: domain.RegionDanang, Category: domain.ProductShared, Name: "MARBLE MOUNTAINS - MONKEY MOUNTAIN – AM PHU CAVE MORNING", BaseCost: 1850, Description: "Caves and Lady Buddha.", Inclusions: "1 Local Dish"},
	{ID: "DN7", Region: domain.RegionDanang, Category: domain.ProductShared, Name: "HAI VAN PASS & HUE CITY EXPLORE FULL DAY TOUR", BaseCost: 3750, Description: "Scenic pass and imperial city.", Inclusions: "Set Menu Lunch"},
	{ID: "DN8", Region: domain.RegionDanang, Category: domain.ProductShared, Name: "HUE CITY FULL DAY (Not Hai Van Pass)", BaseCost: 2950, Description: "Direct Imperial city tour.", Inclusions: "Set Menu Lunch"},
	{ID: "DN9", Region: domain.RegionDanang, Category: domain.ProductShared, Name: "COCONUT JUNGLE - HOI AN CITY - BOAT RIDE AFTERNOON", BaseCost: 2750, Description: "Riverside charm and lanterns.", Inclusions: "Set Menu Dinner"},
	{ID: "DN10", Region: domain.RegionDanang, Category: domain.ProductShared, Name: "MONKEY MOUNTAIN - MARBLE MOUTAINS – COCONUT JUNGLE", BaseCost: 4450, Description: "The complete Danang loop.", Inclusions: "L+D Included"},
	{ID: "DN11", Region: domain.RegionDanang, Category: domain.ProductShared, Name: "CHAM ISLAND SIGHTSEEING AND SNORKELING TOUR", BaseCost: 2200, Description: "Island boat trip.", Inclusions: "Set Menu Lunch"},
	{ID: "DN12", Region: domain.RegionDanang, Category: domain.ProductPrivate, Name: "AIPORT PICKUP - DANANG", BaseCost: 600, Description: "Private arrival.", Inclusions: "No Meals"},
	{ID: "DN13", Region: domain.RegionDanang, Category: domain.ProductPrivate, Name: "AIPORT DROP - DANANG", BaseCost: 600, Description: "Private departure.", Inclusions: "No Meals"},

	// Phu Quoc
	{ID: "PQ1", Region: domain.RegionPhuQuoc, Category: domain.ProductPrivate, Name: "STARFISH BEACH + GRAND WORLD - FULL DAY TOUR", BaseCost: 3500, Description: "North island highlights.", Inclusions: "No Meals"},
	{ID: "PQ2", Region: domain.RegionPhuQuoc, Category: domain.ProductShared, Name: "SUNSET TOWN + KISS OF THE SEA SHOW - AFTERNOON TOUR", BaseCost: 4500, Description: "Evening multi-media show.", Inclusions: "No Meals"},
	{ID: "PQ3", Region: domain.RegionPhuQuoc, Category: domain.ProductShared, Name: "4 ISLANDS HOPPING TOUR + KISS BRIDGE - FULL DAY TOUR", BaseCost: 4900, Description: "Speedboat and cable car.", Inclusions: "With Lunch"},
	{ID: "PQ4", Region: domain.RegionPhuQuoc, Category: domain.ProductShared, Name: "SOUTH ISLAND TOUR - FULL DAY TOUR (SHARED)", BaseCost: 1400, Description: "South island sightseeing.", Inclusions: "With Lunch"},
	{ID: "PQ5", Region: domain.RegionPhuQuoc, Category: domain.ProductPrivate, Name: "SOUTH ISLAND TOUR - FULL DAY TOUR (PRIVATE)", BaseCost: 2800, Description: "Private south island tour.", Inclusions: "No Meals"},
	{ID: "PQ6", Region: domain.RegionPhuQuoc, Category: domain.ProductPrivate, Name: "VINWONDERS - FULL DAY TOUR", BaseCost: 5300, Description: "Theme park access.", Inclusions: "No Meals"},
	{ID: "PQ7", Region: domain.RegionPhuQuoc, Category: domain.ProductPrivate, Name: "VINPEARL SAFARI - FULL DAY TOUR", BaseCost: 5100, Description: "Wildlife park access.", Inclusions: "No Meals"},
	{ID: "PQ8", Region: domain.RegionPhuQuoc, Category: domain.ProductPrivate, Name: "VINWONDER + VINPEARL SAFARI - FULL DAY TOUR", BaseCost: 6800, Description: "Combo park access.", Inclusions: "No Meals"},
	{ID: "PQ9", Region: domain.RegionPhuQuoc, Category: domain.ProductPrivate, Name: "AIRPORT PICKUP - PHU QUOC", BaseCost: 1000, Description: "Private transfer.", Inclusions: "No Meals"},
	{ID: "PQ10", Region: domain.RegionPhuQuoc, Category: domain.ProductPrivate, Name: "AIRPORT DROP - PHU QUOC", BaseCost: 1000, Description: "Private transfer.", Inclusions: "No Meals"},
	{ID: "PQ11", Region: domain.RegionPhuQuoc, Category: domain.ProductShared, Name: "CRUISE TOUR - SUNRISE VOYAGE - 9 AM > 2:15 PM", BaseCost: 5600, Description: "Morning sea voyage.", Inclusions: "With Lunch"},
	{ID: "PQ12", Region: domain.RegionPhuQuoc, Category: domain.ProductShared, Name: "CRUISE TOUR - SUNSET TOUR - 3 PM > 8:30 PM", BaseCost: 5600, Description: "Evening sea voyage.", Inclusions: "With Lunch"},

	// Ho Chi Minh City
	{ID: "HC1", Region: domain.RegionHCMC, Category: domain.ProductShared, Name: "MEKONG DELTA - FULL DAY", BaseCost: 1650, Description: "Traditional river life.", Inclusions: "Local Lunch"},
	{ID: "HC2", Region: domain.RegionHCMC, Category: domain.ProductShared, Name: "CUCHI TUNNEL - HALF DAY - MORNING / AFTERNOON", BaseCost: 1450, Description: "War history tunnels.", Inclusions: "No Meals"},
	{ID: "HC3", Region: domain.RegionHCMC, Category: domain.ProductShared, Name: "CUCHI TUNNEL + CITY TOUR - FULL DAY", BaseCost: 3300, Description: "History and city combined.", Inclusions: "Local Lunch"},
	{ID: "HC4", Region: domain.RegionHCMC, Category: domain.ProductShared, Name: "CITY TOUR - FULL DAY", BaseCost: 2900, Description: "Saigon highlights.", Inclusions: "Local Lunch"},
	{ID: "HC5", Region: domain.RegionHCMC, Category: domain.ProductShared, Name: "CITY TOUR - HALF DAY - MORNING / AFTERNOON", BaseCost: 1300, Description: "Quick city tour.", Inclusions: "No Meals"},
	{ID: "HC6", Region: domain.RegionHCMC, Category: domain.ProductShared, Name: "CUCHI TUNNEL + MEKONG DELTA - FULL DAY", BaseCost: 2900, Description: "The ultimate combo tour.", Inclusions: "Local Lunch"},
	{ID: "HC7", Region: domain.RegionHCMC, Category: domain.ProductShared, Name: "MUI NE 1 DAY + JEEP CAR DRIVE IN SAND DUNES - FULL DAY", BaseCost: 5000, Description: "Desert-like adventures.", Inclusions: "Local Lunch"},
	{ID: "HC8", Region: domain.RegionHCMC, Category: domain.ProductShared, Name: "VUNG TAU - FULL DAY", BaseCost: 3150, Description: "Coastal city experience.", Inclusions: "Local Lunch"},
	{ID: "HC9", Region: domain.RegionHCMC, Category: domain.ProductShared, Name: "CAN GIO - FULL DAY", BaseCost: 2800, Description: "Mangrove forest tour.", Inclusions: "Local Lunch"},
	{ID: "HC10", Region: domain.RegionHCMC, Category: domain.ProductShared, Name: "WATER PUPPET SHOW & DINNER CRUISE - EVENING", BaseCost: 4850, Description: "Cultural evening out.", Inclusions: "Dinner"},
	{ID: "HC11", Region: domain.RegionHCMC, Category: domain.ProductShared, Name: "SAIGON STEET FOOD TOUR BY BIKE - EVENING", BaseCost: 3100, Description: "Local culinary bike tour.", Inclusions: "8 Dish Dinner"},
	{ID: "HC12", Region: domain.RegionHCMC, Category: domain.ProductShared, Name: "DOUBLE DECKER BUS TOUR - NIGHT", BaseCost: 1650, Description: "City lights night tour.", Inclusions: "No Meals"},
	{ID: "HC13", Region: domain.RegionHCMC, Category: domain.ProductShared, Name: "SAIGON SUNSET & CITY LIGHTS EXPERIENCE - EVENING", BaseCost: 2750, Description: "Boat and bus combination.", Inclusions: "No Meals"},
}
