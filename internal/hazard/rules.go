package hazard

import "github.com/krishirakshak/backend/internal/domain/entities"

// Rule is one entry in the hazard pattern dictionary. A rule fires when every
// Require group has at least one label match and no Exclude target matches.
// Matching is case-insensitive bidirectional substring: "Flat Tire" matches
// the label "Tire" and the label "Flat Tire Repair".
type Rule struct {
	ID               string
	Type             string
	Severity         entities.Severity
	Require          [][]string
	Exclude          []string
	Description      string
	DescriptionHi    string
	Recommendation   string
	RecommendationHi string
}

// Rules is the agricultural hazard pattern dictionary, ordered from most to
// least severe. Each rule fires at most once per image.
var Rules = []Rule{
	// ---- CRITICAL ----
	{
		ID:               "corroded_equipment",
		Type:             "corroded_equipment",
		Severity:         entities.SeverityCritical,
		Require:          [][]string{{"Tool", "Equipment", "Metal"}, {"Rust", "Corrosion", "Corroded"}},
		Description:      "Corroded metal detected - risk of tetanus and structural failure",
		Recommendation:   "Replace immediately. Do not use corroded tools. Ensure tetanus vaccination is up to date.",
		DescriptionHi:    "जंग लगा उपकरण — टेटनस और टूटने का खतरा",
		RecommendationHi: "तुरंत बदलें। जंग लगे उपकरण का उपयोग न करें। टेटनस का टीका लगवाएं।",
	},
	{
		ID:               "electrical_hazard",
		Type:             "electrical_hazard",
		Severity:         entities.SeverityCritical,
		Require:          [][]string{{"Wire", "Cable", "Electrical"}, {"Exposed", "Damage", "Broken", "Bare"}},
		Description:      "Exposed wiring detected - risk of electrocution",
		Recommendation:   "Do NOT touch. Turn off power at the source. Call a licensed electrician immediately.",
		DescriptionHi:    "खुली तारें — बिजली के झटके का गंभीर खतरा",
		RecommendationHi: "छुएं नहीं। बिजली बंद करें। तुरंत इलेक्ट्रीशियन को बुलाएं।",
	},
	{
		ID:               "electrical_equipment_water",
		Type:             "electrical_water_hazard",
		Severity:         entities.SeverityCritical,
		Require:          [][]string{{"Electrical", "Wire", "Cable", "Pump"}, {"Water", "Flood", "Wet"}},
		Description:      "Electrical equipment near water - extreme electrocution risk",
		Recommendation:   "Cut power immediately. Do not enter wet area. Keep everyone away.",
		DescriptionHi:    "पानी के पास बिजली उपकरण — बिजली के झटके का अत्यंत खतरा",
		RecommendationHi: "तुरंत बिजली काटें। गीले क्षेत्र में न जाएं। सभी को दूर रखें।",
	},
	{
		ID:               "fire_hazard",
		Type:             "fire_hazard",
		Severity:         entities.SeverityCritical,
		Require:          [][]string{{"Fire", "Flame", "Smoke", "Burning"}},
		Description:      "Fire or smoke detected - immediate danger",
		Recommendation:   "Evacuate the area. Call fire services (101). Do not attempt to fight large fires alone.",
		DescriptionHi:    "आग या धुआं — तत्काल खतरा",
		RecommendationHi: "क्षेत्र खाली करें। फायर सर्विस (101) को कॉल करें। अकेले बड़ी आग न बुझाएं।",
	},

	// ---- HIGH ----
	{
		ID:               "chemical_spill",
		Type:             "chemical_exposure",
		Severity:         entities.SeverityHigh,
		Require:          [][]string{{"Chemical", "Bottle", "Container", "Liquid"}, {"Spill", "Open", "Leak", "Pour"}},
		Description:      "Chemical exposure risk - improper storage or spill detected",
		Recommendation:   "Wear PPE (gloves, mask, goggles). Contain the spill. Ventilate the area. Consult SDS/label.",
		DescriptionHi:    "रासायनिक खतरा — अनुचित भंडारण या रिसाव",
		RecommendationHi: "PPE पहनें (दस्ताने, मास्क, चश्मा)। रिसाव रोकें। हवा आने दें। लेबल पढ़ें।",
	},
	{
		ID:               "unlabeled_chemical",
		Type:             "unlabeled_chemical",
		Severity:         entities.SeverityHigh,
		Require:          [][]string{{"Container", "Bottle", "Drum", "Jar"}},
		Exclude:          []string{"Label", "Text", "Sign"},
		Description:      "Unlabeled container - unknown chemical identification required",
		Recommendation:   "Do not open or use. Label all containers. Follow Insecticides Act 1968 labeling requirements.",
		DescriptionHi:    "बिना लेबल का कंटेनर — अज्ञात रसायन, पहचान जरूरी",
		RecommendationHi: "न खोलें और न उपयोग करें। सभी कंटेनरों पर लेबल लगाएं।",
	},
	{
		ID:               "vehicle_damage",
		Type:             "vehicle_maintenance",
		Severity:         entities.SeverityHigh,
		Require:          [][]string{{"Tractor", "Vehicle", "Truck", "Machine"}, {"Damage", "Leak", "Broken", "Flat Tire"}},
		Description:      "Vehicle/machinery damage detected - maintenance required before use",
		Recommendation:   "Do not operate until repaired. Check hydraulics, brakes, and tires. Get professional inspection.",
		DescriptionHi:    "वाहन/मशीनरी में खराबी — उपयोग से पहले मरम्मत जरूरी",
		RecommendationHi: "मरम्मत तक न चलाएं। हाइड्रोलिक्स, ब्रेक और टायर जांचें।",
	},
	{
		ID:               "unstable_structure",
		Type:             "structural_hazard",
		Severity:         entities.SeverityHigh,
		Require:          [][]string{{"Building", "Wall", "Structure", "Roof"}, {"Crack", "Damage", "Collapse", "Broken"}},
		Description:      "Structural damage detected - risk of collapse",
		Recommendation:   "Keep clear of the structure. Mark the area as restricted. Get structural assessment.",
		DescriptionHi:    "संरचनात्मक क्षति — गिरने का खतरा",
		RecommendationHi: "संरचना से दूर रहें। क्षेत्र को प्रतिबंधित चिह्नित करें।",
	},
	{
		ID:               "sharp_blade_exposed",
		Type:             "sharp_tool_exposed",
		Severity:         entities.SeverityHigh,
		Require:          [][]string{{"Blade", "Knife", "Sickle", "Axe", "Sharp"}},
		Exclude:          []string{"Sheath", "Cover", "Case"},
		Description:      "Exposed sharp tool - laceration risk",
		Recommendation:   "Store with blade guard or sheath. Keep away from children. Handle with gloves.",
		DescriptionHi:    "खुला तेज धार वाला औजार — कटने का खतरा",
		RecommendationHi: "ब्लेड गार्ड या खोल में रखें। बच्चों से दूर रखें। दस्ताने पहनकर इस्तेमाल करें।",
	},
	{
		ID:               "grain_storage_pest",
		Type:             "grain_contamination",
		Severity:         entities.SeverityHigh,
		Require:          [][]string{{"Grain", "Rice", "Wheat", "Seed", "Sack"}, {"Insect", "Pest", "Rat", "Rodent", "Mold"}},
		Description:      "Grain storage contamination - pest or mold detected",
		Recommendation:   "Isolate affected grain. Check moisture levels. Use approved fumigation. Clean storage area.",
		DescriptionHi:    "अनाज भंडारण में कीट या फफूंद — दूषण का खतरा",
		RecommendationHi: "प्रभावित अनाज अलग करें। नमी जांचें। अनुमोदित धूमन करें।",
	},

	// ---- MEDIUM ----
	{
		ID:               "missing_ppe_general",
		Type:             "missing_ppe",
		Severity:         entities.SeverityMedium,
		Require:          [][]string{{"Person", "Human", "Man", "Woman", "Farmer"}},
		Exclude:          []string{"Helmet", "Hard Hat", "Gloves", "Mask", "Goggles", "Safety Vest"},
		Description:      "Person without visible PPE - safety equipment may be needed",
		Recommendation:   "Assess the task and wear appropriate PPE: helmet, gloves, mask, goggles, or safety vest as needed.",
		DescriptionHi:    "व्यक्ति बिना PPE — सुरक्षा उपकरण की आवश्यकता हो सकती है",
		RecommendationHi: "कार्य के अनुसार उचित PPE पहनें: हेलमेट, दस्ताने, मास्क, चश्मा, या सेफ्टी वेस्ट।",
	},
	{
		ID:               "pesticide_handling",
		Type:             "chemical_handling",
		Severity:         entities.SeverityMedium,
		Require:          [][]string{{"Pesticide", "Spray", "Sprayer", "Chemical", "Herbicide", "Insecticide", "Fungicide"}},
		Description:      "Pesticide/chemical handling activity - verify PPE and safety procedures",
		Recommendation:   "Wear full PPE (mask, gloves, goggles, long sleeves). Spray downwind. Wash hands after. Follow Insecticides Act 1968.",
		DescriptionHi:    "कीटनाशक/रसायन छिड़काव — PPE और सुरक्षा प्रक्रिया जांचें",
		RecommendationHi: "पूर्ण PPE पहनें (मास्क, दस्ताने, चश्मा, लंबी बाजू)। हवा की दिशा में छिड़काव करें। बाद में हाथ धोएं।",
	},
	{
		ID:               "height_work",
		Type:             "fall_hazard",
		Severity:         entities.SeverityMedium,
		Require:          [][]string{{"Ladder", "Scaffolding", "Roof", "Height", "Climbing", "Tree"}},
		Description:      "Working at height detected - fall risk",
		Recommendation:   "Use a stable ladder or platform. Have a spotter. Wear non-slip footwear. Avoid working at height alone.",
		DescriptionHi:    "ऊंचाई पर काम — गिरने का खतरा",
		RecommendationHi: "मजबूत सीढ़ी या प्लेटफार्म का उपयोग करें। किसी को साथ रखें। फिसलन रोधी जूते पहनें।",
	},
	{
		ID:               "heavy_lifting",
		Type:             "ergonomic_hazard",
		Severity:         entities.SeverityMedium,
		Require:          [][]string{{"Person", "Human"}, {"Sack", "Bag", "Heavy", "Carrying", "Lifting"}},
		Description:      "Heavy lifting detected - risk of back injury",
		Recommendation:   "Lift with legs, not back. Use a trolley or cart for loads over 25kg. Take breaks.",
		DescriptionHi:    "भारी सामान उठाना — कमर चोट का खतरा",
		RecommendationHi: "पैरों से उठाएं, कमर से नहीं। 25kg से अधिक के लिए ट्रॉली का उपयोग करें। बीच-बीच में आराम करें।",
	},
	{
		ID:               "water_body_hazard",
		Type:             "drowning_hazard",
		Severity:         entities.SeverityMedium,
		Require:          [][]string{{"Water", "Pond", "Canal", "River", "Well", "Irrigation"}, {"Person", "Child", "Human"}},
		Description:      "Person near open water body - drowning risk",
		Recommendation:   "Ensure barriers around wells and canals. Supervise children. Keep rescue equipment nearby.",
		DescriptionHi:    "खुले जल स्रोत के पास व्यक्ति — डूबने का खतरा",
		RecommendationHi: "कुओं और नहरों के चारों ओर बाड़ लगाएं। बच्चों की निगरानी करें। बचाव उपकरण पास रखें।",
	},
	{
		ID:               "sun_exposure",
		Type:             "heat_stress",
		Severity:         entities.SeverityMedium,
		Require:          [][]string{{"Sun", "Sunlight", "Field", "Farm", "Outdoor"}, {"Person", "Human", "Farmer"}},
		Description:      "Outdoor work in sun - heat stress risk",
		Recommendation:   "Take breaks every 30 minutes in shade. Drink water regularly. Wear a hat and light clothing. Avoid 12-3 PM work in summer.",
		DescriptionHi:    "धूप में बाहरी काम — लू/हीट स्ट्रोक का खतरा",
		RecommendationHi: "हर 30 मिनट में छाया में आराम करें। पानी पीते रहें। टोपी और हल्के कपड़े पहनें। गर्मी में 12-3 बजे काम से बचें।",
	},

	// ---- LOW ----
	{
		ID:               "animal_handling",
		Type:             "animal_handling",
		Severity:         entities.SeverityLow,
		Require:          [][]string{{"Animal", "Livestock", "Cattle", "Cow", "Bull", "Buffalo", "Goat", "Horse", "Dog"}},
		Description:      "Livestock/animal detected - maintain safe handling distance",
		Recommendation:   "Approach calmly from the side. Avoid sudden movements. Watch for signs of agitation. Keep children away.",
		DescriptionHi:    "पशुधन/जानवर — सुरक्षित दूरी बनाए रखें",
		RecommendationHi: "शांति से बगल से पहुंचें। अचानक हरकत न करें। उत्तेजना के संकेत देखें। बच्चों को दूर रखें।",
	},
	{
		ID:               "general_tractor",
		Type:             "machinery_general",
		Severity:         entities.SeverityLow,
		Require:          [][]string{{"Tractor", "Vehicle", "Machine", "Harvester", "Combine"}},
		Description:      "Agricultural machinery detected - verify maintenance schedule",
		Recommendation:   "Check oil, brakes, and lights before use. Keep bystanders clear. Never bypass safety guards.",
		DescriptionHi:    "कृषि मशीनरी — रखरखाव कार्यक्रम जांचें",
		RecommendationHi: "उपयोग से पहले तेल, ब्रेक और लाइट जांचें। दर्शकों को दूर रखें। सुरक्षा गार्ड न हटाएं।",
	},
	{
		ID:               "general_tools",
		Type:             "equipment_general",
		Severity:         entities.SeverityLow,
		Require:          [][]string{{"Tool", "Equipment", "Shovel", "Rake", "Hoe", "Spade", "Plough"}},
		Description:      "Standard agricultural equipment - check maintenance schedule",
		Recommendation:   "Inspect before use. Store properly after use. Keep tools sharp and clean. Replace worn handles.",
		DescriptionHi:    "सामान्य कृषि उपकरण — रखरखाव जांचें",
		RecommendationHi: "उपयोग से पहले जांचें। उपयोग के बाद ठीक से रखें। औजार तेज और साफ रखें।",
	},
	{
		ID:               "grain_storage_general",
		Type:             "storage_general",
		Severity:         entities.SeverityLow,
		Require:          [][]string{{"Grain", "Rice", "Wheat", "Seed", "Sack", "Storage", "Warehouse", "Silo"}},
		Description:      "Grain/seed storage - check storage conditions",
		Recommendation:   "Monitor moisture (< 14%). Check for pests monthly. Ensure ventilation. Keep off the ground on pallets.",
		DescriptionHi:    "अनाज/बीज भंडारण — भंडारण स्थिति जांचें",
		RecommendationHi: "नमी 14% से कम रखें। हर महीने कीट जांच करें। हवा का प्रबंध करें। पैलेट पर रखें।",
	},
	{
		ID:               "irrigation_equipment",
		Type:             "irrigation_general",
		Severity:         entities.SeverityLow,
		Require:          [][]string{{"Pipe", "Hose", "Irrigation", "Pump", "Sprinkler", "Drip"}},
		Description:      "Irrigation equipment detected - verify proper installation",
		Recommendation:   "Check for leaks. Ensure electrical connections are grounded. Keep pump area dry. Inspect filters.",
		DescriptionHi:    "सिंचाई उपकरण — उचित स्थापना जांचें",
		RecommendationHi: "रिसाव जांचें। विद्युत कनेक्शन अर्थ हो। पंप क्षेत्र सूखा रखें। फिल्टर जांचें।",
	},
	{
		ID:               "open_field",
		Type:             "field_general",
		Severity:         entities.SeverityLow,
		Require:          [][]string{{"Field", "Farm", "Crop", "Agriculture", "Plantation", "Garden"}},
		Description:      "Agricultural field - general safety awareness",
		Recommendation:   "Watch for uneven ground. Wear sturdy footwear. Stay hydrated. Be aware of wildlife.",
		DescriptionHi:    "कृषि क्षेत्र — सामान्य सुरक्षा जागरूकता",
		RecommendationHi: "असमान जमीन से सावधान रहें। मजबूत जूते पहनें। पानी पीते रहें। जंगली जानवरों से सतर्क रहें।",
	},
}
