package hazard

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/krishirakshak/backend/internal/domain/entities"
)

// ScenarioSet is a curated group of hazards for one farm setting, used to
// produce believable demo reports when no vision backend is configured.
type ScenarioSet struct {
	ID      string
	Hazards []entities.Hazard
}

// ScenarioSets covers the five demo settings: machinery, chemicals, general
// farm, storage, and livestock.
var ScenarioSets = []ScenarioSet{
	{
		ID: "machinery",
		Hazards: []entities.Hazard{
			{
				Type:             "pto_guard_missing",
				Severity:         entities.SeverityCritical,
				Description:      "Missing safety guard on PTO shaft - entanglement risk",
				Recommendation:   "Stop the tractor immediately. Install PTO shield before operating. Never approach a spinning PTO.",
				DescriptionHi:    "PTO शाफ्ट पर सुरक्षा गार्ड गायब — उलझने का खतरा",
				RecommendationHi: "ट्रैक्टर तुरंत बंद करें। चलाने से पहले PTO शील्ड लगाएं। घूमते PTO के पास न जाएं।",
			},
			{
				Type:             "worn_brakes",
				Severity:         entities.SeverityHigh,
				Description:      "Worn brake pads detected - reduced stopping power",
				Recommendation:   "Do not operate on slopes. Get brakes serviced before next use. Check brake fluid level.",
				DescriptionHi:    "ब्रेक पैड घिसे हुए — रुकने की क्षमता कम",
				RecommendationHi: "ढलान पर न चलाएं। अगले उपयोग से पहले ब्रेक सर्विस कराएं। ब्रेक ऑयल जांचें।",
			},
			{
				Type:             "low_tire_pressure",
				Severity:         entities.SeverityMedium,
				Description:      "Tire pressure appears low - stability risk on uneven ground",
				Recommendation:   "Check and inflate tires to recommended PSI. Inspect for punctures or slow leaks.",
				DescriptionHi:    "टायर का दबाव कम लग रहा है — असमान जमीन पर स्थिरता का खतरा",
				RecommendationHi: "टायर का दबाव जांचें और सही PSI तक हवा भरें। पंचर या धीमे रिसाव की जांच करें।",
			},
			{
				Type:             "minor_rust",
				Severity:         entities.SeverityLow,
				Description:      "Minor rust on body panel - cosmetic but monitor for spread",
				Recommendation:   "Sand and repaint affected area. Apply rust-preventive coating. Check again in 30 days.",
				DescriptionHi:    "बॉडी पैनल पर हल्की जंग — निगरानी करें कि फैले नहीं",
				RecommendationHi: "प्रभावित क्षेत्र को घिसकर पेंट करें। जंग-रोधी कोटिंग लगाएं। 30 दिन बाद फिर जांचें।",
			},
		},
	},
	{
		ID: "chemical",
		Hazards: []entities.Hazard{
			{
				Type:             "expired_pesticide",
				Severity:         entities.SeverityCritical,
				Description:      "Expired pesticide container - toxic decomposition risk",
				Recommendation:   "Do NOT use. Dispose through authorized hazardous waste facility. Wear full PPE while handling.",
				DescriptionHi:    "एक्सपायर्ड कीटनाशक — विषाक्त विघटन का खतरा",
				RecommendationHi: "उपयोग न करें। अधिकृत खतरनाक अपशिष्ट सुविधा से निपटान करें। पूर्ण PPE पहनें।",
			},
			{
				Type:             "improper_chemical_storage",
				Severity:         entities.SeverityHigh,
				Description:      "Improper chemical storage - no ventilation detected",
				Recommendation:   "Move chemicals to a well-ventilated, locked storage area. Keep away from food and water sources.",
				DescriptionHi:    "रसायनों का अनुचित भंडारण — हवा का प्रबंध नहीं",
				RecommendationHi: "रसायनों को हवादार, बंद भंडारण क्षेत्र में रखें। खाने और पानी से दूर रखें।",
			},
			{
				Type:             "missing_ppe_chemical",
				Severity:         entities.SeverityMedium,
				Description:      "Missing PPE for chemical handling - exposure risk",
				Recommendation:   "Wear chemical-resistant gloves, mask (N95 or better), goggles, and long-sleeved clothing before handling.",
				DescriptionHi:    "रसायन हैंडलिंग के लिए PPE गायब — संपर्क का खतरा",
				RecommendationHi: "रसायन-प्रतिरोधी दस्ताने, मास्क (N95 या बेहतर), चश्मा और लंबी बाजू के कपड़े पहनें।",
			},
			{
				Type:             "worn_label",
				Severity:         entities.SeverityLow,
				Description:      "Container label partially worn - identification difficulty",
				Recommendation:   "Re-label the container immediately with product name, hazard class, and date. Follow Insecticides Act 1968.",
				DescriptionHi:    "कंटेनर का लेबल आंशिक रूप से घिसा — पहचान में कठिनाई",
				RecommendationHi: "कंटेनर पर तुरंत नया लेबल लगाएं — उत्पाद नाम, खतरा वर्ग और तारीख लिखें।",
			},
		},
	},
	{
		ID: "general_farm",
		Hazards: []entities.Hazard{
			{
				Type:             "exposed_wiring",
				Severity:         entities.SeverityHigh,
				Description:      "Exposed electrical wiring - electrocution risk",
				Recommendation:   "Do NOT touch. Turn off power at the mains. Get a licensed electrician to repair immediately.",
				DescriptionHi:    "खुली बिजली की तारें — बिजली के झटके का खतरा",
				RecommendationHi: "छुएं नहीं। मेन से बिजली बंद करें। तुरंत लाइसेंस प्राप्त इलेक्ट्रीशियन से मरम्मत कराएं।",
			},
			{
				Type:             "slippery_surface",
				Severity:         entities.SeverityMedium,
				Description:      "Slippery surface near irrigation area - fall risk",
				Recommendation:   "Install non-slip mats or gravel. Wear rubber boots with grip soles. Add warning signs.",
				DescriptionHi:    "सिंचाई क्षेत्र के पास फिसलन भरी सतह — गिरने का खतरा",
				RecommendationHi: "एंटी-स्लिप मैट या बजरी बिछाएं। ग्रिप वाले रबर बूट पहनें। चेतावनी के संकेत लगाएं।",
			},
			{
				Type:             "no_first_aid",
				Severity:         entities.SeverityMedium,
				Description:      "No first aid kit visible in work area",
				Recommendation:   "Place a stocked first aid kit within 2 minutes walk. Include bandages, antiseptic, snake bite kit, and ORS packets.",
				DescriptionHi:    "कार्य क्षेत्र में प्राथमिक चिकित्सा किट दिखाई नहीं दे रही",
				RecommendationHi: "2 मिनट की पैदल दूरी पर भरी हुई फर्स्ट एड किट रखें। पट्टी, एंटीसेप्टिक, सर्पदंश किट और ORS शामिल करें।",
			},
			{
				Type:             "debris_path",
				Severity:         entities.SeverityLow,
				Description:      "Debris in walking path - trip hazard",
				Recommendation:   "Clear the path of loose tools, stones, and crop waste. Maintain daily housekeeping routine.",
				DescriptionHi:    "रास्ते में कचरा/मलबा — ठोकर लगने का खतरा",
				RecommendationHi: "रास्ते से ढीले औजार, पत्थर और फसल अवशेष हटाएं। रोज सफाई की आदत बनाएं।",
			},
		},
	},
	{
		ID: "storage",
		Hazards: []entities.Hazard{
			{
				Type:             "unstable_stacking",
				Severity:         entities.SeverityHigh,
				Description:      "Unstable stacking of grain sacks - collapse risk",
				Recommendation:   "Re-stack in pyramid pattern. Max 10 sacks high. Keep aisles clear for escape routes.",
				DescriptionHi:    "अनाज की बोरियों का अस्थिर ढेर — गिरने का खतरा",
				RecommendationHi: "पिरामिड पैटर्न में दोबारा लगाएं। अधिकतम 10 बोरी ऊंची। भागने के रास्ते खाली रखें।",
			},
			{
				Type:             "poor_ventilation",
				Severity:         entities.SeverityMedium,
				Description:      "Poor ventilation in storage area - fumigant gas risk",
				Recommendation:   "Open windows and doors. Install exhaust fans. Never enter recently fumigated storage without gas mask.",
				DescriptionHi:    "भंडारण क्षेत्र में खराब हवा — धूमन गैस का खतरा",
				RecommendationHi: "खिड़कियां और दरवाजे खोलें। एग्जॉस्ट फैन लगाएं। हाल ही में धूमन किए गए भंडार में गैस मास्क के बिना न जाएं।",
			},
			{
				Type:             "rodent_signs",
				Severity:         entities.SeverityMedium,
				Description:      "Signs of rodent activity - crop contamination risk",
				Recommendation:   "Set traps. Seal entry holes with cement or metal mesh. Store grain on raised pallets.",
				DescriptionHi:    "चूहों की गतिविधि के संकेत — फसल दूषण का खतरा",
				RecommendationHi: "जाल लगाएं। सीमेंट या धातु जाली से छेद बंद करें। अनाज ऊंचे पैलेट पर रखें।",
			},
			{
				Type:             "missing_fire_extinguisher",
				Severity:         entities.SeverityLow,
				Description:      "No fire extinguisher near storage - fire response gap",
				Recommendation:   "Install ABC-type fire extinguisher within 15 meters. Check expiry every 6 months.",
				DescriptionHi:    "भंडारण के पास अग्निशामक नहीं — आग से बचाव में कमी",
				RecommendationHi: "15 मीटर के भीतर ABC-प्रकार का अग्निशामक लगाएं। हर 6 महीने में एक्सपायरी जांचें।",
			},
		},
	},
	{
		ID: "livestock",
		Hazards: []entities.Hazard{
			{
				Type:             "aggressive_animal",
				Severity:         entities.SeverityHigh,
				Description:      "Large livestock without restraint - trampling/goring risk",
				Recommendation:   "Use nose ropes or halters. Approach from the side, not behind. Keep children and untrained persons away.",
				DescriptionHi:    "बड़े पशु बिना बंधन — कुचलने/सींग मारने का खतरा",
				RecommendationHi: "नकेल या रस्सी का उपयोग करें। बगल से पहुंचें, पीछे से नहीं। बच्चों और अप्रशिक्षित लोगों को दूर रखें।",
			},
			{
				Type:             "animal_waste",
				Severity:         entities.SeverityMedium,
				Description:      "Animal waste accumulation - disease and slip hazard",
				Recommendation:   "Clean daily. Compost waste properly. Wear rubber boots. Wash hands thoroughly after contact.",
				DescriptionHi:    "पशु अपशिष्ट का जमाव — बीमारी और फिसलने का खतरा",
				RecommendationHi: "रोज सफाई करें। अपशिष्ट को ठीक से खाद बनाएं। रबर बूट पहनें। संपर्क के बाद हाथ अच्छी तरह धोएं।",
			},
			{
				Type:             "broken_fence",
				Severity:         entities.SeverityMedium,
				Description:      "Broken fencing around livestock area - escape risk",
				Recommendation:   "Repair immediately with sturdy posts and wire. Check perimeter daily. Plan for emergency containment.",
				DescriptionHi:    "पशु क्षेत्र के चारों ओर टूटी बाड़ — भागने का खतरा",
				RecommendationHi: "मजबूत खंभों और तार से तुरंत मरम्मत करें। रोज परिधि जांचें।",
			},
			{
				Type:             "feed_storage_open",
				Severity:         entities.SeverityLow,
				Description:      "Animal feed stored in open - contamination and pest risk",
				Recommendation:   "Store feed in sealed containers or covered bins. Keep dry. Check for mold before feeding.",
				DescriptionHi:    "खुले में रखा पशु चारा — दूषण और कीट का खतरा",
				RecommendationHi: "चारे को बंद कंटेनर या ढके हुए डिब्बों में रखें। सूखा रखें। खिलाने से पहले फफूंद जांचें।",
			},
		},
	},
}

// DemoGenerator produces randomized hazard reports from the scenario sets.
type DemoGenerator struct {
	sets []ScenarioSet
	rnd  *rand.Rand
	now  func() time.Time
}

// NewDemoGenerator seeds a generator from the wall clock.
func NewDemoGenerator() *DemoGenerator {
	return &DemoGenerator{
		sets: ScenarioSets,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

// NewDemoGeneratorWithSource uses a fixed random source, for tests.
func NewDemoGeneratorWithSource(src rand.Source, now func() time.Time) *DemoGenerator {
	return &DemoGenerator{
		sets: ScenarioSets,
		rnd:  rand.New(src),
		now:  now,
	}
}

// Generate picks one scenario set and returns 2-4 of its hazards with
// randomized confidences, most severe first.
func (g *DemoGenerator) Generate() *entities.HazardReport {
	scenario := g.sets[g.rnd.Intn(len(g.sets))]

	count := 2 + g.rnd.Intn(3)
	if count > len(scenario.Hazards) {
		count = len(scenario.Hazards)
	}

	shuffled := make([]entities.Hazard, len(scenario.Hazards))
	copy(shuffled, scenario.Hazards)
	g.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	hazards := shuffled[:count]
	for i := range hazards {
		hazards[i].Confidence = g.confidence(0.7, 0.98)
	}

	sort.SliceStable(hazards, func(i, j int) bool {
		return hazards[i].Severity.Rank() > hazards[j].Severity.Rank()
	})

	return &entities.HazardReport{
		Hazards:        hazards,
		OverallRisk:    OverallRisk(hazards),
		HazardCount:    len(hazards),
		DetectedLabels: []string{},
		AnalyzedAt:     g.now(),
		Source:         "demo",
	}
}

func (g *DemoGenerator) confidence(min, max float64) float64 {
	return math.Round((min+g.rnd.Float64()*(max-min))*100) / 100
}
