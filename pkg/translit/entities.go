package translit

// defaultEntities seeds the transliteration dictionary with frequent
// Bangladeshi place names, country names, and public figures. Canonical form
// is the Bangla surface form as it appears in the bn corpus; variants are the
// English spellings used by en sources.
var defaultEntities = map[string][]string{
	// divisional cities
	"ঢাকা":       {"dhaka", "dacca"},
	"চট্টগ্রাম":  {"chittagong", "chattogram"},
	"সিলেট":      {"sylhet"},
	"রাজশাহী":    {"rajshahi"},
	"খুলনা":      {"khulna"},
	"বরিশাল":     {"barisal", "barishal"},
	"রংপুর":      {"rangpur"},
	"ময়মনসিংহ":  {"mymensingh"},
	"কুমিল্লা":   {"comilla", "cumilla"},
	"কক্সবাজার":  {"cox's bazar", "coxs bazar"},
	"নারায়ণগঞ্জ": {"narayanganj"},
	"যশোর":       {"jessore", "jashore"},
	"বগুড়া":     {"bogra", "bogura"},

	// countries
	"বাংলাদেশ":   {"bangladesh"},
	"ভারত":       {"india"},
	"পাকিস্তান":  {"pakistan"},
	"চীন":        {"china"},
	"যুক্তরাষ্ট্র": {"usa", "united states"},
	"যুক্তরাজ্য":  {"uk", "united kingdom"},
	"রাশিয়া":    {"russia"},
	"জাপান":      {"japan"},

	// public figures
	"শেখ হাসিনা":          {"sheikh hasina"},
	"খালেদা জিয়া":        {"khaleda zia"},
	"শেখ মুজিবুর রহমান":   {"sheikh mujibur rahman"},
	"শাকিব আল হাসান":      {"shakib al hasan"},
	"তামিম ইকবাল":         {"tamim iqbal"},
	"মুশফিকুর রহিম":       {"mushfiqur rahim"},
	"রবীন্দ্রনাথ ঠাকুর":   {"rabindranath tagore"},
	"কাজী নজরুল ইসলাম":    {"kazi nazrul islam"},

	// organizations and events
	"আওয়ামী লীগ":   {"awami league"},
	"বিএনপি":        {"bnp"},
	"একুশে ফেব্রুয়ারি": {"ekushey february"},
	"পদ্মা সেতু":    {"padma bridge"},
}
