package rules

import "github.com/ravitejak/legal-assist-bot/internal/models"

// sectionEntry maps a keyword to its IPC/IT Act citations. Lookup walks the
// slice in declaration order so matched citations keep a stable ordering.
type sectionEntry struct {
	Keyword string
	Laws    []string
}

var ipcSections = []sectionEntry{
	{"theft", []string{"IPC 378 - Theft", "IPC 379 - Punishment for theft", "IPC 380 - Theft in dwelling house"}},
	{"mobile", []string{"IPC 378 - Theft", "IPC 379 - Punishment for theft", "IPC 411 - Dishonestly receiving stolen property"}},
	{"phone", []string{"IPC 378 - Theft", "IPC 379 - Punishment for theft", "IPC 411 - Dishonestly receiving stolen property"}},
	{"stolen", []string{"IPC 378 - Theft", "IPC 379 - Punishment for theft", "IPC 411 - Dishonestly receiving stolen property"}},
	{"robbery", []string{"IPC 390 - Robbery", "IPC 392 - Punishment for robbery", "IPC 394 - Voluntarily causing hurt in committing robbery"}},
	{"assault", []string{"IPC 323 - Voluntarily causing hurt", "IPC 325 - Voluntarily causing grievous hurt", "IPC 351 - Assault"}},
	{"harassment", []string{"IPC 354 - Assault or criminal force with intent to outrage modesty", "IPC 509 - Word, gesture or act intended to insult the modesty of a woman"}},
	{"fraud", []string{"IPC 420 - Cheating and dishonestly inducing delivery of property", "IPC 406 - Criminal breach of trust"}},
	{"cheating", []string{"IPC 415 - Cheating", "IPC 420 - Cheating and dishonestly inducing delivery of property"}},
	{"domestic_violence", []string{"IPC 498A - Husband or relative of husband subjecting woman to cruelty", "Protection of Women from Domestic Violence Act, 2005"}},
	{"cybercrime", []string{"IT Act Section 66 - Computer related offences", "IT Act Section 66C - Identity theft", "IT Act Section 67 - Publishing obscene information"}},
	{"property_dispute", []string{"IPC 441 - Criminal trespass", "IPC 447 - Punishment for criminal trespass", "IPC 406 - Criminal breach of trust"}},
	{"defamation", []string{"IPC 499 - Defamation", "IPC 500 - Punishment for defamation"}},
	{"public_nuisance", []string{"IPC 268 - Public nuisance", "IPC 290 - Punishment for public nuisance"}},
	{"extortion", []string{"IPC 383 - Extortion", "IPC 384 - Punishment for extortion"}},
	{"rape", []string{"IPC 376 - Punishment for rape", "IPC 354 - Assault or criminal force with intent to outrage modesty"}},
	{"murder", []string{"IPC 302 - Punishment for murder", "IPC 304 - Culpable homicide not amounting to murder"}},
}

// kakinadaStations is the static reference list used when no live lookup is
// available. Declaration order matters: the default answer is the first three.
var kakinadaStations = []models.PoliceStation{
	{
		Name:    "Kakinada Town Police Station",
		Address: "Main Road, Kakinada-533001, East Godavari District, Andhra Pradesh",
		Phone:   "0884-2365555",
		Type:    "Town Police Station",
		Lat:     16.9891, Lon: 82.2475,
	},
	{
		Name:    "Kakinada Rural Police Station",
		Address: "Kakinada Rural, East Godavari District, Andhra Pradesh",
		Phone:   "0884-2367777",
		Type:    "Rural Police Station",
		Lat:     16.9650, Lon: 82.2420,
	},
	{
		Name:    "Kakinada One Town Police Station",
		Address: "Suryanarayana Puram, Kakinada-533003, Andhra Pradesh",
		Phone:   "0884-2369999",
		Type:    "Town Police Station",
		Lat:     16.9821, Lon: 82.2350,
	},
	{
		Name:    "Kakinada Two Town Police Station",
		Address: "Sarpavaram Junction, Kakinada-533005, Andhra Pradesh",
		Phone:   "0884-2371111",
		Type:    "Town Police Station",
		Lat:     16.9720, Lon: 82.2590,
	},
	{
		Name:    "Women Police Station, Kakinada",
		Address: "Beside District Court, Kakinada-533001, Andhra Pradesh",
		Phone:   "0884-2373333",
		Type:    "Women Police Station",
		Lat:     16.9901, Lon: 82.2465,
	},
	{
		Name:    "Cyber Crime Police Station, Kakinada",
		Address: "SP Office Complex, Kakinada, East Godavari District, Andhra Pradesh",
		Phone:   "0884-2375555",
		Type:    "Cyber Crime Police Station",
		Lat:     16.9880, Lon: 82.2490,
	},
}

type cityEntry struct {
	Key  string
	Info models.CityInfo
}

var apCities = []cityEntry{
	{"vijayawada", models.CityInfo{City: "Vijayawada", PoliceControl: "0866-2574671", Helpline: "100, 112"}},
	{"visakhapatnam", models.CityInfo{City: "Visakhapatnam", PoliceControl: "0891-2746444", Helpline: "100, 112"}},
	{"tirupati", models.CityInfo{City: "Tirupati", PoliceControl: "0877-2228999", Helpline: "100, 112"}},
	{"guntur", models.CityInfo{City: "Guntur", PoliceControl: "0863-2342555", Helpline: "100, 112"}},
	{"kakinada", models.CityInfo{City: "Kakinada", PoliceControl: "0884-2365555", Helpline: "100, 112"}},
}

// Stations returns a copy of the static station table.
func Stations() []models.PoliceStation {
	out := make([]models.PoliceStation, len(kakinadaStations))
	copy(out, kakinadaStations)
	return out
}
