package checkout

// State is a region within a shipping country.
type State struct {
	Name string
	Code string
}

// Country is a supported shipping destination with its selectable regions.
type Country struct {
	Name   string
	Code   string
	States []State
}

// EuropeanCountries is the set of destinations the storefront ships to.
var EuropeanCountries = []Country{
	{
		Name: "Malta",
		Code: "MT",
		States: []State{
			{Name: "Malta", Code: "MT"},
			{Name: "Gozo", Code: "GO"},
		},
	},
	{
		Name: "Italy",
		Code: "IT",
		States: []State{
			{Name: "Lombardy", Code: "LO"},
			{Name: "Lazio", Code: "LA"},
			{Name: "Campania", Code: "CA"},
			{Name: "Sicily", Code: "SI"},
			{Name: "Veneto", Code: "VE"},
			{Name: "Emilia-Romagna", Code: "ER"},
			{Name: "Piedmont", Code: "PI"},
			{Name: "Tuscany", Code: "TU"},
			{Name: "Calabria", Code: "CL"},
			{Name: "Sardinia", Code: "SA"},
		},
	},
	{
		Name: "France",
		Code: "FR",
		States: []State{
			{Name: "Île-de-France", Code: "IDF"},
			{Name: "Provence-Alpes-Côte d'Azur", Code: "PAC"},
			{Name: "Auvergne-Rhône-Alpes", Code: "ARA"},
			{Name: "Hauts-de-France", Code: "HDF"},
			{Name: "Occitanie", Code: "OCC"},
			{Name: "Nouvelle-Aquitaine", Code: "NAQ"},
			{Name: "Grand Est", Code: "GES"},
			{Name: "Pays de la Loire", Code: "PDL"},
			{Name: "Normandie", Code: "NOR"},
			{Name: "Bretagne", Code: "BRE"},
		},
	},
	{
		Name: "Germany",
		Code: "DE",
		States: []State{
			{Name: "Bavaria", Code: "BY"},
			{Name: "North Rhine-Westphalia", Code: "NW"},
			{Name: "Baden-Württemberg", Code: "BW"},
			{Name: "Lower Saxony", Code: "NI"},
			{Name: "Hesse", Code: "HE"},
			{Name: "Saxony", Code: "SN"},
			{Name: "Rhineland-Palatinate", Code: "RP"},
			{Name: "Berlin", Code: "BE"},
			{Name: "Hamburg", Code: "HH"},
			{Name: "Schleswig-Holstein", Code: "SH"},
		},
	},
	{
		Name: "Spain",
		Code: "ES",
		States: []State{
			{Name: "Andalusia", Code: "AN"},
			{Name: "Catalonia", Code: "CT"},
			{Name: "Madrid", Code: "MD"},
			{Name: "Valencia", Code: "VC"},
			{Name: "Galicia", Code: "GA"},
			{Name: "Castile and León", Code: "CL"},
			{Name: "Basque Country", Code: "PV"},
			{Name: "Castilla-La Mancha", Code: "CM"},
			{Name: "Canary Islands", Code: "CN"},
			{Name: "Murcia", Code: "MC"},
		},
	},
	{
		Name: "Netherlands",
		Code: "NL",
		States: []State{
			{Name: "North Holland", Code: "NH"},
			{Name: "South Holland", Code: "ZH"},
			{Name: "North Brabant", Code: "NB"},
			{Name: "Gelderland", Code: "GE"},
			{Name: "Utrecht", Code: "UT"},
			{Name: "Friesland", Code: "FR"},
			{Name: "Overijssel", Code: "OV"},
			{Name: "Groningen", Code: "GR"},
			{Name: "Limburg", Code: "LI"},
			{Name: "Drenthe", Code: "DR"},
		},
	},
}

// CountryByCode looks up a shipping country by its ISO code.
func CountryByCode(code string) (Country, bool) {
	for _, c := range EuropeanCountries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}
