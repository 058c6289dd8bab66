package directory

// blueLineAliases translates Blue Line station names as recorded by the
// geographic survey into the naming used by the schedule dump. Only names in
// this table participate in aliasing; anything else passes through
// unchanged. The table is fixed: it is a reconciliation of two data sources,
// not a fuzzy match.
var blueLineAliases = map[string]string{
	"GULBERG":           "Gulberg",
	"KORAL CHOWK":       "Koral Town",
	"GANGAL":            "Gangal",
	"FAZAIA":            "Fazaia",
	"KHANNA PUL":        "Khanna Pul",
	"ZIA MASJID":        "Zia Masjid",
	"KURI ROAD":         "Kuri Road",
	"IQBAL TOWN":        "Iqbal Town",
	"DHOKE KALA KHAN":   "Dhok Kala Khan",
	"SOHAN":             "Sohan",
	"PARADE GROUND":     "Parade Ground",
	"SHAKARPARIAN":      "Shakarparian",
	"G-7 / G-8":         "G-8 Markaz",
	"CHILDREN HOSPITAL": "Children Hospital",
	"PIMS GATE":         "PIMS Hospital",
	"PIMS STATION":      "PIMS Metro Station",
}

// blueLineReverseAliases is the inverse table, used to map schedule names
// back to survey names for display.
var blueLineReverseAliases = func() map[string]string {
	reverse := make(map[string]string, len(blueLineAliases))
	for survey, schedule := range blueLineAliases {
		reverse[schedule] = survey
	}
	return reverse
}()
