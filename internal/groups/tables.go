package groups

import "airhhi/pkg/domain"

// Airline is one membership entry: the carrier's full name and its IATA
// code. The tables below are static configuration; no behavior attaches to
// them.
type Airline struct {
	Name string
	Code string
}

// membership binds one group to its member airlines.
type membership struct {
	Group    domain.GroupName
	Airlines []Airline
}

// Membership tables for the 2015-2019 German market. An airline appearing in
// more than one table is resolved first-definition-wins by the classifier.
var memberships = []membership{ //nolint: gochecknoglobals
	{domain.GroupLufthansa, lufthansaGroup},
	{domain.GroupAirBerlin, airBerlinGroup},
	{domain.GroupLowCost, lowCostCarriers},
	{domain.GroupLegacy, legacyCarriers},
	{domain.GroupRegional, regionalAndOthers},
}

var lufthansaGroup = []Airline{ //nolint: gochecknoglobals
	{"Deutsche Lufthansa AG", "LH"},
	{"SunExpress Deutschland GmbH", "XG"},
	{"SunExpress", "XQ"},
	{"Austrian Airlines AG dba Austrian", "OS"},
	{"Swiss International Air Lines Ltd", "LX"},
	{"Brussels Airlines", "SN"},
	{"Eurowings GmbH", "EW"},
	{"Edelweiss Air AG", "WK"},
	{"Germanwings GmbH", "4U"},
	{"Lufthansa CityLine Gmbh", "CL"},
	{"Air Dolomiti S.p.A. Aeree Regionali Europee", "EN"},
	{"Swiss Global Air Lines AG", "LZ"},
	{"Eurowings Europe GmbH", "E2"},
}

var airBerlinGroup = []Airline{ //nolint: gochecknoglobals
	{"Air Berlin Aviation Gmbh", "AB"},
	{"Air Berlin Aviation Gmbh", "H3"},
	{"NL LUFTFAHRT GMBH", "HG*"},
	{"LGW - Luftfahrtgesellschaft Walter GmbH", "HE"},
	{"LAUDAMOTION GMBH", "OE"},
}

var lowCostCarriers = []Airline{ //nolint: gochecknoglobals
	{"Jet2.com Limited", "LS"},
	{"Norwegian Air Shuttle A.S", "DY"},
	{"Pegasus Hava Tasimaciligi A.S.", "PC"},
	{"Ryanair Ltd.", "FR"},
	{"Transavia Airlines", "HV"},
	{"Volotea, S.A.", "V7"},
	{"Vueling Airlines S.A.", "VY"},
	{"Wizz Air Hungary Ltd.", "W6"},
	{"Easyjet Airline Company Limited", "U2"},
	{"Easyjet Austria", "EJU"},
	{"EASYJET SWITZERLAND", "EZS"},
	{"EASYJET UK", "EZY"},
	{"Blue Air Aviation", "SA"},
	{"Turistik Hava Tasimacilik A.S. (Corendon Airlines)", "XC"},
	{"Condor Flugdienst GmbH", "DE"},
	{"Flybe Limited", "BE"},
	{"Cobaltair Ltd", "CO"},
	{"Easyjet Switzerland S.A.", "DS"},
	{"Germania Fluggessellschaft mbH", "ST"},
	{"Helvetic Airways AG", "2L"},
	{"Onur Air Tasimacilik A.S", "8Q"},
	{"Smartwings a.s.", "QS"},
	{"Transavia France", "TO"},
	{"TUI Airlines Belgium N.V", "TB"},
	{"TUIfly GmbH", "X3"},
	{"Ellinair S.A", "EL"},
}

var legacyCarriers = []Airline{ //nolint: gochecknoglobals
	{"Air Belgium SA", "KF"},
	{"Scandinavian Airlines System", "SK"},
	{"Air Italy S.p.A dba Air Italy S.p.A.", "IG"},
	{"Bulgaria Air", "FB"},
	{"Croatia Airlines", "OU"},
	{"Luxair", "LG"},
	{"Air Malta p.l.c.", "KM"},
	{"PJSC Aeroflot", "SU"},
	{"Aegean Airlines S.A.", "A3"},
	{"Air Baltic Corporation AS", "BT"},
	{"Adria Airways d.o.o.", "JP"},
	{"Icelandair", "FI"},
	{"JSC for Air Traffic-Air SERBIA Belgrade t/a Air Serbia a.d. Beograd", "JU"},
	{"Private Stock Company Ukraine International Airlines", "PS"},
	{"Turkish Airlines Inc.", "TK"},
	{"KLM Royal Dutch Airlines", "KL"},
	{"LOT  Polish Airlines", "LO"},
	{"TAP Portugal", "TP"},
	{"Aer Lingus Limited", "EI"},
	{"Air France", "AF"},
	{"Alitalia - Societa Aerea Italiana S.p.A", "AZ"},
	{"British Airways p.l.c.", "BA"},
	{"Finnair Oyj", "AY"},
	{"Czech Airlines a.s., CSA", "OK"},
	{"Compania Nationala de Transporturi Aeriene Romane TAROM S.A.", "RO"},
	{"Iberia Lineas Aereas de Espana Sociedad Anonima Operadora", "IB"},
}

var regionalAndOthers = []Airline{ //nolint: gochecknoglobals
	{"Thomas Cook Airlines", "MT"},
	{"TUI Airways", "BY"},
	{"Loganair", "LM"},
	{"Widerøe", "WF"},
	{"European Air Charter", "H6"},
	{"Binter Canarias", "NT"},
}
