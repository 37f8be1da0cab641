package models

// SmartyCandidate is one address record returned by the Smarty US Street
// Address API. Candidates are provider-supplied, immutable and never
// persisted; they live only for the duration of one request/response cycle.
type SmartyCandidate struct {
	InputIndex     int               `json:"input_index"`
	CandidateIndex int               `json:"candidate_index"`
	Addressee      string            `json:"addressee,omitempty"`
	DeliveryLine1  string            `json:"delivery_line_1,omitempty"`
	DeliveryLine2  string            `json:"delivery_line_2,omitempty"`
	LastLine       string            `json:"last_line,omitempty"`
	Components     *SmartyComponents `json:"components,omitempty"`
	Metadata       *SmartyMetadata   `json:"metadata,omitempty"`
	Analysis       *SmartyAnalysis   `json:"analysis,omitempty"`
}

// SmartyComponents holds the parsed parts of a candidate address
type SmartyComponents struct {
	PrimaryNumber            string `json:"primary_number,omitempty"`
	StreetName               string `json:"street_name,omitempty"`
	StreetPredirection       string `json:"street_predirection,omitempty"`
	StreetPostdirection      string `json:"street_postdirection,omitempty"`
	StreetSuffix             string `json:"street_suffix,omitempty"`
	SecondaryNumber          string `json:"secondary_number,omitempty"`
	SecondaryDesignator      string `json:"secondary_designator,omitempty"`
	CityName                 string `json:"city_name,omitempty"`
	DefaultCityName          string `json:"default_city_name,omitempty"`
	StateAbbreviation        string `json:"state_abbreviation,omitempty"`
	Zipcode                  string `json:"zipcode,omitempty"`
	Plus4Code                string `json:"plus4_code,omitempty"`
	DeliveryPoint            string `json:"delivery_point,omitempty"`
	DeliveryPointCheckDigit  string `json:"delivery_point_check_digit,omitempty"`
}

// SmartyMetadata holds geolocation and postal metadata for a candidate.
// RecordType "P" marks a PO Box.
type SmartyMetadata struct {
	RecordType            string  `json:"record_type,omitempty"`
	ZipType               string  `json:"zip_type,omitempty"`
	CountyFips            string  `json:"county_fips,omitempty"`
	CountyName            string  `json:"county_name,omitempty"`
	CarrierRoute          string  `json:"carrier_route,omitempty"`
	CongressionalDistrict string  `json:"congressional_district,omitempty"`
	RDI                   string  `json:"rdi,omitempty"`
	ElotSequence          string  `json:"elot_sequence,omitempty"`
	ElotSort              string  `json:"elot_sort,omitempty"`
	Latitude              float64 `json:"latitude,omitempty"`
	Longitude             float64 `json:"longitude,omitempty"`
	Precision             string  `json:"precision,omitempty"`
	TimeZone              string  `json:"time_zone,omitempty"`
	UTCOffset             float64 `json:"utc_offset,omitempty"`
	DST                   bool    `json:"dst,omitempty"`
}

// SmartyAnalysis carries the provider's match signals for a candidate
type SmartyAnalysis struct {
	// DPV match code: Y, N, S or D
	DPVMatchCode string `json:"dpv_match_code,omitempty"`
	// Concatenated footnote code pairs such as N1, C1, CC, R7
	DPVFootnotes string `json:"dpv_footnotes,omitempty"`
	DPVCMRA      string `json:"dpv_cmra,omitempty"`
	DPVVacant    string `json:"dpv_vacant,omitempty"`
	DPVNoStat    string `json:"dpv_no_stat,omitempty"`
	Active       string `json:"active,omitempty"`
	Footnotes    string `json:"footnotes,omitempty"`
	// Composite match-quality tags, e.g. postal-match or
	// non-postal-match plus missing-secondary / unknown-secondary
	EnhancedMatch string `json:"enhanced_match,omitempty"`
}
