package transport

// InfoRequest asks for the full record of a single number.
type InfoRequest struct {
	Number string `form:"number" json:"number" validate:"required"`
}

// NumberRecord is the immutable result of an info lookup. Every field is a
// direct passthrough of a numbering-plan library accessor; fields the library
// carries no data for (regulator, ported) stay in the schema as empty/null so
// the record shape is stable across consumers.
type NumberRecord struct {
	Valid       bool     `json:"valid"`
	Possible    bool     `json:"possible"`
	LineType    string   `json:"lineType"`
	Geographic  bool     `json:"geographic"`
	Mobile      bool     `json:"mobile"`
	FixedLine   bool     `json:"fixedLine"`
	CountryCode int      `json:"countryCode"`
	Region      string   `json:"region"`
	Regulator   string   `json:"regulator,omitempty"`
	AreaCode    string   `json:"areaCode,omitempty"`
	Location    string   `json:"location,omitempty"`
	Subscriber  string   `json:"subscriber,omitempty"`
	Operator    string   `json:"operator,omitempty"`
	Ported      *bool    `json:"ported"`
	Timezones   []string `json:"timezones,omitempty"`

	FormattedInternational string `json:"formattedInternational"`
	FormattedNational      string `json:"formattedNational"`
}

// NormalizeRequest formats one or more numbers.
type NormalizeRequest struct {
	Numbers            []string `json:"numbers" validate:"required,min=1,dive,required"`
	DefaultCountryCode string   `json:"defaultCountryCode,omitempty"`
	StripWhitespace    bool     `json:"stripWhitespace,omitempty"`
}

// PresetNormalizeRequest formats numbers under a fixed country preset.
// The default country code is not accepted here; the preset decides it.
type PresetNormalizeRequest struct {
	Numbers         []string `json:"numbers" validate:"required,min=1,dive,required"`
	StripWhitespace bool     `json:"stripWhitespace,omitempty"`
}

// ValidateRequest checks a single number.
type ValidateRequest struct {
	Number string `form:"number" json:"number" validate:"required"`
}

// ValidityResponse reports the boolean verdict for one number.
type ValidityResponse struct {
	Number string `json:"number"`
	Valid  bool   `json:"valid"`
}

// NormalizePayload collapses a single-result batch to the bare string.
// A one-number call answers with the formatted string itself, not a
// one-element array; larger batches keep input order.
func NormalizePayload(results []string) interface{} {
	if len(results) == 1 {
		return results[0]
	}
	return results
}
