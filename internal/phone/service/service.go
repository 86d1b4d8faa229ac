// Package service implements the phone number query facade: info lookup,
// batch normalization, and validity checks, all delegated to the
// numbering-plan library.
package service

import (
	"fmt"
	"strings"

	"phonedesk/internal/phone/region"
	"phonedesk/internal/phone/transport"
	"phonedesk/platform/apperr"
	"phonedesk/platform/logger"
	"phonedesk/platform/sanitize"
	"phonedesk/platform/validator"

	"github.com/nyaruka/phonenumbers"
)

const (
	// msgInvalidNumber is the fixed info-lookup failure message. The
	// offending input is deliberately not echoed here; normalization
	// failures do echo it. The asymmetry is part of the contract.
	msgInvalidNumber = "Invalid phone number"

	defaultLang = "en"
)

// Service answers phone number queries. It holds no mutable state; every
// operation is a single pass over its inputs.
type Service struct {
	registry *region.Registry
	val      *validator.Validator
	log      *logger.Logger
	lang     string
}

// New creates the phone query service. lang selects the locale for carrier
// and geocoding descriptions; empty means English.
func New(registry *region.Registry, val *validator.Validator, log *logger.Logger, lang string) *Service {
	if lang == "" {
		lang = defaultLang
	}
	return &Service{
		registry: registry,
		val:      val,
		log:      log,
		lang:     lang,
	}
}

// parse is the discriminated construction step: a number constructs only
// when the library both parses it and classifies it valid under the given
// region scope. An empty region means generic international form.
func (s *Service) parse(raw, regionCode string) (*phonenumbers.PhoneNumber, bool) {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), regionCode)
	if err != nil {
		return nil, false
	}
	if !phonenumbers.IsValidNumber(num) {
		return nil, false
	}
	return num, true
}

// Info returns the full record for one number, parsed in generic scope.
// Construction failure is an InvalidNumber error.
func (s *Service) Info(raw string) (*transport.NumberRecord, error) {
	num, ok := s.parse(raw, "")
	if !ok {
		s.log.LookupRejected("info", msgInvalidNumber)
		return nil, apperr.Validation(msgInvalidNumber)
	}
	return buildRecord(num, s.lang), nil
}

// Normalize formats every number in the batch, in input order. The batch is
// all-or-nothing: the first construction failure aborts the whole call and
// nothing is returned.
func (s *Service) Normalize(req transport.NormalizeRequest) ([]string, error) {
	regionCode, err := s.resolveRegion(req.DefaultCountryCode)
	if err != nil {
		return nil, err
	}

	results := make([]string, 0, len(req.Numbers))
	for _, raw := range req.Numbers {
		num, ok := s.parse(raw, regionCode)
		if !ok {
			s.log.LookupRejected("normalize", "invalid number")
			return nil, apperr.Validation(fmt.Sprintf("Invalid phone number '%s'", raw))
		}
		formatted := phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
		if req.StripWhitespace {
			formatted = sanitize.StripWhitespace(formatted)
		}
		results = append(results, formatted)
	}
	return results, nil
}

// NormalizePreset runs Normalize under a fixed country preset: each input is
// first rewritten by the preset's international-prefix heuristic, then the
// preset's region is applied. Callers cannot override the region.
func (s *Service) NormalizePreset(p region.Preset, numbers []string, strip bool) ([]string, error) {
	rewritten := make([]string, len(numbers))
	for i, raw := range numbers {
		rewritten[i] = p.Rewrite(strings.TrimSpace(raw))
	}
	return s.Normalize(transport.NormalizeRequest{
		Numbers:            rewritten,
		DefaultCountryCode: p.Code,
		StripWhitespace:    strip,
	})
}

// IsValid reports whether the number constructs in generic scope.
// Construction failure is the negative result here, never an error.
func (s *Service) IsValid(raw string) bool {
	_, ok := s.parse(raw, "")
	return ok
}

// resolveRegion validates an optional default country code and resolves it
// through the registry. This runs before any number parsing.
func (s *Service) resolveRegion(code string) (string, error) {
	if code == "" {
		return "", nil
	}
	if err := s.val.Var(code, "alpha,len=2"); err != nil {
		s.log.LookupRejected("normalize", "malformed country code")
		return "", apperr.Validation(fmt.Sprintf("Invalid country code '%s'", code))
	}
	reg, ok := s.registry.Lookup(code)
	if !ok {
		s.log.LookupRejected("normalize", "unsupported country code")
		return "", apperr.Validation(fmt.Sprintf("Unsupported country code '%s'", code))
	}
	return reg.Code, nil
}

func buildRecord(num *phonenumbers.PhoneNumber, lang string) *transport.NumberRecord {
	numType := phonenumbers.GetNumberType(num)

	nsn := phonenumbers.GetNationalSignificantNumber(num)
	areaCode, subscriber := "", nsn
	if areaLen := phonenumbers.GetLengthOfGeographicalAreaCode(num); areaLen > 0 && areaLen <= len(nsn) {
		areaCode = nsn[:areaLen]
		subscriber = nsn[areaLen:]
	}

	operator, _ := phonenumbers.GetCarrierForNumber(num, lang)
	location, _ := phonenumbers.GetGeocodingForNumber(num, lang)
	timezones, _ := phonenumbers.GetTimezonesForNumber(num)

	return &transport.NumberRecord{
		Valid:       phonenumbers.IsValidNumber(num),
		Possible:    phonenumbers.IsPossibleNumber(num),
		LineType:    lineTypeName(numType),
		Geographic:  isGeographic(numType),
		Mobile:      numType == phonenumbers.MOBILE || numType == phonenumbers.FIXED_LINE_OR_MOBILE,
		FixedLine:   numType == phonenumbers.FIXED_LINE || numType == phonenumbers.FIXED_LINE_OR_MOBILE,
		CountryCode: int(num.GetCountryCode()),
		Region:      phonenumbers.GetRegionCodeForNumber(num),
		AreaCode:    areaCode,
		Location:    location,
		Subscriber:  subscriber,
		Operator:    operator,
		Timezones:   timezones,

		FormattedInternational: phonenumbers.Format(num, phonenumbers.INTERNATIONAL),
		FormattedNational:      phonenumbers.Format(num, phonenumbers.NATIONAL),
	}
}

func isGeographic(numType phonenumbers.PhoneNumberType) bool {
	return numType == phonenumbers.FIXED_LINE || numType == phonenumbers.FIXED_LINE_OR_MOBILE
}

func lineTypeName(numType phonenumbers.PhoneNumberType) string {
	switch numType {
	case phonenumbers.FIXED_LINE:
		return "fixed_line"
	case phonenumbers.MOBILE:
		return "mobile"
	case phonenumbers.FIXED_LINE_OR_MOBILE:
		return "fixed_line_or_mobile"
	case phonenumbers.TOLL_FREE:
		return "toll_free"
	case phonenumbers.PREMIUM_RATE:
		return "premium_rate"
	case phonenumbers.SHARED_COST:
		return "shared_cost"
	case phonenumbers.VOIP:
		return "voip"
	case phonenumbers.PERSONAL_NUMBER:
		return "personal_number"
	case phonenumbers.PAGER:
		return "pager"
	case phonenumbers.UAN:
		return "uan"
	case phonenumbers.VOICEMAIL:
		return "voicemail"
	default:
		return "unknown"
	}
}
