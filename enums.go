package querit

import (
	"encoding/json"
	"strings"
)

// Language identifies a supported query language. The string value is the
// normalized lowercase identifier used on the wire.
type Language string

const (
	LanguageEnglish    Language = "english"
	LanguageJapanese   Language = "japanese"
	LanguageKorean     Language = "korean"
	LanguageGerman     Language = "german"
	LanguageFrench     Language = "french"
	LanguageSpanish    Language = "spanish"
	LanguagePortuguese Language = "portuguese"
)

var languageSet = map[Language]struct{}{
	LanguageEnglish:    {},
	LanguageJapanese:   {},
	LanguageKorean:     {},
	LanguageGerman:     {},
	LanguageFrench:     {},
	LanguageSpanish:    {},
	LanguagePortuguese: {},
}

// ParseLanguage validates a raw string against the supported language set.
// Input is trimmed and lowercased before lookup; anything outside the set
// fails with *UnsupportedValueError.
func ParseLanguage(val string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(val)))
	if !lang.Valid() {
		return "", &UnsupportedValueError{Kind: "language", Value: val}
	}
	return lang, nil
}

// Valid reports whether the language is one of the supported members.
func (l Language) Valid() bool {
	_, ok := languageSet[l]
	return ok
}

// Normalize returns the canonical wire identifier, validating membership.
func (l Language) Normalize() (string, error) {
	parsed, err := ParseLanguage(string(l))
	if err != nil {
		return "", err
	}
	return string(parsed), nil
}

func (l Language) String() string { return string(l) }

func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(l))
}

func (l *Language) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseLanguage(raw)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Country identifies a supported country or region. The string value is the
// normalized lowercase identifier used on the wire.
type Country string

const (
	CountryArgentina     Country = "argentina"
	CountryAustralia     Country = "australia"
	CountryBrazil        Country = "brazil"
	CountryCanada        Country = "canada"
	CountryColombia      Country = "colombia"
	CountryFrance        Country = "france"
	CountryGermany       Country = "germany"
	CountryIndia         Country = "india"
	CountryIndonesia     Country = "indonesia"
	CountryJapan         Country = "japan"
	CountryMexico        Country = "mexico"
	CountryNigeria       Country = "nigeria"
	CountryPhilippines   Country = "philippines"
	CountrySouthKorea    Country = "south korea"
	CountrySpain         Country = "spain"
	CountryUnitedKingdom Country = "united kingdom"
	CountryUnitedStates  Country = "united states"
)

var countrySet = map[Country]struct{}{
	CountryArgentina:     {},
	CountryAustralia:     {},
	CountryBrazil:        {},
	CountryCanada:        {},
	CountryColombia:      {},
	CountryFrance:        {},
	CountryGermany:       {},
	CountryIndia:         {},
	CountryIndonesia:     {},
	CountryJapan:         {},
	CountryMexico:        {},
	CountryNigeria:       {},
	CountryPhilippines:   {},
	CountrySouthKorea:    {},
	CountrySpain:         {},
	CountryUnitedKingdom: {},
	CountryUnitedStates:  {},
}

// ParseCountry validates a raw string against the supported country set.
func ParseCountry(val string) (Country, error) {
	country := Country(strings.ToLower(strings.TrimSpace(val)))
	if !country.Valid() {
		return "", &UnsupportedValueError{Kind: "country", Value: val}
	}
	return country, nil
}

// Valid reports whether the country is one of the supported members.
func (c Country) Valid() bool {
	_, ok := countrySet[c]
	return ok
}

// Normalize returns the canonical wire identifier, validating membership.
func (c Country) Normalize() (string, error) {
	parsed, err := ParseCountry(string(c))
	if err != nil {
		return "", err
	}
	return string(parsed), nil
}

func (c Country) String() string { return string(c) }

func (c Country) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

func (c *Country) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseCountry(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
