package domain

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FieldKind is the semantic type of a collected field, decided once from the
// stored field name. Unknown names are free text and pass through unvalidated.
type FieldKind int

const (
	FieldFreeText FieldKind = iota
	FieldQuantity
	FieldEmail
	FieldPhone
	FieldAddress
)

// fieldKinds maps canonical field names (as stored in data_needed) to kinds.
// New field types register here.
var fieldKinds = map[string]FieldKind{
	"počet kusů":      FieldQuantity,
	"email":           FieldEmail,
	"telefonní číslo": FieldPhone,
	"adresa doručení": FieldAddress,
}

// ClassifyField resolves a field name to its semantic kind
func ClassifyField(name string) FieldKind {
	if kind, ok := fieldKinds[strings.ToLower(strings.TrimSpace(name))]; ok {
		return kind
	}
	return FieldFreeText
}

var (
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex      = regexp.MustCompile(`^\+?\d{9,15}$`)
	phoneCleanRegex = regexp.MustCompile(`[\s()-]+`)
)

const minAddressLength = 10

var (
	errQuantity = errors.New("Toto není kladné číslo. Zadej počet kusů (např. 1):")
	errEmail    = errors.New("Toto není platný email. Zadej ho znovu (např. jmeno@domena.cz):")
	errPhone    = errors.New("Toto není platný telefon. Zadej ho znovu (např. +420123456789):")
	errAddress  = errors.New("Adresa je příliš krátká. Zadej ji prosím znovu:")
)

// Validate checks raw user input against the field kind and returns the
// normalized value (int for quantity, string otherwise). The error message
// is the corrective prompt shown to the user.
func (k FieldKind) Validate(raw string) (any, error) {
	input := strings.TrimSpace(raw)

	switch k {
	case FieldQuantity:
		n, err := strconv.Atoi(input)
		if err != nil || n <= 0 || !isAllDigits(input) {
			return nil, errQuantity
		}
		return n, nil

	case FieldEmail:
		if !emailRegex.MatchString(input) {
			return nil, errEmail
		}
		return input, nil

	case FieldPhone:
		cleaned := phoneCleanRegex.ReplaceAllString(input, "")
		if !phoneRegex.MatchString(cleaned) {
			return nil, errPhone
		}
		return cleaned, nil

	case FieldAddress:
		if utf8.RuneCountInString(input) < minAddressLength {
			return nil, errAddress
		}
		return input, nil

	default:
		return input, nil
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FieldQuestion returns the question asking the user for the named field
func FieldQuestion(name string) string {
	switch ClassifyField(name) {
	case FieldAddress:
		return "Prosím, zadej *adresu doručení* (ulice, č.p., město, PSČ):"
	case FieldPhone:
		return "Prosím, zadej své *telefonní číslo*:"
	case FieldQuantity:
		return "Prosím, zadej požadovaný *počet kusů*:"
	case FieldEmail:
		return "Prosím, zadej svou *emailovou adresu*:"
	default:
		return "Prosím, zadej údaj pro: *" + strings.TrimSpace(name) + "*"
	}
}

// HumanizeFieldName turns a stored field key into display form for summaries
// ("pocet_kusu" -> "Pocet kusu")
func HumanizeFieldName(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
