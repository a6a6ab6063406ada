package validator

// Rule is a single validation constraint attached to a field. The set of
// implementations is closed: every variant is declared in this file and the
// engine dispatches on them exhaustively.
//
// Rules are plain values. They carry their parameters and the message
// reported verbatim when the check fails, and hold no other state. Pass the
// value form: pointers to variants are rejected with ErrUnknownRule.
type Rule interface {
	rule()
}

// RuleSet is an ordered list of rules for one field. Order defines evaluation
// order.
type RuleSet []Rule

// Required fails when the text is absent or blank after trimming whitespace.
type Required struct {
	Message string
}

// Letter allows only ASCII letters and spaces.
type Letter struct {
	Message string
}

// MaxLength fails when the text has more than Limit characters.
type MaxLength struct {
	Limit   int `validate:"gte=0"`
	Message string
}

// MinLength fails when the text has fewer than Limit characters.
type MinLength struct {
	Limit   int `validate:"gte=0"`
	Message string
}

// Email requires the whole text to look like an e-mail address.
type Email struct {
	Message string
}

// Mobile requires exactly ten ASCII digits.
type Mobile struct {
	Message string
}

// Password requires 6 to 12 characters that are not all whitespace.
type Password struct {
	Message string
}

// CharacterRange requires the character count to lie within [Min, Max].
type CharacterRange struct {
	Min     int `validate:"gte=0"`
	Max     int `validate:"gtefield=Min"`
	Message string
}

// AlphaNumeric allows only ASCII letters, digits and spaces.
type AlphaNumeric struct {
	Message string
}

// NumericRange parses the text as a base-10 integer that must lie within
// [Min, Max]. Unlike the other variants it is not skipped for empty text: an
// empty value fails to parse and is reported.
type NumericRange struct {
	Min     int
	Max     int `validate:"gtefield=Min"`
	Message string
}

// FilterWordsBasic fails when any space-separated token equals a forbidden
// word.
type FilterWordsBasic struct {
	Message string
}

// FilterWordsExhaustive fails when any substring of the normalized text equals
// a forbidden word.
type FilterWordsExhaustive struct {
	Message string
}

func (Required) rule()              {}
func (Letter) rule()                {}
func (MaxLength) rule()             {}
func (MinLength) rule()             {}
func (Email) rule()                 {}
func (Mobile) rule()                {}
func (Password) rule()              {}
func (CharacterRange) rule()        {}
func (AlphaNumeric) rule()          {}
func (NumericRange) rule()          {}
func (FilterWordsBasic) rule()      {}
func (FilterWordsExhaustive) rule() {}
