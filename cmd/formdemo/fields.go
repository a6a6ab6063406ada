package main

import "github.com/dmitrymomot/fieldguard/pkg/validator"

// fieldSpec describes one input on the demo screen.
type fieldSpec struct {
	name        string
	label       string
	placeholder string
	secret      bool
	rules       []validator.Rule
}

const wordsNotAllowed = "Sorry these words are not allowed"

// demoFields lists the inputs in validation order.
var demoFields = []fieldSpec{
	{
		name:        "full_name",
		label:       "Full name",
		placeholder: "letters and spaces",
		rules:       []validator.Rule{validator.Letter{Message: "Full name can only allow alphabetic characters."}},
	},
	{
		name:        "email",
		label:       "Email",
		placeholder: "name@example.com",
		rules:       []validator.Rule{validator.Email{Message: "Invalid email address"}},
	},
	{
		name:        "mobile",
		label:       "Mobile",
		placeholder: "10 digits",
		rules:       []validator.Rule{validator.Mobile{Message: "Invalid mobile number"}},
	},
	{
		name:        "password",
		label:       "Password",
		placeholder: "6 to 12 characters",
		secret:      true,
		rules:       []validator.Rule{validator.Password{Message: "Invalid password"}},
	},
	{
		name:        "required",
		label:       "Required",
		placeholder: "anything",
		rules:       []validator.Rule{validator.Required{Message: "Text field is required"}},
	},
	{
		name:        "age",
		label:       "Age",
		placeholder: "18 to 70",
		rules:       []validator.Rule{validator.NumericRange{Min: 18, Max: 70, Message: "Invalid age value"}},
	},
	{
		name:        "alphanumeric",
		label:       "Alphanumeric",
		placeholder: "letters, digits, spaces",
		rules:       []validator.Rule{validator.AlphaNumeric{Message: "Invalid alphanumeric textfield value"}},
	},
	{
		name:        "word_filter",
		label:       "Word filter",
		placeholder: "separate words are checked",
		rules:       []validator.Rule{validator.FilterWordsBasic{Message: wordsNotAllowed}},
	},
	{
		name:        "word_filter_thorough",
		label:       "Thorough filter",
		placeholder: "every substring is checked",
		rules:       []validator.Rule{validator.FilterWordsExhaustive{Message: wordsNotAllowed}},
	},
}

// defaultWords is used when no word file is configured.
var defaultWords = []string{"bad", "ugly", "nasty"}

func newDemoForm(v *validator.Validator) (*validator.Form, error) {
	form := validator.NewForm(v)
	for _, f := range demoFields {
		if err := form.Attach(f.name, f.rules...); err != nil {
			return nil, err
		}
	}
	return form, nil
}
