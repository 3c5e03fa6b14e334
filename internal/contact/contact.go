// Package contact validates contact form submissions and builds the mailto
// fallback offered when a submission can not be delivered.
package contact

import (
	"errors"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Limits of the message field.
const (
	MessageMinLen = 10
	MessageMaxLen = 5000
)

// Messages shown next to invalid fields.
const (
	MsgNameRequired    = "Please enter your name"
	MsgEmailRequired   = "Please enter your email address"
	MsgEmailInvalid    = "Please enter a valid email address"
	MsgMessageRequired = "Please enter a message"
	MsgMessageTooShort = "Message must be at least 10 characters"
	MsgMessageTooLong  = "Message must be at most 5000 characters"
	MsgTooLong         = "Value is too long"
	MsgInvalid         = "Invalid value"
)

// Messages are the field messages the contact page script shows before it
// sends anything, so browser and server report the same text.
type Messages struct {
	NameRequired    string
	EmailRequired   string
	EmailInvalid    string
	MessageRequired string
	MessageTooShort string
	MessageTooLong  string
}

// FieldMessages returns the messages Validate reports per field.
func FieldMessages() Messages {
	return Messages{
		NameRequired:    MsgNameRequired,
		EmailRequired:   MsgEmailRequired,
		EmailInvalid:    MsgEmailInvalid,
		MessageRequired: MsgMessageRequired,
		MessageTooShort: MsgMessageTooShort,
		MessageTooLong:  MsgMessageTooLong,
	}
}

// ErrInvalidForm is returned by Validate when at least one field is invalid.
var ErrInvalidForm = errors.New("contact form is invalid")

// Form is a contact submission as posted by the browser.
type Form struct {
	Name    string `json:"name"    form:"name"    validate:"required,max=100"`
	Email   string `json:"email"   form:"email"   validate:"required,email,max=254"`
	Subject string `json:"subject" form:"subject" validate:"max=200"`
	Service string `json:"service" form:"service" validate:"max=64"`
	Message string `json:"message" form:"message" validate:"required,min=10,max=5000"`
}

// FieldErrors maps a form field name to its message.
type FieldErrors map[string]string

// Validator checks contact forms.
type Validator struct {
	validate *validator.Validate
}

// NewValidator returns a Validator reporting fields by their json name.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Trim removes surrounding whitespace from every field.
func (f Form) Trim() Form {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Service = strings.TrimSpace(f.Service)
	f.Message = strings.TrimSpace(f.Message)

	return f
}

// Validate checks the trimmed form. On failure it returns ErrInvalidForm and
// one message per invalid field.
func (v *Validator) Validate(f Form) (FieldErrors, error) {
	err := v.validate.Struct(f.Trim())
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	out := make(FieldErrors, len(verrs))

	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}

		out[fe.Field()] = message(fe.Field(), fe.Tag())
	}

	return out, ErrInvalidForm
}

func message(field, tag string) string {
	switch field + "." + tag {
	case "name.required":
		return MsgNameRequired
	case "email.required":
		return MsgEmailRequired
	case "email.email":
		return MsgEmailInvalid
	case "message.required":
		return MsgMessageRequired
	case "message.min":
		return MsgMessageTooShort
	case "message.max":
		return MsgMessageTooLong
	}

	if tag == "max" {
		return MsgTooLong
	}

	return MsgInvalid
}

// MailtoLink returns a mailto: URL to address with the form pre-filled, for
// visitors whose submission failed.
func MailtoLink(address string, f Form) string {
	f = f.Trim()

	subject := f.Subject
	if subject == "" {
		subject = "Website inquiry"
	}

	if f.Service != "" {
		subject += " (" + f.Service + ")"
	}

	var body strings.Builder

	if f.Name != "" {
		body.WriteString("Name: " + f.Name + "\n")
	}

	if f.Email != "" {
		body.WriteString("Email: " + f.Email + "\n")
	}

	if body.Len() > 0 {
		body.WriteString("\n")
	}

	body.WriteString(f.Message)

	q := url.Values{}
	q.Set("subject", subject)
	q.Set("body", body.String())

	// mail clients expect %20, not +
	return "mailto:" + address + "?" + strings.ReplaceAll(q.Encode(), "+", "%20")
}
