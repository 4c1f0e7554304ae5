package leads

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StoreCountOptions are the selectable chain sizes on the demo form.
var StoreCountOptions = []string{"1-10", "11-50", "51-200", "200+"}

const (
	storeCountFallback = "Not specified"
	messageFallback    = "No additional message"
)

// Demo form field names.
const (
	FieldFullName   = "fullName"
	FieldEmail      = "email"
	FieldCompany    = "company"
	FieldStoreCount = "storeCount"
	FieldMessage    = "message"
)

// DemoRequest is what a visitor enters on the demo form.
type DemoRequest struct {
	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Company    string `json:"company" validate:"required"`
	StoreCount string `json:"storeCount" validate:"omitempty,oneof=1-10 11-50 51-200 200+"`
	Message    string `json:"message" validate:"max=5000"`
}

// Normalize trims every field.
func (d DemoRequest) Normalize() DemoRequest {
	return DemoRequest{
		FullName:   strings.TrimSpace(d.FullName),
		Email:      strings.TrimSpace(d.Email),
		Company:    strings.TrimSpace(d.Company),
		StoreCount: strings.TrimSpace(d.StoreCount),
		Message:    strings.TrimSpace(d.Message),
	}
}

// Validate returns field name -> failed rule for every invalid field, or nil.
// Rules are "required", "email", "oneof" and "max".
func (d DemoRequest) Validate() map[string]string {
	return fieldErrors(validate.Struct(d))
}

// DemoPayload is the wire body for a demo request.
type DemoPayload struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Company    string `json:"company"`
	StoreCount string `json:"storeCount"`
	Message    string `json:"message"`
}

// Payload fills the optional fields with their placeholder text.
func (d DemoRequest) Payload() DemoPayload {
	p := DemoPayload{
		FullName:   d.FullName,
		Email:      d.Email,
		Company:    d.Company,
		StoreCount: d.StoreCount,
		Message:    d.Message,
	}
	if p.StoreCount == "" {
		p.StoreCount = storeCountFallback
	}
	if p.Message == "" {
		p.Message = messageFallback
	}
	return p
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateEmail checks a single address the same way the demo form does.
// Returns "required", "email" or "" when valid.
func ValidateEmail(email string) string {
	err := validate.Var(strings.TrimSpace(email), "required,email")
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return "email"
}

func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[jsonFieldName(fe.StructField())] = fe.Tag()
	}
	return out
}

func jsonFieldName(structField string) string {
	switch structField {
	case "FullName":
		return FieldFullName
	case "Email":
		return FieldEmail
	case "Company":
		return FieldCompany
	case "StoreCount":
		return FieldStoreCount
	case "Message":
		return FieldMessage
	}
	return structField
}
