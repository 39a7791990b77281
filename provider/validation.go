package provider

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CheckoutInput is the raw checkout payload accepted at the HTTP boundary.
// Field declaration order decides which invalid field is reported first.
type CheckoutInput struct {
	Provider    string         `json:"provider" validate:"required"`
	Amount      float64        `json:"amount" validate:"required,gt=0"`
	Currency    string         `json:"currency" validate:"required,currency_code"`
	CustomerID  string         `json:"customerId" validate:"required"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Description string         `json:"description,omitempty"`
}

// ParseCheckoutInput decodes and validates a raw checkout body. All failures
// come back as *ValidationError naming the offending field where one is
// known.
func ParseCheckoutInput(raw []byte, validate *validator.Validate) (*CheckoutInput, error) {
	var input CheckoutInput
	if err := json.Unmarshal(raw, &input); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, &ValidationError{
				Field:   typeErr.Field,
				Message: "must be of type " + typeErr.Type.String(),
			}
		}
		return nil, &ValidationError{Message: "request body must be a JSON object"}
	}

	input.Provider = strings.TrimSpace(input.Provider)
	input.Currency = strings.TrimSpace(input.Currency)
	input.CustomerID = strings.TrimSpace(input.CustomerID)

	if err := validate.Struct(&input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return nil, &ValidationError{
				Field:   first.Field(),
				Message: validationMessage(first),
			}
		}
		return nil, &ValidationError{Message: "invalid checkout request"}
	}

	input.Currency = strings.ToUpper(input.Currency)

	return &input, nil
}

// ToCheckoutRequest converts validated input into the request handed to a
// provider.
func (in *CheckoutInput) ToCheckoutRequest() CheckoutRequest {
	return CheckoutRequest{
		Amount:      in.Amount,
		Currency:    in.Currency,
		CustomerID:  in.CustomerID,
		Description: in.Description,
		Metadata:    in.Metadata,
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required and must not be empty"
	case "gt":
		return "must be greater than " + fe.Param()
	case "currency_code":
		return "must be a currency code of at least three letters"
	default:
		return "is invalid"
	}
}
