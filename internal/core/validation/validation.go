// Package validation implements the per-field format rules shared by the
// user and order APIs. Each rule is a standalone function returning nil or a
// validation-kind domain.Error whose message names the offending value and
// the expected format.
//
// String rules are expressed as custom go-playground/validator tags; numeric
// rules operate on json.Number so the JSON literal's type survives decoding
// (an integer-valued price such as 10 must be rejected even though 10
// converts cleanly to a float).
package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lojaviva/commerce-system/internal/core/domain"
)

var (
	cpfPattern   = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}/\d{2}$`)
	phonePattern = regexp.MustCompile(`^\(\d{2,3}\)\s*\d{4,5}-\d{4}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z]+(?:\s+[a-zA-Z]+)*$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	patterns := map[string]*regexp.Regexp{
		"cpf":       cpfPattern,
		"br_phone":  phonePattern,
		"email_fmt": emailPattern,
		"name_fmt":  namePattern,
	}
	for tag, re := range patterns {
		re := re
		// RegisterValidation only fails on empty tags; these are constants.
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
	}
	return v
}

// UserCPF checks the national id format NNN.NNN.NNN/NN.
func UserCPF(cpf string) error {
	if err := validate.Var(cpf, "required,cpf"); err != nil {
		return domain.NewValidationError(fmt.Sprintf(
			"invalid user CPF: %s - try format: 111.111.111/11", cpf))
	}
	return nil
}

// PhoneNumber checks the format (NN) NNNN-NNNN with optional third area
// digit and optional fifth subscriber digit. The field is optional at the
// transport layer but mandatory here; User passes the empty string through
// and fails it like any other malformed value.
func PhoneNumber(phone string) error {
	if err := validate.Var(phone, "required,br_phone"); err != nil {
		return domain.NewValidationError(fmt.Sprintf(
			"invalid user phone number: %s - try format: (55) 9999-9999 or (55) 99999-9999", phone))
	}
	return nil
}

// Email checks a pragmatic RFC-like e-mail shape.
func Email(email string) error {
	if err := validate.Var(email, "required,email_fmt"); err != nil {
		return domain.NewValidationError(fmt.Sprintf(
			"invalid user e-mail: %s - try format: example@example.com", email))
	}
	return nil
}

// FullName accepts letters separated by single spaces, no leading or
// trailing whitespace.
func FullName(name string) error {
	if err := validate.Var(name, "required,name_fmt"); err != nil {
		return domain.NewValidationError(fmt.Sprintf(
			"invalid user name: %s - try format: John or John Smith", name))
	}
	return nil
}

// UserID checks the order's owning user reference: an integer above zero.
func UserID(id int64) error {
	if id <= 0 {
		return domain.NewValidationError(fmt.Sprintf(
			"invalid user ID: %d - try an integer number higher than zero", id))
	}
	return nil
}

// ItemDescription requires a non-empty description.
func ItemDescription(description string) error {
	if err := validate.Var(description, "required,min=1"); err != nil {
		return domain.NewValidationError(fmt.Sprintf(
			"invalid item description: %s - try a description with at least one character, example: Car", description))
	}
	return nil
}

// ItemQuantity requires an integer JSON literal of zero or more and returns
// the parsed value. A decimal literal fails regardless of its value.
func ItemQuantity(quantity json.Number) (int64, error) {
	err := domain.NewValidationError(fmt.Sprintf(
		"invalid item quantity: %s - try a whole number of zero or more", quantity))
	if isDecimalLiteral(quantity) {
		return 0, err
	}
	n, parseErr := quantity.Int64()
	if parseErr != nil || n < 0 {
		return 0, err
	}
	return n, nil
}

// ItemPrice requires a decimal JSON literal of zero or more and returns the
// parsed value. The literal must carry a fractional part or exponent: the
// type distinction is part of the contract, so 10 fails where 10.0 passes.
func ItemPrice(price json.Number) (float64, error) {
	err := domain.NewValidationError(fmt.Sprintf(
		"invalid item price: %s - try a decimal number of zero or more", price))
	if !isDecimalLiteral(price) {
		return 0, err
	}
	f, parseErr := price.Float64()
	if parseErr != nil || f < 0 {
		return 0, err
	}
	return f, nil
}

// isDecimalLiteral reports whether the raw JSON token was written as a
// floating-point number rather than an integer.
func isDecimalLiteral(n json.Number) bool {
	return strings.ContainsAny(n.String(), ".eE")
}

// User runs every user field rule, failing on the first violation:
// CPF, phone, e-mail, name.
func User(u domain.User) error {
	if err := UserCPF(u.CPF); err != nil {
		return err
	}
	if err := PhoneNumber(u.PhoneNumber); err != nil {
		return err
	}
	if err := Email(u.Email); err != nil {
		return err
	}
	return FullName(u.FullName)
}

// Order runs every order field rule, failing on the first violation:
// user id, description, quantity, price. On success the parsed quantity and
// price are returned so callers never re-interpret the raw literals.
func Order(userID int64, description string, quantity, price json.Number) (int64, float64, error) {
	if err := UserID(userID); err != nil {
		return 0, 0, err
	}
	if err := ItemDescription(description); err != nil {
		return 0, 0, err
	}
	qty, err := ItemQuantity(quantity)
	if err != nil {
		return 0, 0, err
	}
	prc, err := ItemPrice(price)
	if err != nil {
		return 0, 0, err
	}
	return qty, prc, nil
}
