package order

import "yumyum/internal/pkg/errs"

// Address is the delivery destination captured at checkout. FullName, Phone
// and Line1 are required for delivery orders; Area and Note are optional.
type Address struct {
	FullName string
	Phone    string
	Line1    string
	Area     string
	Note     string
}

// Validate checks the required fields. Blank-after-trim values are the
// caller's responsibility; the HTTP adapter trims before constructing.
func (a Address) Validate() error {
	if a.FullName == "" {
		return errs.NewValueIsRequiredError("address fullName")
	}
	if a.Phone == "" {
		return errs.NewValueIsRequiredError("address phone")
	}
	if a.Line1 == "" {
		return errs.NewValueIsRequiredError("address line1")
	}
	return nil
}
