package valueobjects

import "fmt"

// CloseCode records why a ticket was closed.
type CloseCode string

const (
	CloseCodeFixed           CloseCode = "FIXED"
	CloseCodeUserError       CloseCode = "USER_ERROR"
	CloseCodeVendor          CloseCode = "VENDOR"
	CloseCodeDuplicate       CloseCode = "DUPLICATE"
	CloseCodeCannotReproduce CloseCode = "CANNOT_REPRODUCE"
	CloseCodeOther           CloseCode = "OTHER"
)

var validCloseCodes = map[CloseCode]bool{
	CloseCodeFixed:           true,
	CloseCodeUserError:       true,
	CloseCodeVendor:          true,
	CloseCodeDuplicate:       true,
	CloseCodeCannotReproduce: true,
	CloseCodeOther:           true,
}

func (c CloseCode) String() string {
	return string(c)
}

func (c CloseCode) IsValid() bool {
	return validCloseCodes[c]
}

func NewCloseCode(s string) (CloseCode, error) {
	c := CloseCode(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid close code: %s", s)
	}
	return c, nil
}
