package valueobjects

import "fmt"

type Category string

const (
	CategoryInternetWAN    Category = "INTERNET_WAN"
	CategoryLANWiFi        Category = "LAN_WIFI"
	CategoryPOS            Category = "POS"
	CategoryPrinterBarcode Category = "PRINTER_BARCODE"
	CategoryPCTablet       Category = "PC_TABLET"
	CategoryAccountAccess  Category = "ACCOUNT_ACCESS"
	CategoryAppServer      Category = "APP_SERVER"
	CategoryOther          Category = "OTHER"
)

var validCategories = map[Category]bool{
	CategoryInternetWAN:    true,
	CategoryLANWiFi:        true,
	CategoryPOS:            true,
	CategoryPrinterBarcode: true,
	CategoryPCTablet:       true,
	CategoryAccountAccess:  true,
	CategoryAppServer:      true,
	CategoryOther:          true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
