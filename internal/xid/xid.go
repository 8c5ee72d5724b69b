package xid

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// New returns a prefixed unique record identifier, e.g. "veh-1b4e28ba-...".
func New(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// InvoiceNo derives an invoice number from the given instant. Invoice numbers
// are generated once at transaction creation and never change.
func InvoiceNo(at time.Time) string {
	return "INV-" + base36(at)
}

// TradeVIN builds a VIN for a vehicle taken in trade. The TRADE- prefix keeps
// generated VINs out of the manufacturer VIN space.
func TradeVIN(at time.Time) string {
	return "TRADE-" + base36(at)
}

func base36(at time.Time) string {
	return strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36))
}
