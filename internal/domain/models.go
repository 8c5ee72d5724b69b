package domain

const (
	TxTypeStandard = "standard"
	TxTypeTradeIn  = "tradein"
)

const (
	ConditionNew     = "new"
	ConditionUsed    = "used"
	ConditionTradeIn = "trade-in"
)

// DefaultTradeInCategory is assigned to vehicles taken in trade, which carry
// no category of their own.
const DefaultTradeInCategory = "family"

type Vehicle struct {
	ID        string  `json:"id"`
	VIN       string  `json:"vin"`
	Make      string  `json:"make"`
	Model     string  `json:"model"`
	Year      int     `json:"year"`
	Category  string  `json:"category"`
	Condition string  `json:"condition"`
	Mileage   int     `json:"mileage"`
	PriceUSD  float64 `json:"price_usd"`
	Stock     int     `json:"stock"`
}

type Customer struct {
	ID          string         `json:"id"`
	First       string         `json:"first"`
	Middle      string         `json:"middle,omitempty"`
	Last        string         `json:"last"`
	Address     string         `json:"address"`
	Phone1      string         `json:"phone1"`
	Phone2      string         `json:"phone2,omitempty"`
	License     string         `json:"license"`
	CreditScore int            `json:"credit_score"`
	TxHistory   []HistoryEntry `json:"tx_history"`
}

// HistoryEntry is the compact purchase summary appended to a customer's
// history by the transaction engine. It is never edited directly.
type HistoryEntry struct {
	TxID      string  `json:"tx_id"`
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	AmountUSD float64 `json:"amount_usd"`
}

type TradeIn struct {
	Make               string  `json:"make"`
	Model              string  `json:"model"`
	Year               int     `json:"year"`
	Mileage            int     `json:"mileage"`
	ConditionNote      string  `json:"condition_note,omitempty"`
	EstimatedResaleUSD float64 `json:"estimated_resale_usd"`
}

type Transaction struct {
	ID               string   `json:"id"`
	Type             string   `json:"type"`
	Date             string   `json:"date"`
	CustomerID       string   `json:"customer_id"`
	Salesperson      string   `json:"salesperson"`
	VehicleVIN       string   `json:"vehicle_vin"`
	VehiclePriceUSD  float64  `json:"vehicle_price_usd"`
	TradeIn          *TradeIn `json:"trade_in,omitempty"`
	TradeInValueUSD  float64  `json:"trade_in_value_usd"`
	FinalPurchaseUSD float64  `json:"final_purchase_usd"`
	InvoiceNo        string   `json:"invoice_no"`
}

// TransactionRequest is the purchase input handed to the transaction engine.
// PriceOverrideUSD, when set, replaces the catalog price. Dates are
// YYYY-MM-DD strings; an empty date defaults to today.
type TransactionRequest struct {
	Type             string   `json:"type"`
	Date             string   `json:"date"`
	CustomerID       string   `json:"customer_id"`
	Salesperson      string   `json:"salesperson"`
	VehicleVIN       string   `json:"vehicle_vin"`
	PriceOverrideUSD *float64 `json:"price_override_usd,omitempty"`
	TradeInValueUSD  float64  `json:"trade_in_value_usd"`
	TradeIn          *TradeIn `json:"trade_in,omitempty"`
}

type DiscountRule struct {
	ThresholdUSD float64 `json:"threshold_usd"`
	PerkText     string  `json:"perk_text"`
}

func DefaultDiscountRule() DiscountRule {
	return DiscountRule{
		ThresholdUSD: 50000,
		PerkText:     "Eligible for the monthly car wash discount (purchase over $50k).",
	}
}

type Settings struct {
	DiscountRule DiscountRule `json:"discount_rule"`
}

type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// StoreSnapshot is the serialized form of the whole record store. It is what
// the persistence boundary loads and saves, and what backup export/import
// round-trips.
type StoreSnapshot struct {
	Session      *Session          `json:"session"`
	Vehicles     []Vehicle         `json:"vehicles"`
	Customers    []Customer        `json:"customers"`
	Transactions []Transaction     `json:"transactions"`
	Invoices     map[string]string `json:"invoices"`
	Settings     Settings          `json:"settings"`
}

type CommissionReport struct {
	Username      string  `json:"username"`
	YearMonth     string  `json:"year_month"`
	TotalSalesUSD float64 `json:"total_sales_usd"`
	Rate          float64 `json:"rate"`
	CommissionUSD float64 `json:"commission_usd"`
}

type SalespersonTotal struct {
	Salesperson string  `json:"salesperson"`
	TotalUSD    float64 `json:"total_usd"`
}

type SalesOverview struct {
	GrandTotalUSD float64            `json:"grand_total_usd"`
	BySalesperson []SalespersonTotal `json:"by_salesperson"`
}

type SearchResults struct {
	Vehicles     []Vehicle     `json:"vehicles"`
	Customers    []Customer    `json:"customers"`
	Transactions []Transaction `json:"transactions"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	ExpiresAt   string `json:"expires_at"`
}

type Actor struct {
	Username string
	Role     string
}
