package entities

// PayhereCheckout is the signed payload the storefront posts to PayHere to
// start a checkout for a cart.
type PayhereCheckout struct {
	SessionID  string `json:"id"`
	MerchantID string `json:"merchant_id"`
	OrderID    string `json:"order_id"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	Hash       string `json:"hash"`
}
