package request

import "encoding/json"

// InvoicePayment carries the raw provider payload forwarded to the payment
// gateway. The usecase enriches it with the invoice reference and amount.
type InvoicePayment struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
