package mailer

// ReceiptJob is the JSON payload put on the RabbitMQ queue when a donation
// is recorded. The notify worker turns it into a thank-you mail.
type ReceiptJob struct {
	To        string  `json:"to"`
	DonorName string  `json:"donor_name,omitempty"`
	Title     string  `json:"title"`
	Amount    float64 `json:"amount"`
	SupplyID  string  `json:"supply_id"`
}
