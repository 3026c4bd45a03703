package entity

import (
	"encoding/json"
	"time"
)

// Estados de un envío a la pasarela.
const (
	SubmissionSubmitted = "submitted" // la pasarela respondió 2xx
	SubmissionRejected  = "rejected"  // la pasarela respondió con error HTTP
	SubmissionFailed    = "failed"    // fallo de transporte
)

// Submission registro de cada llamada a la pasarela (bitácora e idempotencia).
type Submission struct {
	ID            string
	ClientID      string
	Platform      Platform
	Kind          DocumentKind
	Reference     string // instance_invoice_id o goods_code
	Endpoint      string
	Payload       json.RawMessage
	Status        string
	GatewayStatus int
	GatewayBody   string
	Error         string
	CreatedAt     time.Time
}
