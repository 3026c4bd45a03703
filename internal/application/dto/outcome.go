package dto

// Estados de un resultado de procesamiento.
const (
	StatusSubmitted = "submitted"
	StatusRejected  = "rejected"
	StatusFailed    = "failed"
	StatusDuplicate = "duplicate"
	StatusSkipped   = "skipped"
	StatusPartial   = "partial"
)

// Pasos del pipeline (se reportan en el paso que falló).
const (
	StepLoadConfig    = "load_config"
	StepFetchDocument = "fetch_document"
	StepFetchCustomer = "fetch_customer"
	StepTranslate     = "translate"
	StepNormalize     = "normalize"
	StepLink          = "link_credit_note"
	StepBuild         = "build"
	StepValidate      = "validate"
	StepSubmit        = "submit"
	StepUpstreamWrite = "upstream_write"
)

// Outcome resultado de un envío individual a la pasarela.
type Outcome struct {
	Kind          string   `json:"kind"`
	Reference     string   `json:"reference"`
	Status        string   `json:"status"`
	Step          string   `json:"step,omitempty"` // paso que falló
	Message       string   `json:"message,omitempty"`
	GatewayStatus int      `json:"gateway_status,omitempty"`
	GatewayBody   string   `json:"gateway_body,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
}

// Failed indica si el envío no llegó a la pasarela o fue rechazado.
func (o Outcome) Failed() bool {
	return o.Status == StatusFailed || o.Status == StatusRejected
}

// ProcessResult resultado de procesar un evento entrante (puede producir varios envíos).
type ProcessResult struct {
	ClientID   string    `json:"client_id"`
	Platform   string    `json:"platform"`
	DocumentID string    `json:"document_id"`
	Status     string    `json:"status"`
	Step       string    `json:"step,omitempty"`
	Message    string    `json:"message,omitempty"`
	Outcomes   []Outcome `json:"outcomes"`
}
