package dto

import "fmt"

// SweepItem resultado de un elemento de un barrido masivo.
type SweepItem struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
}

// SweepSummary resumen de un barrido masivo (continúa ante fallos por elemento).
type SweepSummary struct {
	ClientID  string      `json:"client_id"`
	Operation string      `json:"operation"`
	Total     int         `json:"total"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
	Items     []SweepItem `json:"items"`
	Summary   string      `json:"summary"`
}

// Add registra el resultado de un elemento.
func (s *SweepSummary) Add(item SweepItem, ok bool) {
	s.Total++
	if ok {
		s.Succeeded++
	} else {
		s.Failed++
	}
	s.Items = append(s.Items, item)
}

// Finish calcula el texto de resumen.
func (s *SweepSummary) Finish() *SweepSummary {
	s.Summary = fmt.Sprintf("%s: %d de %d elementos procesados, %d con error", s.Operation, s.Succeeded, s.Total, s.Failed)
	return s
}
