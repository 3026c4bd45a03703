package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// BuyerProfile perfil fiscal del comprador, derivado en cada envío.
type BuyerProfile struct {
	TaxPin    string
	BuyerType string // efris.BuyerType*
	IsExport  bool
}

// CustomerRecord registro de cliente/contacto tal como lo devuelve la plataforma.
type CustomerRecord map[string]any

// String devuelve el valor del campo como texto; "" si no existe o es nulo.
func (r CustomerRecord) String(field string) string {
	if r == nil || field == "" {
		return ""
	}
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// Bool interpreta el campo como bandera (true, "true", "yes", "1"...).
func (r CustomerRecord) Bool(field string) bool {
	if r == nil || field == "" {
		return false
	}
	switch t := r[field].(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "y", "1":
			return true
		}
	}
	return false
}
