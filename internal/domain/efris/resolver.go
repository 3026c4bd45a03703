// Package efris contiene las reglas de normalización que convierten documentos de cualquier
// plataforma en el payload canónico de la pasarela EFRIS: resolución del comprador,
// normalización de líneas, enlace de notas crédito y construcción del payload.
// Todas las funciones son puras.
package efris

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
	"github.com/paymojammn/taxmoja-app/pkg/efris"
)

// TaxNumberField campo canónico de TIN que se consulta antes del campo configurado.
const TaxNumberField = "TaxNumber"

// ResolveBuyer deriva el perfil fiscal del comprador a partir del registro de cliente.
//   - TIN: "TaxNumber" si no está vacío; si no, el campo configurado; si no, "".
//   - Exportación: solo el campo configurado.
//   - Tipo: el campo configurado, sin distinguir mayúsculas; desconocido o ausente es B2C.
func ResolveBuyer(customer entity.CustomerRecord, fields entity.FieldMapping) entity.BuyerProfile {
	return entity.BuyerProfile{
		TaxPin:    resolveTaxPin(customer, fields.TaxPin),
		BuyerType: BuyerTypeCode(customer.String(fields.BuyerType)),
		IsExport:  customer.Bool(fields.IsExport),
	}
}

func resolveTaxPin(customer entity.CustomerRecord, configured string) string {
	if pin := customer.String(TaxNumberField); pin != "" {
		return pin
	}
	return customer.String(configured)
}

// BuyerTypeCode traduce B2B/B2C/B2F/B2G al código EFRIS. B2G comparte código con B2B.
func BuyerTypeCode(raw string) string {
	// cases.Caser guarda estado: uno por llamada
	switch cases.Fold().String(strings.TrimSpace(raw)) {
	case "b2b", "b2g":
		return efris.BuyerTypeBusiness
	case "b2f":
		return efris.BuyerTypeForeign
	default: // b2c y cualquier valor desconocido
		return efris.BuyerTypeConsumer
	}
}

// CheckBuyer devuelve una advertencia si el comprador es empresa y no tiene TIN.
func CheckBuyer(buyer entity.BuyerProfile) *domain.ValidationWarning {
	if buyer.BuyerType == efris.BuyerTypeBusiness && buyer.TaxPin == "" {
		return &domain.ValidationWarning{
			Code:    domain.WarnBusinessWithoutTaxPin,
			Message: "el comprador es una empresa y no tiene TIN",
		}
	}
	return nil
}
