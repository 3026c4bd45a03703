package efris

import "strings"

// ResolveCashier devuelve la primera fuente no vacía, en orden.
// Dear: SaleRepEmail del webhook, SalesRepresentative del cliente, cajero por defecto.
func ResolveCashier(sources ...string) string {
	for _, s := range sources {
		if v := strings.TrimSpace(s); v != "" {
			return v
		}
	}
	return ""
}
