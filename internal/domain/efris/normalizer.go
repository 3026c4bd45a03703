package efris

import (
	"github.com/paymojammn/taxmoja-app/internal/domain"
	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
)

// Normalized resultado de normalizar una lista de documentos padre.
type Normalized struct {
	Goods   []entity.GoodsLine
	Parent  entity.ParentDocument
	Ignored int // documentos padre posteriores al primero que no se procesaron
}

// NormalizeLines convierte líneas crudas en líneas canónicas conservando el orden.
// Cantidades y precios se envían en valor absoluto; el signo lo da el tipo de documento.
func NormalizeLines(raw []entity.RawLine) []entity.GoodsLine {
	goods := make([]entity.GoodsLine, 0, len(raw))
	for _, l := range raw {
		goods = append(goods, entity.GoodsLine{
			GoodCode:    l.Code,
			Quantity:    l.Quantity.Abs(),
			UnitPrice:   l.UnitPrice.Abs(),
			TaxCategory: l.TaxCategory,
		})
	}
	return goods
}

// NormalizeFirst procesa solo el primer documento padre y lo devuelve con sus líneas.
// Los siguientes se ignoran y se cuentan en Ignored para que el llamador lo registre.
func NormalizeFirst(parents []entity.ParentDocument) (Normalized, error) {
	if len(parents) == 0 {
		return Normalized{}, domain.NewMissingField("documents")
	}
	first := parents[0]
	return Normalized{
		Goods:   NormalizeLines(first.Lines),
		Parent:  first,
		Ignored: len(parents) - 1,
	}, nil
}
