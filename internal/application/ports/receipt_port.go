package ports

import (
	"context"

	"github.com/jhoicas/dulcibelle-api/internal/domain/entity"
)

// ReceiptGenerator genera el recibo PDF de un pedido.
type ReceiptGenerator interface {
	GenerateOrderReceipt(ctx context.Context, order *entity.Order, product *entity.Product) ([]byte, error)
}

// ReceiptFilename nombre del archivo adjunto/descargado para un pedido.
func ReceiptFilename(order *entity.Order) string {
	return "recibo_" + order.Number + ".pdf"
}
