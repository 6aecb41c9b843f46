package request

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// CreateOrder is the external payload accepted by the create and update
// endpoints. Field names follow the upstream integration contract.
type CreateOrder struct {
	NumeroPedido string          `validate:"required" json:"numeroPedido"`
	ValorTotal   decimal.Decimal `                    json:"valorTotal"`
	DataCriacao  string          `                    json:"dataCriacao"`
	Items        []OrderItem     `                    json:"items"`
}

type OrderItem struct {
	IdItem         ItemId          `json:"idItem"`
	QuantidadeItem int32           `json:"quantidadeItem"`
	ValorItem      decimal.Decimal `json:"valorItem"`
}

// ItemId accepts either a JSON number or a numeric JSON string.
type ItemId int64

func (i *ItemId) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("failed parsing idItem=%s as number with error=%w", s, err)
		}
		n = int64(f)
	}
	*i = ItemId(n)
	return nil
}
