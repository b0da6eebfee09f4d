package service

import (
	"github.com/eshop-next/internal/models"

	"github.com/shopspring/decimal"
)

// PriceLine 计价行：单价与数量
type PriceLine struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// LineTotal 单行金额，不做舍入
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// CalculateTotal 汇总金额，购物车展示与订单落库共用此函数
func CalculateTotal(lines []PriceLine) models.Money {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(LineTotal(line.UnitPrice, line.Quantity))
	}
	return models.NewMoneyFromDecimal(total)
}
