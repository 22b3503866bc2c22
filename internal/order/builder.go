package order

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/assist-by/quickorder/internal/domain"
)

// Params는 검증 전의 느슨한 주문 입력값을 담습니다
// 수량과 가격은 CLI 플래그나 입력 폼에서 받은 문자열 그대로이며
// 빈 문자열은 미입력을 의미합니다
type Params struct {
	Symbol    string
	Side      domain.OrderSide
	Type      domain.OrderType
	Quantity  string
	Price     string
	StopPrice string
}

// Build는 입력값을 검증하고 거래소에 보낼 수 있는 주문 요청을 조립합니다
// 네트워크 I/O가 없는 순수 함수이며, 같은 입력에 대해 항상 같은 결과를 반환합니다
func Build(p Params) (domain.OrderRequest, error) {
	symbol := strings.ToUpper(strings.TrimSpace(p.Symbol))
	if symbol == "" {
		return domain.OrderRequest{}, newValidationError("symbol", ErrMissingSymbol)
	}

	quantity, err := parsePositive(p.Quantity)
	if err != nil {
		return domain.OrderRequest{}, newValidationError("quantity", ErrInvalidQuantity)
	}

	req := domain.OrderRequest{
		Symbol:   symbol,
		Side:     p.Side,
		Type:     p.Type,
		Quantity: quantity,
	}

	switch p.Type {
	case domain.Limit:
		price, err := parsePositive(p.Price)
		if err != nil {
			return domain.OrderRequest{}, newValidationError("price", ErrMissingPrice)
		}
		req.Price = price
		req.TimeInForce = domain.TimeInForceGTC

	case domain.StopLimit:
		price, err := parsePositive(p.Price)
		if err != nil {
			return domain.OrderRequest{}, newValidationError("price", ErrMissingStopParams)
		}
		stopPrice, err := parsePositive(p.StopPrice)
		if err != nil {
			return domain.OrderRequest{}, newValidationError("stopPrice", ErrMissingStopParams)
		}
		req.Price = price
		req.StopPrice = stopPrice
		req.TimeInForce = domain.TimeInForceGTC
	}
	// 시장가 주문은 입력된 가격/스탑 가격을 에러 없이 무시합니다

	return req, nil
}

// parsePositive는 문자열을 양수 decimal로 변환합니다
// 빈 문자열, 숫자가 아닌 값, 0 이하의 값은 모두 에러입니다
func parsePositive(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("값이 비어 있습니다")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("숫자가 아닙니다: %s", s)
	}

	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("양수가 아닙니다: %s", s)
	}

	return d, nil
}
