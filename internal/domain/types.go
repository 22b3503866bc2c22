package domain

import "strings"

// OrderSide는 주문 방향을 정의합니다
type OrderSide string

const (
	Buy  OrderSide = "BUY"
	Sell OrderSide = "SELL"
)

// ParseOrderSide는 사용자 입력 문자열을 OrderSide로 변환합니다
func ParseOrderSide(s string) (OrderSide, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return Buy, true
	case "SELL":
		return Sell, true
	default:
		return "", false
	}
}

// OrderType은 주문 유형을 정의합니다
type OrderType string

const (
	Market    OrderType = "MARKET"
	Limit     OrderType = "LIMIT"
	StopLimit OrderType = "STOP_LIMIT"
)

// ParseOrderType은 사용자 입력 문자열을 OrderType으로 변환합니다
func ParseOrderType(s string) (OrderType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MARKET":
		return Market, true
	case "LIMIT":
		return Limit, true
	case "STOP_LIMIT":
		return StopLimit, true
	default:
		return "", false
	}
}

// RequiresPrice는 해당 주문 유형이 지정가를 필요로 하는지 반환합니다
func (t OrderType) RequiresPrice() bool {
	return t == Limit || t == StopLimit
}

// TimeInForceGTC는 취소 전까지 유효한 주문 유효 기간입니다
// 이 시스템은 가격이 지정된 주문에만 GTC를 설정합니다
const TimeInForceGTC = "GTC"
