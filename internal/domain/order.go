package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequest는 거래소에 보낼 수 있는 정규화된 주문 요청을 표현합니다
// order.Build를 통해서만 생성되며, 생성 이후에는 수정하지 않습니다
type OrderRequest struct {
	Symbol      string          // 심볼 (예: BTCUSDT)
	Side        OrderSide       // 매수/매도
	Type        OrderType       // 주문 유형 (시장가, 지정가, 스탑 지정가)
	Quantity    decimal.Decimal // 수량
	Price       decimal.Decimal // 지정가 (LIMIT/STOP_LIMIT 주문에만 설정)
	StopPrice   decimal.Decimal // 스탑 가격 (STOP_LIMIT 주문에만 설정)
	TimeInForce string          // 주문 유효 기간 (가격 지정 주문이면 GTC)
}

// OrderResult는 거래소가 접수한 주문의 결과를 표현합니다
type OrderResult struct {
	OrderID          int64           // 주문 ID
	Symbol           string          // 심볼
	Side             OrderSide       // 매수/매도
	Type             OrderType       // 주문 유형
	Status           string          // 주문 상태 (NEW, FILLED 등)
	OrigQuantity     decimal.Decimal // 원래 주문 수량
	ExecutedQuantity decimal.Decimal // 체결된 수량
	AvgPrice         decimal.Decimal // 평균 체결 가격
	Price            decimal.Decimal // 주문 가격 (거래소가 돌려준 경우에만)
	StopPrice        decimal.Decimal // 스탑 가격 (거래소가 돌려준 경우에만)
	CreateTime       time.Time       // 주문 생성 시간
}
