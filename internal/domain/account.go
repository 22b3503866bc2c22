package domain

// Balance는 계정 잔고 정보를 표현합니다
type Balance struct {
	Asset     string  // 자산 심볼 (예: USDT, BTC)
	Available float64 // 사용 가능한 잔고
	Locked    float64 // 주문 등에 잠긴 잔고
}
