package session

import "fmt"

// ConnectionError는 세션 생성 시 연결 확인에 실패했음을 표현합니다
// 이 에러가 반환되면 세션은 생성되지 않았고 주문도 전송되지 않았습니다
type ConnectionError struct {
	Err error
}

// Error는 error 인터페이스를 구현합니다
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("API 연결 실패: %v", e.Err)
}

// Unwrap은 내부 에러를 반환합니다 (errors.Is/As 지원을 위함)
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// OrderRejectedError는 거래소가 주문을 명시적으로 거절했음을 표현합니다
// 주문은 체결되지 않았으며, 같은 주문을 그대로 재전송하면 같은 이유로 거절됩니다
type OrderRejectedError struct {
	Code    int
	Message string
}

// Error는 error 인터페이스를 구현합니다
func (e *OrderRejectedError) Error() string {
	return fmt.Sprintf("주문 거절됨 (코드: %d): %s", e.Code, e.Message)
}

// TransportError는 거래소 응답을 확인하지 못한 전송 계층 실패를 표현합니다
// 주문이 접수되었는지 알 수 없으므로 호출자는 재전송 전에
// 반드시 주문 상태를 먼저 확인해야 합니다
type TransportError struct {
	Err error
}

// Error는 error 인터페이스를 구현합니다
func (e *TransportError) Error() string {
	return fmt.Sprintf("주문 확인 실패 (주문 상태 알 수 없음): %v", e.Err)
}

// Unwrap은 내부 에러를 반환합니다 (errors.Is/As 지원을 위함)
func (e *TransportError) Unwrap() error {
	return e.Err
}
