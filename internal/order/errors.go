package order

import "fmt"

// Error 타입들은 주문 입력 검증 중 발생할 수 있는 에러를 정의합니다
var (
	ErrMissingSymbol     = fmt.Errorf("심볼은 필수 입력값입니다")
	ErrInvalidQuantity   = fmt.Errorf("수량은 양수여야 합니다")
	ErrMissingPrice      = fmt.Errorf("지정가 주문에는 가격이 필요합니다")
	ErrMissingStopParams = fmt.Errorf("스탑 지정가 주문에는 가격과 스탑 가격이 모두 필요합니다")
)

// ValidationError는 주문 검증 에러를 확장한 구조체입니다
// 검증 에러는 네트워크에 도달하기 전에 발생하며 부작용이 없습니다
type ValidationError struct {
	Field string
	Err   error
}

// Error는 error 인터페이스를 구현합니다
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("주문 검증 에러 [필드: %s]: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("주문 검증 에러: %v", e.Err)
}

// Unwrap은 내부 에러를 반환합니다 (errors.Is/As 지원을 위함)
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// newValidationError는 새로운 ValidationError를 생성합니다
func newValidationError(field string, err error) *ValidationError {
	return &ValidationError{
		Field: field,
		Err:   err,
	}
}
