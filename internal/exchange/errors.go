package exchange

import "fmt"

// APIError는 거래소가 구조화된 에러 응답으로 반환한 실패를 표현합니다
// 거래소가 요청을 받고 명시적으로 거절했다는 의미이므로
// 전송 계층 실패와는 구분해서 다뤄야 합니다
type APIError struct {
	StatusCode int    // HTTP 상태 코드
	Code       int    // 거래소 에러 코드 (예: -2019)
	Message    string // 거래소 에러 메시지
}

// Error는 error 인터페이스를 구현합니다
func (e *APIError) Error() string {
	return fmt.Sprintf("API 에러(코드: %d): %s", e.Code, e.Message)
}
