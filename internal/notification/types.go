package notification

import "github.com/assist-by/quickorder/internal/domain"

const (
	ColorSuccess = 0x00FF00 // 녹색
	ColorError   = 0xFF0000 // 빨간색
	ColorInfo    = 0x0000FF // 파란색
)

// Notifier는 알림 전송 인터페이스를 정의합니다
type Notifier interface {
	// SendOrderResult는 주문 실행 결과 알림을 전송합니다
	SendOrderResult(result *domain.OrderResult) error

	// SendError는 에러 알림을 전송합니다
	SendError(err error) error
}
