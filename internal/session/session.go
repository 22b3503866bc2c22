package session

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/assist-by/quickorder/internal/domain"
	"github.com/assist-by/quickorder/internal/exchange"
)

// Session은 검증된 거래소 연결 컨텍스트를 표현합니다
// Open이 성공적으로 반환한 세션만 주문을 전송할 수 있습니다
// 생성 이후 어떤 필드도 변경되지 않으므로 여러 고루틴이
// 동시에 Submit을 호출해도 안전합니다
type Session struct {
	exchange exchange.Exchange
	logger   *zap.Logger
	verified bool
}

// Option은 세션 생성 옵션을 정의합니다
type Option func(*Session)

// WithLogger는 세션이 사용할 로거를 설정합니다
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// Open은 거래소 연결을 검증한 뒤 사용 가능한 세션을 반환합니다
// 주문을 받기 전에 읽기 전용 잔고 조회(카나리 요청)로 자격 증명과
// 연결 상태를 확인하며, 이 확인이 실패하면 세션을 만들지 않고
// ConnectionError를 반환합니다
func Open(ctx context.Context, ex exchange.Exchange, opts ...Option) (*Session, error) {
	s := &Session{
		exchange: ex,
		logger:   zap.NewNop(),
	}

	// 옵션 적용
	for _, opt := range opts {
		opt(s)
	}

	// 서명 요청의 타임스탬프를 위해 서버 시간을 먼저 동기화합니다
	if err := s.exchange.SyncTime(ctx); err != nil {
		return nil, &ConnectionError{Err: err}
	}

	balances, err := s.exchange.GetBalance(ctx)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	// 잔고 조회가 성공했으면 연결은 확인된 것입니다
	// USDT 사용 가능 잔고는 확인용 로그로만 사용합니다
	if usdt, ok := balances["USDT"]; ok {
		s.logger.Info("계정 잔고 확인 완료",
			zap.Float64("availableUSDT", usdt.Available))
	} else {
		s.logger.Info("계정 잔고 확인 완료 (USDT 잔고 없음)")
	}

	s.verified = true
	return s, nil
}

// Verified는 세션의 시작 검증이 성공했는지 반환합니다
func (s *Session) Verified() bool {
	return s.verified
}

// Submit은 빌더가 조립한 주문 요청을 거래소에 전송합니다
// 호출당 정확히 한 번만 전송을 시도하며 내부에서 재시도하지 않습니다
// (재시도는 중복 체결 위험이 있으므로 호출자의 정책에 맡깁니다)
func (s *Session) Submit(ctx context.Context, order domain.OrderRequest) (*domain.OrderResult, error) {
	s.logger.Info("주문 전송",
		zap.String("symbol", order.Symbol),
		zap.String("side", string(order.Side)),
		zap.String("type", string(order.Type)),
		zap.String("quantity", order.Quantity.String()),
	)

	result, err := s.exchange.PlaceOrder(ctx, order)
	if err != nil {
		var apiErr *exchange.APIError
		if errors.As(err, &apiErr) {
			// 거래소가 명시적으로 거절한 주문: 체결되지 않았음이 확실합니다
			s.logger.Error("주문 거절",
				zap.String("symbol", order.Symbol),
				zap.Int("code", apiErr.Code),
				zap.String("message", apiErr.Message))
			return nil, &OrderRejectedError{
				Code:    apiErr.Code,
				Message: apiErr.Message,
			}
		}

		// 응답을 확인하지 못한 실패: 주문 상태를 알 수 없습니다
		s.logger.Error("주문 응답 수신 실패",
			zap.String("symbol", order.Symbol),
			zap.Error(err))
		return nil, &TransportError{Err: err}
	}

	s.logger.Info("주문 접수",
		zap.Int64("orderId", result.OrderID),
		zap.String("symbol", result.Symbol),
		zap.String("status", result.Status),
		zap.String("executedQty", result.ExecutedQuantity.String()),
	)

	return result, nil
}
