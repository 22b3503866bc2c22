package exchange

import (
	"context"
	"time"

	"github.com/assist-by/quickorder/internal/domain"
)

// Exchange는 거래소와의 상호작용을 위한 인터페이스입니다.
type Exchange interface {
	// 시간 동기화
	GetServerTime(ctx context.Context) (time.Time, error)
	SyncTime(ctx context.Context) error

	// 계정 데이터 조회
	GetBalance(ctx context.Context) (map[string]domain.Balance, error)

	// 거래 기능
	PlaceOrder(ctx context.Context, order domain.OrderRequest) (*domain.OrderResult, error)
}
