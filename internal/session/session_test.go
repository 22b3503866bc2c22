package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assist-by/quickorder/internal/domain"
	"github.com/assist-by/quickorder/internal/exchange"
)

// fakeExchange는 테스트용 거래소 구현입니다
type fakeExchange struct {
	syncErr      error
	balances     map[string]domain.Balance
	balanceErr   error
	placeResult  *domain.OrderResult
	placeErr     error
	placeCalls   int
	balanceCalls int
	lastOrder    domain.OrderRequest
}

func (f *fakeExchange) GetServerTime(ctx context.Context) (time.Time, error) {
	return time.Now(), nil
}

func (f *fakeExchange) SyncTime(ctx context.Context) error {
	return f.syncErr
}

func (f *fakeExchange) GetBalance(ctx context.Context) (map[string]domain.Balance, error) {
	f.balanceCalls++
	if f.balanceErr != nil {
		return nil, f.balanceErr
	}
	return f.balances, nil
}

func (f *fakeExchange) PlaceOrder(ctx context.Context, order domain.OrderRequest) (*domain.OrderResult, error) {
	f.placeCalls++
	f.lastOrder = order
	if f.placeErr != nil {
		return nil, f.placeErr
	}
	return f.placeResult, nil
}

func TestOpen(t *testing.T) {
	t.Run("잔고 조회 성공 시 검증된 세션 반환", func(t *testing.T) {
		ex := &fakeExchange{
			balances: map[string]domain.Balance{
				"USDT": {Asset: "USDT", Available: 1000.5},
			},
		}

		sess, err := Open(context.Background(), ex)
		require.NoError(t, err)
		require.NotNil(t, sess)
		assert.True(t, sess.Verified())
		assert.Equal(t, 1, ex.balanceCalls)
	})

	t.Run("USDT 잔고가 없어도 구조화된 응답이면 성공", func(t *testing.T) {
		ex := &fakeExchange{
			balances: map[string]domain.Balance{
				"BTC": {Asset: "BTC", Available: 0.5},
			},
		}

		sess, err := Open(context.Background(), ex)
		require.NoError(t, err)
		assert.True(t, sess.Verified())
	})

	t.Run("잔고 조회 실패 시 ConnectionError", func(t *testing.T) {
		cause := errors.New("연결 거부됨")
		ex := &fakeExchange{balanceErr: cause}

		sess, err := Open(context.Background(), ex)
		require.Error(t, err)
		assert.Nil(t, sess)

		var connErr *ConnectionError
		require.ErrorAs(t, err, &connErr)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("시간 동기화 실패 시 ConnectionError", func(t *testing.T) {
		cause := errors.New("타임아웃")
		ex := &fakeExchange{syncErr: cause}

		sess, err := Open(context.Background(), ex)
		require.Error(t, err)
		assert.Nil(t, sess)

		var connErr *ConnectionError
		require.ErrorAs(t, err, &connErr)
		// 잔고 조회까지 가지 않습니다
		assert.Equal(t, 0, ex.balanceCalls)
	})
}

func TestSubmit(t *testing.T) {
	newVerifiedSession := func(t *testing.T, ex *fakeExchange) *Session {
		t.Helper()
		if ex.balances == nil {
			ex.balances = map[string]domain.Balance{
				"USDT": {Asset: "USDT", Available: 1000},
			}
		}
		sess, err := Open(context.Background(), ex)
		require.NoError(t, err)
		return sess
	}

	marketOrder := domain.OrderRequest{
		Symbol:   "BTCUSDT",
		Side:     domain.Buy,
		Type:     domain.Market,
		Quantity: decimal.RequireFromString("0.01"),
	}

	t.Run("주문 접수 성공 시 결과 반환", func(t *testing.T) {
		ex := &fakeExchange{
			placeResult: &domain.OrderResult{
				OrderID:          12345,
				Symbol:           "BTCUSDT",
				Side:             domain.Buy,
				Type:             domain.Market,
				Status:           "FILLED",
				OrigQuantity:     decimal.RequireFromString("0.01"),
				ExecutedQuantity: decimal.RequireFromString("0.01"),
			},
		}
		sess := newVerifiedSession(t, ex)

		result, err := sess.Submit(context.Background(), marketOrder)
		require.NoError(t, err)
		assert.Equal(t, int64(12345), result.OrderID)
		assert.Equal(t, "FILLED", result.Status)

		// 요청이 변형 없이 전달됩니다
		assert.Equal(t, marketOrder, ex.lastOrder)
	})

	t.Run("거래소 거절 시 OrderRejectedError", func(t *testing.T) {
		ex := &fakeExchange{
			placeErr: &exchange.APIError{
				StatusCode: 400,
				Code:       -2019,
				Message:    "Margin is insufficient.",
			},
		}
		sess := newVerifiedSession(t, ex)

		result, err := sess.Submit(context.Background(), marketOrder)
		require.Error(t, err)
		assert.Nil(t, result)

		var rejErr *OrderRejectedError
		require.ErrorAs(t, err, &rejErr)
		assert.Equal(t, -2019, rejErr.Code)
		assert.Equal(t, "Margin is insufficient.", rejErr.Message)
	})

	t.Run("전송 실패 시 TransportError", func(t *testing.T) {
		cause := errors.New("connection reset by peer")
		ex := &fakeExchange{placeErr: cause}
		sess := newVerifiedSession(t, ex)

		result, err := sess.Submit(context.Background(), marketOrder)
		require.Error(t, err)
		assert.Nil(t, result)

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.ErrorIs(t, err, cause)

		// 거절 에러로 오분류되지 않습니다
		var rejErr *OrderRejectedError
		assert.False(t, errors.As(err, &rejErr))
	})

	t.Run("실패해도 호출당 전송 시도는 한 번", func(t *testing.T) {
		ex := &fakeExchange{placeErr: errors.New("타임아웃")}
		sess := newVerifiedSession(t, ex)

		_, err := sess.Submit(context.Background(), marketOrder)
		require.Error(t, err)
		assert.Equal(t, 1, ex.placeCalls)
	})

	t.Run("세션은 여러 주문에 재사용 가능", func(t *testing.T) {
		ex := &fakeExchange{
			placeResult: &domain.OrderResult{OrderID: 1, Status: "NEW"},
		}
		sess := newVerifiedSession(t, ex)

		for i := 0; i < 3; i++ {
			_, err := sess.Submit(context.Background(), marketOrder)
			require.NoError(t, err)
		}
		assert.Equal(t, 3, ex.placeCalls)
	})
}
