package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/assist-by/quickorder/internal/domain"
	"github.com/assist-by/quickorder/internal/notification"
)

// Client는 디스코드 웹훅으로 알림을 전송합니다
type Client struct {
	tradeWebhook string
	errorWebhook string
	httpClient   *http.Client
}

// ClientOption은 클라이언트 생성 옵션을 정의합니다
type ClientOption func(*Client)

// WithTimeout은 HTTP 클라이언트의 타임아웃을 설정합니다
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient는 새로운 디스코드 웹훅 클라이언트를 생성합니다
// 웹훅 URL이 비어 있으면 해당 알림은 조용히 건너뜁니다
func NewClient(tradeWebhook, errorWebhook string, opts ...ClientOption) *Client {
	c := &Client{
		tradeWebhook: tradeWebhook,
		errorWebhook: errorWebhook,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}

	// 옵션 적용
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SendOrderResult는 주문 실행 결과 알림을 전송합니다
func (c *Client) SendOrderResult(result *domain.OrderResult) error {
	if c.tradeWebhook == "" {
		return nil
	}

	embed := NewEmbed().
		SetTitle(fmt.Sprintf("주문 접수: %s", result.Symbol)).
		AddField("주문 ID", strconv.FormatInt(result.OrderID, 10), true).
		AddField("방향", string(result.Side), true).
		AddField("유형", string(result.Type), true).
		AddField("수량", result.OrigQuantity.String(), true).
		AddField("체결 수량", result.ExecutedQuantity.String(), true).
		AddField("상태", result.Status, true).
		SetColor(colorForSide(result.Side)).
		SetFooter("Assist by Quickorder 🤖").
		SetTimestamp(time.Now())

	if result.Price.IsPositive() {
		embed.AddField("가격", result.Price.String(), true)
	}
	if result.StopPrice.IsPositive() {
		embed.AddField("스탑 가격", result.StopPrice.String(), true)
	}

	return c.sendToWebhook(c.tradeWebhook, WebhookMessage{
		Embeds: []Embed{*embed},
	})
}

// SendError는 에러 알림을 전송합니다
func (c *Client) SendError(err error) error {
	if c.errorWebhook == "" {
		return nil
	}

	embed := NewEmbed().
		SetTitle("에러 발생").
		SetDescription(fmt.Sprintf("```%v```", err)).
		SetColor(notification.ColorError).
		SetFooter("Assist by Quickorder 🤖").
		SetTimestamp(time.Now())

	return c.sendToWebhook(c.errorWebhook, WebhookMessage{
		Embeds: []Embed{*embed},
	})
}

// sendToWebhook은 웹훅 URL로 메시지를 전송합니다
func (c *Client) sendToWebhook(webhookURL string, msg WebhookMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("웹훅 메시지 직렬화 실패: %w", err)
	}

	resp, err := c.httpClient.Post(webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("웹훅 전송 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("웹훅 응답 에러: HTTP %d", resp.StatusCode)
	}

	return nil
}

// colorForSide는 주문 방향에 따른 색상을 반환합니다
func colorForSide(side domain.OrderSide) int {
	if side == domain.Sell {
		return notification.ColorError
	}
	return notification.ColorSuccess
}
