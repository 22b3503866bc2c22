package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/assist-by/quickorder/internal/config"
	"github.com/assist-by/quickorder/internal/domain"
	eBinance "github.com/assist-by/quickorder/internal/exchange/binance"
	"github.com/assist-by/quickorder/internal/logger"
	"github.com/assist-by/quickorder/internal/notification"
	"github.com/assist-by/quickorder/internal/notification/discord"
	"github.com/assist-by/quickorder/internal/order"
	"github.com/assist-by/quickorder/internal/session"
)

func main() {
	// 명령줄 플래그 정의
	apiKeyFlag := flag.String("api-key", "", "바이낸스 API 키 (미지정 시 환경변수 사용)")
	apiSecretFlag := flag.String("api-secret", "", "바이낸스 API 시크릿 (미지정 시 환경변수 사용)")
	symbolFlag := flag.String("symbol", "", "거래 심볼 (예: BTCUSDT), 미지정 시 대화형 모드로 실행")
	sideFlag := flag.String("side", "", "주문 방향 (BUY/SELL)")
	typeFlag := flag.String("type", "MARKET", "주문 유형 (MARKET/LIMIT/STOP_LIMIT)")
	quantityFlag := flag.String("quantity", "", "주문 수량")
	priceFlag := flag.String("price", "", "지정가 (LIMIT/STOP_LIMIT 주문에 필요)")
	stopPriceFlag := flag.String("stop-price", "", "스탑 가격 (STOP_LIMIT 주문에 필요)")
	mainnetFlag := flag.Bool("mainnet", false, "메인넷으로 주문 전송 (기본값: 테스트넷)")

	// 플래그 파싱
	flag.Parse()

	// 설정 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 로거 생성 (표준 출력 + 로그 파일)
	log, err := logger.New(logger.Config{
		Level: cfg.App.LogLevel,
		File:  cfg.App.LogFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "로거 생성 실패: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// API 키 선택 (플래그가 환경변수보다 우선)
	apiKey := cfg.Binance.APIKey
	secretKey := cfg.Binance.SecretKey
	if *apiKeyFlag != "" {
		apiKey = *apiKeyFlag
	}
	if *apiSecretFlag != "" {
		secretKey = *apiSecretFlag
	}

	useTestnet := cfg.Binance.UseTestnet
	if *mainnetFlag {
		useTestnet = false
	}
	if useTestnet {
		log.Info("테스트넷 모드로 실행 중입니다. 실제 자산은 사용되지 않습니다.")
	} else {
		log.Warn("메인넷 모드로 실행 중입니다. 실제 자산이 사용됩니다!")
	}

	// 디스코드 알림 클라이언트 생성 (웹훅 미설정 시 비활성)
	notifier := discord.NewClient(cfg.Discord.TradeWebhook, cfg.Discord.ErrorWebhook)

	app := &app{
		cfg:        cfg,
		log:        log,
		notifier:   notifier,
		apiKey:     apiKey,
		secretKey:  secretKey,
		useTestnet: useTestnet,
	}

	ctx := context.Background()

	// 심볼 플래그가 있으면 단발 실행, 없으면 대화형 모드
	if *symbolFlag != "" {
		app.runOnce(ctx, order.Params{
			Symbol:    *symbolFlag,
			Quantity:  *quantityFlag,
			Price:     *priceFlag,
			StopPrice: *stopPriceFlag,
		}, *sideFlag, *typeFlag)
		return
	}

	app.runInteractive(ctx)
}

type app struct {
	cfg        *config.Config
	log        *zap.Logger
	notifier   notification.Notifier
	apiKey     string
	secretKey  string
	useTestnet bool
}

// openSession은 거래소 클라이언트를 만들고 연결이 검증된 세션을 엽니다
func (a *app) openSession(ctx context.Context) (*session.Session, error) {
	if a.apiKey == "" || a.secretKey == "" {
		return nil, fmt.Errorf("API 키와 시크릿이 필요합니다 (--api-key/--api-secret 플래그 또는 환경변수)")
	}

	client := eBinance.NewClient(
		a.apiKey,
		a.secretKey,
		eBinance.WithTimeout(a.cfg.App.RequestTimeout),
		eBinance.WithTestnet(a.useTestnet),
	)

	return session.Open(ctx, client, session.WithLogger(a.log))
}

// runOnce는 플래그로 받은 주문 하나를 전송하고 종료합니다
// 성공이면 요약을 출력하고, 실패면 에러 메시지 한 줄과 함께 종료 코드 1을 반환합니다
func (a *app) runOnce(ctx context.Context, p order.Params, sideInput, typeInput string) {
	side, ok := domain.ParseOrderSide(sideInput)
	if !ok {
		a.fail(fmt.Errorf("주문 방향은 BUY 또는 SELL이어야 합니다: %q", sideInput))
	}

	orderType, ok := domain.ParseOrderType(typeInput)
	if !ok {
		a.fail(fmt.Errorf("주문 유형은 MARKET, LIMIT, STOP_LIMIT 중 하나여야 합니다: %q", typeInput))
	}

	p.Side = side
	p.Type = orderType

	// 검증은 네트워크 연결 전에 수행합니다
	// 잘못된 입력은 거래소에 도달하지 않습니다
	req, err := order.Build(p)
	if err != nil {
		a.fail(err)
	}

	sess, err := a.openSession(ctx)
	if err != nil {
		a.fail(err)
	}

	result, err := sess.Submit(ctx, req)
	if err != nil {
		a.notifyError(err)
		a.fail(err)
	}

	printResult(result)
	a.notifyResult(result)
}

// runInteractive는 대화형 입력 폼을 실행합니다
// 세션은 한 번만 열고 여러 주문에 재사용합니다
func (a *app) runInteractive(ctx context.Context) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("바이낸스 선물 주문 도구 (대화형 모드)")
	fmt.Println("값을 입력하지 않으면 괄호 안의 기본값이 사용됩니다.")
	fmt.Println()

	// 자격 증명이 없으면 폼에서 입력받습니다
	if a.apiKey == "" {
		a.apiKey = prompt(reader, "API 키", "")
	}
	if a.secretKey == "" {
		a.secretKey = prompt(reader, "API 시크릿", "")
	}

	sess, err := a.openSession(ctx)
	if err != nil {
		a.fail(err)
	}

	for {
		p := order.Params{
			Symbol:   prompt(reader, "심볼", "BTCUSDT"),
			Quantity: prompt(reader, "수량", "0.001"),
		}

		side, ok := domain.ParseOrderSide(prompt(reader, "방향 (BUY/SELL)", "BUY"))
		if !ok {
			fmt.Println("❌ 방향은 BUY 또는 SELL이어야 합니다")
			continue
		}

		orderType, ok := domain.ParseOrderType(prompt(reader, "유형 (MARKET/LIMIT/STOP_LIMIT)", "MARKET"))
		if !ok {
			fmt.Println("❌ 유형은 MARKET, LIMIT, STOP_LIMIT 중 하나여야 합니다")
			continue
		}

		p.Side = side
		p.Type = orderType

		// 가격 입력은 주문 유형에 필요한 것만 받습니다
		if orderType.RequiresPrice() {
			p.Price = prompt(reader, "가격", "")
		}
		if orderType == domain.StopLimit {
			p.StopPrice = prompt(reader, "스탑 가격", "")
		}

		req, err := order.Build(p)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			continue
		}

		confirm := prompt(reader, fmt.Sprintf("%s %s %s %s 주문을 전송할까요? (y/N)",
			req.Symbol, req.Side, req.Type, req.Quantity), "N")
		if !strings.EqualFold(confirm, "y") {
			fmt.Println("주문을 취소했습니다.")
			continue
		}

		result, err := sess.Submit(ctx, req)
		if err != nil {
			fmt.Printf("❌ 주문 실패: %v\n", err)
			a.notifyError(err)
		} else {
			printResult(result)
			a.notifyResult(result)
		}

		again := prompt(reader, "다른 주문을 전송하시겠습니까? (y/N)", "N")
		if !strings.EqualFold(again, "y") {
			fmt.Println("프로그램을 종료합니다.")
			return
		}
		fmt.Println()
	}
}

// fail은 사용자에게 에러 메시지 한 줄을 보여주고 실패 코드로 종료합니다
func (a *app) fail(err error) {
	a.log.Error("주문 실패", zap.Error(err))
	fmt.Fprintf(os.Stderr, "\n❌ 주문 실패: %v\n", err)
	os.Exit(1)
}

// notifyResult는 주문 결과를 디스코드로 알립니다 (실패는 로그만 남김)
func (a *app) notifyResult(result *domain.OrderResult) {
	if err := a.notifier.SendOrderResult(result); err != nil {
		a.log.Warn("주문 알림 전송 실패", zap.Error(err))
	}
}

// notifyError는 에러를 디스코드로 알립니다 (실패는 로그만 남김)
func (a *app) notifyError(orderErr error) {
	if err := a.notifier.SendError(orderErr); err != nil {
		a.log.Warn("에러 알림 전송 실패", zap.Error(err))
	}
}

// prompt는 기본값이 있는 입력 프롬프트를 표시하고 한 줄을 읽습니다
func prompt(reader *bufio.Reader, label, defaultValue string) string {
	if defaultValue != "" {
		fmt.Printf("%s (%s): ", label, defaultValue)
	} else {
		fmt.Printf("%s: ", label)
	}

	line, err := reader.ReadString('\n')
	if err != nil {
		return defaultValue
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue
	}
	return line
}

// printResult는 접수된 주문의 요약을 출력합니다
func printResult(result *domain.OrderResult) {
	fmt.Println()
	fmt.Println("✅ 주문이 성공적으로 접수되었습니다")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("주문 ID:    %d\n", result.OrderID)
	fmt.Printf("심볼:       %s\n", result.Symbol)
	fmt.Printf("방향:       %s\n", result.Side)
	fmt.Printf("유형:       %s\n", result.Type)
	fmt.Printf("수량:       %s\n", result.OrigQuantity)

	if result.Price.IsPositive() {
		fmt.Printf("가격:       %s\n", result.Price)
	}
	if result.StopPrice.IsPositive() {
		fmt.Printf("스탑 가격:  %s\n", result.StopPrice)
	}
	if result.AvgPrice.IsPositive() {
		fmt.Printf("체결 평균가: %s\n", result.AvgPrice)
	}

	fmt.Printf("상태:       %s\n", result.Status)
	fmt.Printf("체결 수량:  %s\n", result.ExecutedQuantity)
	fmt.Println(strings.Repeat("=", 40))
}
