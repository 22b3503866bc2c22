package domain

import "testing"

func TestParseOrderSide(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   OrderSide
		wantOK bool
	}{
		{"대문자 BUY", "BUY", Buy, true},
		{"소문자 sell", "sell", Sell, true},
		{"공백 포함", " buy ", Buy, true},
		{"잘못된 값", "HOLD", "", false},
		{"빈 값", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseOrderSide(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseOrderSide(%q) = (%q, %v), want (%q, %v)",
					tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseOrderType(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   OrderType
		wantOK bool
	}{
		{"시장가", "MARKET", Market, true},
		{"지정가 소문자", "limit", Limit, true},
		{"스탑 지정가", "stop_limit", StopLimit, true},
		{"지원하지 않는 유형", "STOP_MARKET", "", false},
		{"빈 값", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseOrderType(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseOrderType(%q) = (%q, %v), want (%q, %v)",
					tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestOrderTypeRequiresPrice(t *testing.T) {
	if Market.RequiresPrice() {
		t.Error("시장가 주문은 가격이 필요하지 않아야 합니다")
	}
	if !Limit.RequiresPrice() {
		t.Error("지정가 주문은 가격이 필요해야 합니다")
	}
	if !StopLimit.RequiresPrice() {
		t.Error("스탑 지정가 주문은 가격이 필요해야 합니다")
	}
}
