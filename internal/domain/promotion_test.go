package domain

import (
	"testing"
	"time"
)

func TestPromotionCurrent(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	base := Promotion{
		Title:     "Summer Deal",
		StartDate: now.AddDate(0, 0, -7),
		EndDate:   now.AddDate(0, 0, 7),
		IsActive:  true,
	}

	tests := []struct {
		name   string
		modify func(*Promotion)
		want   bool
	}{
		{"inside the window", func(p *Promotion) {}, true},
		{"inactive", func(p *Promotion) { p.IsActive = false }, false},
		{"not started yet", func(p *Promotion) { p.StartDate = now.AddDate(0, 0, 1) }, false},
		{"already ended", func(p *Promotion) { p.EndDate = now.AddDate(0, 0, -1) }, false},
		{"usage limit reached", func(p *Promotion) { p.UsageLimit = 100; p.UsedCount = 100 }, false},
		{"under usage limit", func(p *Promotion) { p.UsageLimit = 100; p.UsedCount = 99 }, true},
		{"unlimited usage", func(p *Promotion) { p.UsageLimit = 0; p.UsedCount = 5000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.modify(&p)

			if got := p.Current(now); got != tt.want {
				t.Errorf("Current() = %v, want %v", got, tt.want)
			}
		})
	}
}
