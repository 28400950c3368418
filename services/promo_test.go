package services

import (
	"testing"
	"time"

	"github.com/HazemSabry/KFC-like-Project/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPromo(code, discountType string, value, minimum float64) models.PromoCode {
	return models.PromoCode{
		Code:          code,
		DiscountType:  discountType,
		DiscountValue: value,
		MinimumOrder:  minimum,
		ValidFrom:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:    time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		Active:        true,
	}
}

func TestEvaluatePromo(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		promo        models.PromoCode
		total        float64
		wantErr      error
		wantDiscount float64
		wantFinal    float64
	}{
		{
			name:         "percentage discount",
			promo:        validPromo("WELCOME10", models.DiscountTypePercentage, 10, 0),
			total:        100.00,
			wantDiscount: 10.00,
			wantFinal:    90.00,
		},
		{
			name:         "fixed discount",
			promo:        validPromo("FLAT15", models.DiscountTypeFixed, 15, 0),
			total:        100.00,
			wantDiscount: 15.00,
			wantFinal:    85.00,
		},
		{
			name:    "total below minimum order",
			promo:   validPromo("BIGSPENDER", models.DiscountTypePercentage, 20, 50),
			total:   49.99,
			wantErr: ErrPromoMinimumNotMet,
		},
		{
			name: "expired code",
			promo: models.PromoCode{
				Code:          "EXPIRED",
				DiscountType:  models.DiscountTypePercentage,
				DiscountValue: 10,
				ValidFrom:     time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
				ValidUntil:    time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
				Active:        true,
			},
			total:   100.00,
			wantErr: ErrPromoInvalidOrExpired,
		},
		{
			name: "code not yet valid",
			promo: models.PromoCode{
				Code:          "SOON",
				DiscountType:  models.DiscountTypeFixed,
				DiscountValue: 5,
				ValidFrom:     time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC),
				ValidUntil:    time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC),
				Active:        true,
			},
			total:   100.00,
			wantErr: ErrPromoInvalidOrExpired,
		},
		{
			name: "inactive code",
			promo: func() models.PromoCode {
				p := validPromo("DISABLED", models.DiscountTypeFixed, 5, 0)
				p.Active = false
				return p
			}(),
			total:   100.00,
			wantErr: ErrPromoInvalidOrExpired,
		},
		{
			name:         "fixed discount exceeding total is not clamped",
			promo:        validPromo("FLAT50", models.DiscountTypeFixed, 50, 0),
			total:        30.00,
			wantDiscount: 50.00,
			wantFinal:    -20.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := EvaluatePromo(tt.promo, tt.total, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, result.Success)
				assert.NotEmpty(t, result.Message)
				return
			}
			assert.NoError(t, err)
			assert.True(t, result.Success)
			assert.InDelta(t, tt.wantDiscount, result.DiscountAmount, 1e-9)
			assert.InDelta(t, tt.wantFinal, result.FinalAmount, 1e-9)
		})
	}
}

func TestEvaluatePromoDistinguishesFailureClasses(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	promo := validPromo("MIN50", models.DiscountTypePercentage, 10, 50)

	_, err := EvaluatePromo(promo, 20.00, now)
	assert.ErrorIs(t, err, ErrPromoMinimumNotMet)
	assert.NotErrorIs(t, err, ErrPromoInvalidOrExpired)
}

func TestApplyPromoLooksUpStoredCode(t *testing.T) {
	db := newTestDB(t, &models.PromoCode{})
	promo := validPromo("WELCOME10", models.DiscountTypePercentage, 10, 0)
	require.NoError(t, db.Create(&promo).Error)

	result, err := ApplyPromo(db, "WELCOME10", 100.00)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.InDelta(t, 10.00, result.DiscountAmount, 1e-9)
	assert.InDelta(t, 90.00, result.FinalAmount, 1e-9)
}

func TestApplyPromoUnknownCode(t *testing.T) {
	db := newTestDB(t, &models.PromoCode{})

	result, err := ApplyPromo(db, "NOSUCHCODE", 100.00)
	assert.ErrorIs(t, err, ErrPromoInvalidOrExpired)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
}

func TestEvaluatePromoIsIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	promo := validPromo("WELCOME10", models.DiscountTypePercentage, 10, 0)

	first, err1 := EvaluatePromo(promo, 100.00, now)
	second, err2 := EvaluatePromo(promo, 100.00, now)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, first, second)
}
