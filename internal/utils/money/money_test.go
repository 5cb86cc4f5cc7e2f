package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCents(t *testing.T) {
	assert.Equal(t, int64(1010), Cents(decimal.NewFromFloat(10.10)))
	assert.Equal(t, int64(0), Cents(decimal.Zero))
	assert.Equal(t, int64(100), Cents(decimal.NewFromInt(1)))

	// Sub-cent amounts round to the nearest cent.
	assert.Equal(t, int64(1), Cents(decimal.NewFromFloat(0.005)))
}

func TestSumCents_ExactTotals(t *testing.T) {
	// 10.10 + 20.25 must come out as exactly 30.35, with no float drift.
	amounts := []decimal.Decimal{
		decimal.NewFromFloat(10.10),
		decimal.NewFromFloat(20.25),
	}
	assert.True(t, SumCents(amounts).Equal(decimal.NewFromFloat(30.35)))
}

func TestSumCents_ManySmallAmounts(t *testing.T) {
	amounts := make([]decimal.Decimal, 100)
	for i := range amounts {
		amounts[i] = decimal.NewFromFloat(0.10)
	}
	assert.True(t, SumCents(amounts).Equal(decimal.NewFromInt(10)))
}

func TestSumCents_OrderIndependent(t *testing.T) {
	a := []decimal.Decimal{
		decimal.NewFromFloat(0.1),
		decimal.NewFromFloat(0.2),
		decimal.NewFromFloat(0.3),
	}
	b := []decimal.Decimal{a[2], a[0], a[1]}
	assert.True(t, SumCents(a).Equal(SumCents(b)))
}

func TestSumCents_Empty(t *testing.T) {
	assert.True(t, SumCents(nil).IsZero())
}
