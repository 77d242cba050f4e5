package kernel_test

import (
	"math"
	"testing"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromCents(t *testing.T) {
	t.Run("should create money from non-negative cents", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(160000)

		require.NoError(t, err)
		assert.Equal(t, int64(160000), m.Cents())
		assert.Equal(t, "1600.00", m.String())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.False(t, m.IsPositive())
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("should reject negative cents", func(t *testing.T) {
		_, err := kernel.NewMoneyFromCents(-1)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNegative, err)
	})
}

func TestNewMoneyFromFloat(t *testing.T) {
	t.Run("should round half away from zero to two decimals", func(t *testing.T) {
		testCases := []struct {
			amount   float64
			expected int64
		}{
			{2000.0, 200000},
			{0.005, 1},
			{12.345, 1235},
			{99.994, 9999},
			{99.995, 10000},
		}

		for _, tc := range testCases {
			m, err := kernel.NewMoneyFromFloat(tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.Cents(), "amount %v", tc.amount)
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoneyFromFloat(-0.01)
		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("Add sums amounts", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromCents(150)
		b, _ := kernel.NewMoneyFromCents(50)

		assert.Equal(t, int64(200), a.Add(b).Cents())
	})

	t.Run("Sub returns difference", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromCents(150)
		b, _ := kernel.NewMoneyFromCents(50)

		diff, err := a.Sub(b)
		require.NoError(t, err)
		assert.Equal(t, int64(100), diff.Cents())
	})

	t.Run("Sub rejects negative results", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromCents(50)
		b, _ := kernel.NewMoneyFromCents(150)

		_, err := a.Sub(b)
		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNegative, err)
	})

	t.Run("MulInt multiplies by a factor", func(t *testing.T) {
		rate, _ := kernel.NewMoneyFromCents(20000)

		total, err := rate.MulInt(10)
		require.NoError(t, err)
		assert.Equal(t, "2000.00", total.String())
	})

	t.Run("MulInt by zero yields zero", func(t *testing.T) {
		rate, _ := kernel.NewMoneyFromCents(20000)

		total, err := rate.MulInt(0)
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("MulInt rejects negative factors", func(t *testing.T) {
		rate, _ := kernel.NewMoneyFromCents(20000)

		_, err := rate.MulInt(-1)
		require.Error(t, err)
	})

	t.Run("MulInt rejects overflowing products", func(t *testing.T) {
		huge, _ := kernel.NewMoneyFromCents(math.MaxInt64 / 2)

		_, err := huge.MulInt(3)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		// The boundary factor itself still multiplies cleanly.
		doubled, err := huge.MulInt(2)
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64/2)*2, doubled.Cents())
	})
}

func TestMoney_Comparison(t *testing.T) {
	a, _ := kernel.NewMoneyFromCents(100)
	b, _ := kernel.NewMoneyFromCents(100)
	c, _ := kernel.NewMoneyFromCents(200)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.True(t, a.Less(c))
	assert.False(t, c.Less(a))
	assert.False(t, a.Less(b))
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{50, "0.50"},
		{230000, "2300.00"},
		{160001, "1600.01"},
	}

	for _, tc := range testCases {
		m, err := kernel.NewMoneyFromCents(tc.cents)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, m.String())
	}
}
