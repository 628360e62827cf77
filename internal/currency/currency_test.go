package currency

import (
	"math"
	"strings"
	"testing"
	"unicode"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestConvert(t *testing.T) {
	amounts := []int64{0, 1, 180, 450, 45000, 540000, 3890000}

	assert.True(t, Home.Rate().Equal(decimal.NewFromInt(1)), "home rate must be 1")

	for _, c := range Currencies() {
		for _, a := range amounts {
			home := decimal.NewFromInt(a)
			got := Convert(home, c)
			assert.True(t, got.Equal(home.Mul(c.Rate())), "%s %d", c, a)
		}
	}

	assert.True(t, Convert(decimal.NewFromInt(540000), USD).Equal(decimal.NewFromInt(5940)))
	assert.True(t, Convert(decimal.NewFromInt(45000), CNY).Equal(decimal.NewFromInt(3510)))
}

func TestFormatter_Price(t *testing.T) {
	f := NewFormatter(language.English)

	tests := []struct {
		name string
		c    Currency
		home int64
		want string
	}{
		{name: "dashboard revenue in dollars", c: USD, home: 540000, want: "$5,940"},
		{name: "home currency", c: RUB, home: 540000, want: "₽540,000"},
		{name: "yuan", c: CNY, home: 45000, want: "¥3,510"},
		{name: "rounds up", c: USD, home: 450, want: "$5"},
		{name: "rounds down", c: USD, home: 120, want: "$1"},
		{name: "rounds half away from zero", c: USD, home: 500, want: "$6"},
		{name: "zero", c: CNY, home: 0, want: "¥0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Price(decimal.NewFromInt(tt.home), tt.c))
		})
	}
}

func TestFormatter_SymbolAndNoFraction(t *testing.T) {
	for _, tag := range []language.Tag{language.English, language.Russian, language.Chinese} {
		f := NewFormatter(tag)
		for _, c := range Currencies() {
			for _, raw := range []string{"0.4", "1234.5", "987654.321", "12"} {
				out := f.Format(decimal.RequireFromString(raw), c)
				require.True(t, strings.HasPrefix(out, c.Symbol()), "%s missing symbol %s", out, c.Symbol())

				digits := strings.TrimPrefix(out, c.Symbol())
				assert.NotContains(t, digits, ".", "%s/%s: %s", tag, c, out)
				// Only grouping characters may separate digits; the last group always has three digits.
				groups := strings.FieldsFunc(digits, func(r rune) bool { return !unicode.IsDigit(r) })
				if len(groups) > 1 {
					assert.Len(t, groups[len(groups)-1], 3, "%s/%s: %s", tag, c, out)
				}
			}
		}
	}
}

func TestFormatter_ZeroValue(t *testing.T) {
	var f Formatter
	assert.Equal(t, "$5,940", f.Price(decimal.NewFromInt(540000), USD))
}

func TestParse(t *testing.T) {
	for _, c := range Currencies() {
		got, err := Parse(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := Parse("usd")
	require.NoError(t, err)
	assert.Equal(t, USD, got)

	got, err = Parse("EUR")
	assert.ErrorIs(t, err, common.ErrUnknownCurrency)
	assert.Equal(t, Default, got)
}

func TestCurrency_Symbols(t *testing.T) {
	assert.Equal(t, "₽", RUB.Symbol())
	assert.Equal(t, "$", USD.Symbol())
	assert.Equal(t, "¥", CNY.Symbol())
	assert.Equal(t, "$ USD", USD.SelectorLabel())
	assert.Equal(t, "₽", Currency("EUR").Symbol())
}

func TestFormat_BeyondInt64(t *testing.T) {
	f := NewFormatter(language.English)

	huge, err := decimal.NewFromString("123456789012345678901234")
	require.NoError(t, err)

	assert.Equal(t, "$123456789012345678901234", f.Format(huge, USD))
	assert.Equal(t, "-$123456789012345678901234", f.Format(huge.Neg(), USD))
	assert.Equal(t, "$9,223,372,036,854,775,807", f.Format(decimal.NewFromInt(math.MaxInt64), USD))
}
