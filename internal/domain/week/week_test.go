package week_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/week"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse_FormatoCanonico(t *testing.T) {
	k, err := week.Parse("2025-W49")
	require.NoError(t, err)
	assert.Equal(t, week.Key{Year: 2025, Week: 49}, k)
	assert.Equal(t, "2025-W49", k.String())
}

func TestParse_SinSeparador_Falla(t *testing.T) {
	for _, in := range []string{"2025-49", "2025W49", "", "2025-w49"} {
		_, err := week.Parse(in)
		assert.ErrorIs(t, err, domain.ErrInvalidWeekFormat, "entrada %q", in)
	}
}

func TestParse_PartesNoNumericas_Falla(t *testing.T) {
	for _, in := range []string{"abcd-W10", "2025-Wxx", "-W"} {
		_, err := week.Parse(in)
		assert.ErrorIs(t, err, domain.ErrInvalidWeekFormat, "entrada %q", in)
	}
}

func TestStartDate_SiempreLunes(t *testing.T) {
	cases := map[string]time.Time{
		"2025-W49": date(2025, time.December, 1),
		"2025-W01": date(2024, time.December, 30),
		"2020-W53": date(2020, time.December, 28),
		"2026-W01": date(2025, time.December, 29),
	}
	for in, want := range cases {
		k, err := week.Parse(in)
		require.NoError(t, err)
		got := k.StartDate()
		assert.Equal(t, want, got, in)
		assert.Equal(t, time.Monday, got.Weekday(), in)
		assert.Equal(t, want.AddDate(0, 0, 6), k.EndDate(), in)
	}
}

func TestRoundTrip_OfStartDate(t *testing.T) {
	for year := 2019; year <= 2032; year++ {
		last := week.Of(date(year, time.December, 28)).Week
		for w := 1; w <= last; w++ {
			k := week.Key{Year: year, Week: w}
			assert.Equal(t, k, week.Of(k.StartDate()), k.String())
		}
	}
}

func TestSemanaFueraDeRango_PasaAlAnioSiguiente(t *testing.T) {
	// 2025 tiene 52 semanas: la 53 es la semana 1 de 2026.
	k := week.Key{Year: 2025, Week: 53}
	assert.Equal(t, week.Key{Year: 2026, Week: 1}, week.Of(k.StartDate()))
}

func TestStartOf_NormalizaAlLunes(t *testing.T) {
	wed := time.Date(2025, time.December, 3, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, date(2025, time.December, 1), week.StartOf(wed))

	sun := date(2025, time.December, 7)
	assert.Equal(t, date(2025, time.December, 1), week.StartOf(sun))
	assert.Equal(t, "2025-W49", week.Of(week.StartOf(sun)).String())
}
