package greenops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findItem(t *testing.T, out ImpactOutput, group ImpactGroup, name string) ImpactItem {
	t.Helper()
	for _, c := range out.Categories {
		if c.Group != group {
			continue
		}
		for _, it := range c.Items {
			if it.Name == name {
				return it
			}
		}
	}
	t.Fatalf("item %q not found in %s", name, group)
	return ImpactItem{}
}

func TestImpact_TenTonnes(t *testing.T) {
	out, err := Impact(context.Background(), CarbonInput{Value: 10, Unit: "t"})
	require.NoError(t, err)
	require.False(t, out.IsEmpty)
	assert.InDelta(t, 10000.0, out.InputKg, 1e-9)
	require.Len(t, out.Categories, 4)

	assert.Equal(t, "transporte", out.Categories[0].Key)
	assert.Equal(t, "Consumo", out.Categories[3].Title)

	cars := findItem(t, out, ImpactTransport, "Carros retirados por 1 ano")
	assert.InDelta(t, 2.2, cars.Value, 1e-9) // 10 / 4.6 = 2.17
	assert.Equal(t, "2,2", cars.FormattedValue)

	trees := findItem(t, out, ImpactNature, "Árvores crescendo por 10 anos")
	assert.InDelta(t, 150.0, trees.Value, 1e-9)

	forest := findItem(t, out, ImpactNature, "Hectares de floresta preservada")
	assert.InDelta(t, 1.67, forest.Value, 1e-9)
	assert.Equal(t, "1,67", forest.FormattedValue)

	phones := findItem(t, out, ImpactEnergy, "Cargas de celular")
	assert.Equal(t, "1.830.000", phones.FormattedValue)
}

func TestImpactWith_English(t *testing.T) {
	out, err := ImpactWith(context.Background(), MustFormatter("en"), CarbonInput{Value: 10000, Unit: "kg"})
	require.NoError(t, err)

	km := findItem(t, out, ImpactTransport, "Km não dirigidos")
	assert.Equal(t, "38,630", km.FormattedValue)
}

func TestImpact_BelowThreshold(t *testing.T) {
	out, err := Impact(context.Background(), CarbonInput{Value: 0.5, Unit: "kg"})
	require.NoError(t, err)
	assert.True(t, out.IsEmpty)
	assert.Empty(t, out.Categories)
	assert.InDelta(t, 0.5, out.InputKg, 1e-9)
}

func TestImpact_InvalidInput(t *testing.T) {
	out, err := Impact(context.Background(), CarbonInput{Value: -3, Unit: "kg"})
	require.ErrorIs(t, err, ErrNegativeValue)
	assert.True(t, out.IsEmpty)

	_, err = Impact(context.Background(), CarbonInput{Value: 3, Unit: "stone"})
	require.ErrorIs(t, err, ErrInvalidUnit)
}

func TestImpactGroup_String(t *testing.T) {
	assert.Equal(t, "energia", ImpactEnergy.String())
	assert.Equal(t, "ImpactGroup(9)", ImpactGroup(9).String())
	assert.Equal(t, "ImpactGroup(9)", ImpactGroup(9).Title())
}
