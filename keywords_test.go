package rezept_test

import (
	"testing"

	"github.com/fwojciec/rezept"
	"github.com/stretchr/testify/assert"
)

func TestHasAmount(t *testing.T) {
	t.Parallel()

	assert.True(t, rezept.HasAmount("200 g Mehl"))
	assert.True(t, rezept.HasAmount("2-3 EL Olivenöl"))
	assert.True(t, rezept.HasAmount("1 Prise Salz"))
	assert.False(t, rezept.HasAmount("2 Eier"))        // no known unit
	assert.False(t, rezept.HasAmount("1. Mehl sieben")) // step number, not amount
	assert.False(t, rezept.HasAmount("Mehl"))
}

func TestIsNumberedStep(t *testing.T) {
	t.Parallel()

	assert.True(t, rezept.IsNumberedStep("1. Mehl sieben"))
	assert.True(t, rezept.IsNumberedStep("2) Eier zugeben"))
	assert.False(t, rezept.IsNumberedStep("2 Eier")) // amount, not a step
	assert.False(t, rezept.IsNumberedStep("Mehl sieben"))
}

func TestContainsCookingVerb(t *testing.T) {
	t.Parallel()

	assert.True(t, rezept.ContainsCookingVerb("Alles gut mischen und backen."))
	assert.False(t, rezept.ContainsCookingVerb("200 g Mehl"))
}

func TestContainsCommonIngredient(t *testing.T) {
	t.Parallel()

	assert.True(t, rezept.ContainsCommonIngredient("Mehl und Zucker"))
	assert.False(t, rezept.ContainsCommonIngredient("bei 180 Grad"))
}

func TestIsNoise(t *testing.T) {
	t.Parallel()

	assert.True(t, rezept.IsNoise("www.lemenu.ch"))
	assert.True(t, rezept.IsNoise("Nährwerte pro Person"))
	assert.False(t, rezept.IsNoise("200 g Mehl"))
}

func TestRejectAsTitle(t *testing.T) {
	t.Parallel()

	assert.True(t, rezept.RejectAsTitle("Zutaten für 4 Personen"))
	assert.True(t, rezept.RejectAsTitle("Zubereitung"))
	assert.False(t, rezept.RejectAsTitle("Apfelkuchen mit Zimt"))
}
