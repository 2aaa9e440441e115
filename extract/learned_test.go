package extract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/rezept"
	"github.com/fwojciec/rezept/extract"
	"github.com/fwojciec/rezept/mock"
)

func TestLearnedStrategy_UsesClassifierLabels(t *testing.T) {
	t.Parallel()

	classifier := &mock.SectionClassifier{
		ClassifyFn: func(sections []rezept.Section) ([]rezept.Label, error) {
			labels := make([]rezept.Label, len(sections))
			for i := range sections {
				switch i {
				case 0:
					labels[i] = rezept.LabelTitle
				case 1:
					labels[i] = rezept.LabelIngredients
				case 2:
					labels[i] = rezept.LabelInstructions
				default:
					labels[i] = rezept.LabelOther
				}
			}
			return labels, nil
		},
	}

	in := textInput("Apfelkuchen\n\n200 g Mehl\n2 Eier\n\nMehl und Eier mischen, dann backen\n\nSeite 1 von 1")
	require.Len(t, in.Sections, 4)

	s := extract.NewLearnedStrategy(classifier)
	out := s.Extract(context.Background(), in)

	require.True(t, out.OK(), "declined: %s", out.Reason)
	assert.Equal(t, "Apfelkuchen", out.Extraction.Title)
	assert.Equal(t, "200 g Mehl\n2 Eier", out.Extraction.Ingredients)
	assert.Equal(t, "Mehl und Eier mischen, dann backen", out.Extraction.Instructions)
}

func TestLearnedStrategy_PicksShortestEarlyTitle(t *testing.T) {
	t.Parallel()

	classifier := &mock.SectionClassifier{
		ClassifyFn: func(sections []rezept.Section) ([]rezept.Label, error) {
			labels := make([]rezept.Label, len(sections))
			for i := range sections {
				switch i {
				case 0, 1:
					labels[i] = rezept.LabelTitle
				case 2:
					labels[i] = rezept.LabelIngredients
				default:
					labels[i] = rezept.LabelInstructions
				}
			}
			return labels, nil
		},
	}

	in := textInput("Die feinsten Kuchenrezepte der Backstube Meier\n\nApfelkuchen\n\n200 g Mehl\n2 Eier\n\nMehl und Eier mischen, dann backen")
	require.Len(t, in.Sections, 4)

	s := extract.NewLearnedStrategy(classifier)
	out := s.Extract(context.Background(), in)

	require.True(t, out.OK(), "declined: %s", out.Reason)
	assert.Equal(t, "Apfelkuchen", out.Extraction.Title)
}

func TestLearnedStrategy_DeclinesWithoutClassifier(t *testing.T) {
	t.Parallel()

	s := extract.NewLearnedStrategy(nil)
	out := s.Extract(context.Background(), textInput("Zutaten\n200 g Mehl"))

	assert.False(t, out.OK())
	assert.Equal(t, "no classifier model", out.Reason)
}

func TestLearnedStrategy_DeclinesOnClassifierError(t *testing.T) {
	t.Parallel()

	classifier := &mock.SectionClassifier{
		ClassifyFn: func(sections []rezept.Section) ([]rezept.Label, error) {
			return nil, rezept.Errorf(rezept.EINTERNAL, "model corrupt")
		},
	}

	s := extract.NewLearnedStrategy(classifier)
	out := s.Extract(context.Background(), textInput("Zutaten\n200 g Mehl"))

	assert.False(t, out.OK())
	assert.Contains(t, out.Reason, "model corrupt")
}
