package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_English(t *testing.T) {
	t.Parallel()
	tr, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "en", tr.Lang())
	assert.Equal(t, "Label deleted", tr.T("screens.labelManage.labelDeleted", nil))
	assert.Equal(t, "Create label", tr.T("screens.labelManage.inputModal.title.create", nil))
}

func TestTranslator_Interpolation(t *testing.T) {
	t.Parallel()
	tr, err := New("en")
	require.NoError(t, err)

	got := tr.T("screens.labelManage.labelSaved", map[string]any{"Name": "Work"})
	assert.Equal(t, `Label "Work" saved`, got)
}

func TestTranslator_SpanishWithFallback(t *testing.T) {
	t.Parallel()
	tr, err := New("es-MX")
	require.NoError(t, err)

	assert.Equal(t, "es", tr.Lang())
	assert.Equal(t, "Etiqueta eliminada", tr.T("screens.labelManage.labelDeleted", nil))
	// Terms sections only exist in English
	assert.Equal(t, "Acknowledgment", tr.T("termsAndConditions.section2.title", nil))
	assert.True(t, tr.Has("termsAndConditions.section2.title"))
	assert.True(t, tr.Has("termsAndConditions.sectionsLength"))
	assert.False(t, tr.Has("no.such.key"))
}

func TestTranslator_UnknownLocaleAndKey(t *testing.T) {
	t.Parallel()
	tr, err := New("not a locale")
	require.NoError(t, err)

	assert.Equal(t, DefaultLocale, tr.Lang())
	assert.Equal(t, "no.such.key", tr.T("no.such.key", nil))
	assert.False(t, tr.Has("no.such.key"))
	assert.True(t, tr.Has("common.delete"))
}

func TestCatalogs_ValidationKeysPresent(t *testing.T) {
	t.Parallel()
	bundle, err := NewBundle()
	require.NoError(t, err)

	keys := []string{
		"screens.labelManage.inputModal.validation.required",
		"screens.labelManage.inputModal.validation.tooShort",
		"screens.labelManage.inputModal.validation.tooLong",
		"screens.labelManage.inputModal.validation.duplicateExist",
		"screens.labelManage.labelDeleted",
		"screens.labelManage.noLabelsFound",
	}
	for _, lang := range []string{"en", "es"} {
		tr := NewWithBundle(bundle, lang)
		for _, k := range keys {
			assert.NotEqual(t, k, tr.T(k, nil), "%s missing %s", lang, k)
		}
	}
}
