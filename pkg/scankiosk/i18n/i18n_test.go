package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNew_English(t *testing.T) {
	m, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, language.English, m.Language())
	assert.Equal(t, "Unknown barcode: XYZ", m.UnknownBarcode("XYZ"))
	assert.Equal(t, "Back", m.Get(MsgBack, nil))
}

func TestNew_Translated(t *testing.T) {
	m, err := New("fr-CA")
	require.NoError(t, err)

	base, _ := m.Language().Base()
	assert.Equal(t, "fr", base.String())
	assert.Equal(t, "Code-barres inconnu : XYZ", m.UnknownBarcode("XYZ"))
}

func TestNew_FallsBackToEnglish(t *testing.T) {
	for _, locale := range []string{"", "ja", "not a locale!"} {
		m := MustNew(locale)
		assert.Equal(t, "Unknown barcode: A1", m.UnknownBarcode("A1"), locale)
	}
}

func TestGet_MissingID(t *testing.T) {
	m := MustNew("de")
	assert.Equal(t, "NoSuchMessage", m.Get("NoSuchMessage", nil))
}

func TestBundle_AllLocalesHaveEveryMessage(t *testing.T) {
	bundle, err := NewBundle()
	require.NoError(t, err)
	require.Len(t, bundle.LanguageTags(), 3)

	ids := []string{MsgUnknownBarcode, MsgScanPrompt, MsgBack}
	for _, tag := range bundle.LanguageTags() {
		m := MustNew(tag.String())
		for _, id := range ids {
			assert.NotEqual(t, id, m.Get(id, map[string]any{"Code": "X"}), "%s/%s", tag, id)
		}
	}
}
