package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsCoversPublicFields(t *testing.T) {
	defaults := DefaultSettings()
	for key := range PublicSettingsFields {
		assert.Contains(t, defaults, key)
	}
	assert.NotContains(t, PublicSettingsFields, SettingsKeyWeatherAPIKey)
}

func TestDefaultSettingsReturnsIndependentCopies(t *testing.T) {
	first := DefaultSettings()
	first["schoolName"] = "değişti"
	second := DefaultSettings()
	assert.NotEqual(t, first["schoolName"], second["schoolName"])
}

func TestDefaultBellConfigFriday(t *testing.T) {
	defaults := DefaultSettings()
	days := defaults["bellConfig"].(map[string]interface{})["days"].(map[string]interface{})

	friday := days["Cuma"].(map[string]interface{})
	blocks := friday["blocks"].([]interface{})
	var lunch map[string]interface{}
	for _, raw := range blocks {
		block := raw.(map[string]interface{})
		if block["type"] == "lunch" {
			lunch = block
		}
	}
	require.NotNil(t, lunch)
	assert.EqualValues(t, 50, lunch["duration"])

	weekend := days["Cumartesi"].(map[string]interface{})
	assert.Empty(t, weekend["blocks"])
}

func TestDocumentScanValue(t *testing.T) {
	doc := Document{"a": "b"}
	raw, err := doc.Value()
	require.NoError(t, err)

	var scanned Document
	require.NoError(t, scanned.Scan(raw))
	assert.Equal(t, "b", scanned["a"])

	var fromNil Document
	require.NoError(t, fromNil.Scan(nil))
	assert.NotNil(t, fromNil)
}
