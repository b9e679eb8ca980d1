package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizedStringUnmarshalObject(t *testing.T) {
	var l LocalizedString
	require.NoError(t, json.Unmarshal([]byte(`{"pt":"Matemática 5","en":"Maths 5"}`), &l))
	assert.Equal(t, "Matemática 5", l.PT)
	assert.Equal(t, "Maths 5", l.EN)
}

func TestLocalizedStringUnmarshalPlainString(t *testing.T) {
	var l LocalizedString
	require.NoError(t, json.Unmarshal([]byte(`"Dobble"`), &l))
	assert.Equal(t, "Dobble", l.PT)
	assert.Equal(t, "Dobble", l.EN)
}

func TestLocalizedStringUnmarshalPartialObject(t *testing.T) {
	var l LocalizedString
	require.NoError(t, json.Unmarshal([]byte(`{"pt":"Gramática"}`), &l))
	assert.Equal(t, "Gramática", l.PT)
	assert.Empty(t, l.EN)
}

func TestLocalizedStringDisplayFallback(t *testing.T) {
	both := LocalizedString{PT: "Livro", EN: "Book"}
	assert.Equal(t, "Livro", both.Display("pt"))
	assert.Equal(t, "Book", both.Display("en"))

	ptOnly := LocalizedString{PT: "Livro"}
	assert.Equal(t, "Livro", ptOnly.Display("en"))

	enOnly := LocalizedString{EN: "Book"}
	assert.Equal(t, "Book", enOnly.Display("pt"))
}

func TestLocalizedStringIsZero(t *testing.T) {
	assert.True(t, LocalizedString{}.IsZero())
	assert.False(t, LocalizedString{PT: "x"}.IsZero())
}
