package models

import (
	"bytes"
	"encoding/json"
)

// LocalizedString is a Portuguese/English text pair. Legacy catalogue data
// stored some names as plain strings and others as {pt, en} objects, so the
// decoder accepts both; the distinction ends at the ingestion boundary.
type LocalizedString struct {
	PT string `json:"pt"`
	EN string `json:"en"`
}

func (l *LocalizedString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		l.PT, l.EN = s, s
		return nil
	}

	type plain LocalizedString
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*l = LocalizedString(p)
	return nil
}

// Display returns the text for lang ("pt" or "en"), falling back to the
// other language when the requested one is empty.
func (l LocalizedString) Display(lang string) string {
	if lang == "en" {
		if l.EN != "" {
			return l.EN
		}
		return l.PT
	}
	if l.PT != "" {
		return l.PT
	}
	return l.EN
}

func (l LocalizedString) IsZero() bool {
	return l.PT == "" && l.EN == ""
}
