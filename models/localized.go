package models

// LocalizedText is the canonical wire representation of a translated string.
// English is the required base language; the rest are optional. Storage uses
// flat per-language columns, so models convert both ways at the persistence
// boundary and nothing above it ever sees flat fields.
type LocalizedText struct {
	En string `json:"en" binding:"required"`
	Ar string `json:"ar,omitempty"`
	De string `json:"de,omitempty"`
	Tr string `json:"tr,omitempty"`
}

func (t LocalizedText) IsZero() bool {
	return t.En == "" && t.Ar == "" && t.De == "" && t.Tr == ""
}
