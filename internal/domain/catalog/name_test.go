package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"trailing code", "Peněženka - N", "Peněženka"},
		{"trailing long code", "Batoh Urban - BLU2", "Batoh Urban"},
		{"trailing parenthetical", "Batoh Urban (blu notte)", "Batoh Urban"},
		{"code then parenthetical", "Aktovka (cognac) - CU", "Aktovka"},
		{"stacked codes", "Taška - R - N", "Taška"},
		{"no suffix", "Kožená peněženka", "Kožená peněženka"},
		{"hyphen inside word", "Cross-body taška", "Cross-body taška"},
		{"untrimmed", "  Peněženka  ", "Peněženka"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanName(tt.raw))
		})
	}
}

func TestCleanName_Idempotent(t *testing.T) {
	inputs := []string{
		"Peněženka - N",
		"Batoh Urban (blu notte)",
		"Taška - R - N",
		"Aktovka (cognac) - CU",
		"Kožená peněženka",
		"- N",
		"(x)",
		"",
	}

	for _, raw := range inputs {
		once := CleanName(raw)
		assert.Equal(t, once, CleanName(once), "CleanName not idempotent for %q", raw)
	}
}
