package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"российский номер", "+79001234567", true},
		{"короткий международный", "+12345678", true},
		{"максимальная длина", "+123456789012345", true},
		{"без плюса", "79001234567", false},
		{"ведущий ноль", "+09001234567", false},
		{"слишком короткий", "+1234567", false},
		{"слишком длинный", "+1234567890123456", false},
		{"буквы", "+7900abc4567", false},
		{"пробелы", "+7 900 123 45 67", false},
		{"пустая строка", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.phone))
		})
	}
}
