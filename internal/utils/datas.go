package utils

import (
	"fmt"
	"time"
)

// formatos aceitos para datas vindas do front
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// ParseData converte uma data enviada pelo front ("2006-01-02" ou
// RFC3339) para time.Time
func ParseData(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida: %q", value)
}
