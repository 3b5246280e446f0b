package utils

import (
	"strconv"
	"strings"
)

// ParseIntLenient lê o prefixo inteiro do texto ("12.7" vira 12, "abc" vira 0)
func ParseIntLenient(value string) int64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	if v, err := strconv.ParseInt(value, 10, 64); err == nil {
		return v
	}

	end := 0
	for end < len(value) {
		c := value[end]
		if (c == '-' || c == '+') && end == 0 {
			end++
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		end++
	}

	v, err := strconv.ParseInt(value[:end], 10, 64)
	if err != nil {
		return 0
	}
	return v
}
