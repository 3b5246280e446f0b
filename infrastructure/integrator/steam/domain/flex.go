package steamdomain

import (
	"bytes"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FlexString aceita string, número ou null. A API de parceiros devolve
// valores monetários ora como texto ora como número.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(strings.TrimSpace(s))
		return nil
	}

	*f = FlexString(data)
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// Int64 converte o valor truncando casas decimais; valores inválidos viram 0
func (f FlexString) Int64() int64 {
	s := strings.TrimSpace(string(f))
	if s == "" {
		return 0
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(v)
	}

	return 0
}
