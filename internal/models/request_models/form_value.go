package request_models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FormValue accepts either a JSON string or a JSON number and keeps the raw
// text, so "3-4", "500+" and 1500 all survive decoding.
type FormValue string

func (f *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FormValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FormValue(n.String())
	return nil
}

func (f FormValue) String() string {
	return string(f)
}

func (f FormValue) IsBlank() bool {
	return strings.TrimSpace(string(f)) == ""
}
