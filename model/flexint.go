package model

import (
	"bytes"
	"strconv"
)

// FlexInt decodes a JSON number or a numeric string. The backend
// returns capacity and duration as whichever it stored, while the POST
// contract takes strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(bytes.Trim(bytes.TrimSpace(data), `"`))
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}
