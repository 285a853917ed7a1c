package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/labstack/echo/v4"
)

// bindLenient decodes a JSON object into a struct of string fields, accepting
// numbers as well as strings for every field. Form inputs send "12,5" while
// scripted clients send 12.5; both must work.
func bindLenient(c echo.Context, dst any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return err
	}

	v := reflect.ValueOf(dst).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("json")
		msg, ok := raw[name]
		if !ok || v.Field(i).Kind() != reflect.String {
			continue
		}

		var s string
		if err := json.Unmarshal(msg, &s); err == nil {
			v.Field(i).SetString(s)
			continue
		}
		var n json.Number
		if err := json.Unmarshal(msg, &n); err != nil {
			return fmt.Errorf("field %q: expected string or number", name)
		}
		v.Field(i).SetString(n.String())
	}
	return nil
}
