package backend

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// The legacy backend is loose about scalar types: numeric columns come back
// as numbers or strings depending on the endpoint, and a few flags arrive as
// booleans, 0/1, or "yes"/"true". These wire types absorb the variance so
// the transform layer only ever sees canonical values.

// FlexString unmarshals a JSON string, number or null into a string.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// FlexInt unmarshals a JSON number, numeric string or null into an int.
// Unparseable input collapses to 0; field defaults are applied downstream.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	s := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*f = 0
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(int(v))
		return nil
	}
	*f = 0
	return nil
}

func (f FlexInt) Int() int { return int(f) }

// FlexBool unmarshals a JSON bool, 0/1, or the usual string spellings.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch strings.ToLower(strings.Trim(string(data), `"`)) {
	case "true", "1", "yes", "y":
		*f = true
	default:
		*f = false
	}
	return nil
}

func (f FlexBool) Bool() bool { return bool(f) }
