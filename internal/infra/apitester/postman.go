package apitester

import (
	"encoding/json"
	"fmt"
)

// Postman v2.x collection format, reduced to the fields the harness reads.

type postmanCollection struct {
	Info struct {
		Name string `json:"name"`
	} `json:"info"`
	Item     []postmanItem     `json:"item"`
	Variable []postmanVariable `json:"variable"`
}

// postmanItem is either a folder (Item set) or a request.
type postmanItem struct {
	Name        string            `json:"name"`
	Description postmanText       `json:"description"`
	Item        []postmanItem     `json:"item"`
	Request     *postmanRequest   `json:"request"`
	Variable    []postmanVariable `json:"variable"`
}

type postmanVariable struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

func (v postmanVariable) stringValue() string {
	switch value := v.Value.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return fmt.Sprint(value)
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}

		return string(data)
	}
}

type postmanRequest struct {
	Method      string         `json:"method"`
	Header      []postmanParam `json:"header"`
	URL         postmanURL     `json:"url"`
	Query       []postmanParam `json:"query"`
	Body        *postmanBody   `json:"body"`
	Description postmanText    `json:"description"`
}

type postmanParam struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Disabled bool   `json:"disabled"`
}

type postmanBody struct {
	Mode string `json:"mode"`
	Raw  string `json:"raw"`
}

// postmanURL accepts both the plain string form and the structured object form.
type postmanURL struct {
	Raw   string         `json:"raw"`
	Query []postmanParam `json:"query"`
}

func (u *postmanURL) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		u.Raw = raw

		return nil
	}

	type plain postmanURL
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*u = postmanURL(decoded)

	return nil
}

// postmanText accepts a string or a {"content": "..."} object.
type postmanText string

func (t *postmanText) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*t = postmanText(raw)

		return nil
	}

	var object struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(data, &object); err != nil {
		return err
	}
	*t = postmanText(object.Content)

	return nil
}
