package apitester

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Substituter expands {{variable}} placeholders. Declared variables win over
// the built-ins.
type Substituter struct {
	baseURL string
	now     func() time.Time
	newUUID func() string
	randInt func() int
}

// NewSubstituter creates a Substituter whose {{baseUrl}} resolves to baseURL.
func NewSubstituter(baseURL string) *Substituter {
	return &Substituter{
		baseURL: baseURL,
		now:     time.Now,
		newUUID: uuid.NewString,
		randInt: func() int { return rand.IntN(1000) },
	}
}

// Substitute replaces declared variables, then {{baseUrl}}, {{protocol}},
// {{uuid}}, {{$timestamp}} and {{$randomInt}}. Unknown placeholders are kept.
func (s *Substituter) Substitute(value string, vars map[string]string) string {
	if !strings.Contains(value, "{{") {
		return value
	}

	for key, replacement := range vars {
		value = strings.ReplaceAll(value, "{{"+key+"}}", replacement)
	}

	builtins := []struct {
		placeholder string
		value       func() string
	}{
		{"{{baseUrl}}", func() string { return s.baseURL }},
		{"{{protocol}}", func() string { return "https" }},
		{"{{uuid}}", s.newUUID},
		{"{{$timestamp}}", func() string { return strconv.FormatInt(s.now().Unix(), 10) }},
		{"{{$randomInt}}", func() string { return strconv.Itoa(s.randInt()) }},
	}
	for _, builtin := range builtins {
		if strings.Contains(value, builtin.placeholder) {
			value = strings.ReplaceAll(value, builtin.placeholder, builtin.value())
		}
	}

	return value
}
