package entity

import "time"

// Endpoint is one HTTP request descriptor parsed from a Postman collection.
type Endpoint struct {
	Name           string            `json:"name"`
	Method         string            `json:"method"`
	URL            string            `json:"url"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Headers        map[string]string `json:"headers"`
	QueryParams    map[string]string `json:"query_params"`
	BodyParams     map[string]any    `json:"body_params,omitempty"`
	RequiredParams []string          `json:"required_params"`
}

// Clone returns a deep copy so callers can tweak a descriptor without touching the loaded collection.
func (e *Endpoint) Clone() *Endpoint {
	cloned := *e
	cloned.Headers = cloneStringMap(e.Headers)
	cloned.QueryParams = cloneStringMap(e.QueryParams)
	if e.BodyParams != nil {
		cloned.BodyParams = make(map[string]any, len(e.BodyParams))
		for k, v := range e.BodyParams {
			cloned.BodyParams[k] = v
		}
	}
	cloned.RequiredParams = append([]string(nil), e.RequiredParams...)

	return &cloned
}

func cloneStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}

// Collection is a parsed Postman collection: endpoints grouped by category
// plus the variable table used for substitution.
type Collection struct {
	Name      string                 `json:"name"`
	File      string                 `json:"file"`
	Endpoints map[string][]*Endpoint `json:"endpoints"`
	Variables map[string]string      `json:"variables"`
}

// Categories returns the category names in no particular order.
func (c *Collection) Categories() []string {
	categories := make([]string, 0, len(c.Endpoints))
	for category := range c.Endpoints {
		categories = append(categories, category)
	}

	return categories
}

// EndpointCount returns the total number of endpoints across categories.
func (c *Collection) EndpointCount() int {
	total := 0
	for _, endpoints := range c.Endpoints {
		total += len(endpoints)
	}

	return total
}

// FindEndpoint returns the first endpoint with the given name.
func (c *Collection) FindEndpoint(name string) *Endpoint {
	for _, endpoints := range c.Endpoints {
		for _, endpoint := range endpoints {
			if endpoint.Name == name {
				return endpoint
			}
		}
	}

	return nil
}

// ExecutionResult is the structured outcome of one harness call. Failures are
// values, never errors, so batch runs can keep going.
type ExecutionResult struct {
	Endpoint       string            `json:"endpoint"`
	Success        bool              `json:"success"`
	StatusCode     int               `json:"status_code,omitempty"`
	ResponseTimeMs float64           `json:"response_time_ms"`
	URL            string            `json:"url"`
	Headers        map[string]string `json:"headers"`
	Response       any               `json:"response,omitempty"`
	Error          string            `json:"error,omitempty"`
	MissingParams  []string          `json:"missing_params,omitempty"`
	TokenRefreshed bool              `json:"token_refreshed"`
	ExecutedAt     time.Time         `json:"executed_at"`
}

// JSONBody returns the parsed JSON object of the response, if any.
func (r *ExecutionResult) JSONBody() (map[string]any, bool) {
	body, ok := r.Response.(map[string]any)

	return body, ok
}
