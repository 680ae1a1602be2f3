package client

import (
	"encoding/json"

	"github.com/go-resty/resty/v2"
)

// Response is the normalized envelope every Alliant endpoint replies with.
// Network-level outcomes are carried as data: callers inspect HasErrors,
// Errors, and StatusCode rather than catching an error. A body that cannot
// be parsed as the envelope is reported with HasErrors set and the parse
// noted in the log, but it never triggers a retry on its own; only the HTTP
// status code drives retries.
type Response struct {
	StatusCode  int
	Result      map[string]any
	Errors      []any
	HasErrors   bool
	Warnings    []any
	HasWarnings bool

	// Method, URL, and Body preserve the request/response context the
	// envelope was built from, mainly for logging and diagnostics.
	Method string
	URL    string
	Body   []byte
}

type envelope struct {
	Result      map[string]any `json:"result"`
	Errors      []any          `json:"errors"`
	HasErrors   bool           `json:"hasErrors"`
	Warnings    []any          `json:"warnings"`
	HasWarnings bool           `json:"hasWarnings"`
}

func newResponse(resp *resty.Response, logger RequestLogger) *Response {
	r := &Response{
		StatusCode: resp.StatusCode(),
		Method:     resp.Request.Method,
		URL:        resp.Request.URL,
		Body:       resp.Body(),
	}

	var env envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		logger.Errorf("malformed response body: %v\n  method = %s\n  status = %d\n  url = %s\n  body = %q",
			err, r.Method, r.StatusCode, r.URL, r.Body)
		r.HasErrors = true

		return r
	}

	r.Result = env.Result
	r.Errors = env.Errors
	r.HasErrors = env.HasErrors
	r.Warnings = env.Warnings
	r.HasWarnings = env.HasWarnings

	if r.HasErrors {
		logger.Errorf("response reported errors\n  method = %s\n  status = %d\n  url = %s\n  errors = %v",
			r.Method, r.StatusCode, r.URL, r.Errors)
	}

	if r.HasWarnings {
		logger.Warnf("response reported warnings\n  method = %s\n  status = %d\n  url = %s\n  warnings = %v",
			r.Method, r.StatusCode, r.URL, r.Warnings)
	}

	return r
}

// loginToken extracts the session token and expiry from a login response.
// ok is false when the result carries no token, which is how the server
// signals a failed login.
func (r *Response) loginToken() (token, expires string, ok bool) {
	if r.Result == nil {
		return "", "", false
	}

	token, ok = r.Result["token"].(string)
	if !ok || token == "" {
		return "", "", false
	}

	expires, _ = r.Result["expires"].(string)

	return token, expires, true
}

// Collection is the envelope view for collection endpoints: the result
// object additionally carries the page of items and paging URLs.
type Collection struct {
	Response

	Items           []map[string]any
	ItemCount       int
	TotalItemCount  int
	NextPageURL     string
	PreviousPageURL string

	// GUIDs lists the guid field of every item on the page, in order.
	GUIDs []string
}

func newCollection(resp *resty.Response, logger RequestLogger) *Collection {
	c := &Collection{Response: *newResponse(resp, logger)}

	if c.Result == nil {
		return c
	}

	c.ItemCount = resultInt(c.Result, "itemCount")
	c.TotalItemCount = resultInt(c.Result, "totalItemCount")
	c.NextPageURL = resultString(c.Result, "nextPageUrl")
	c.PreviousPageURL = resultString(c.Result, "previousPageUrl")

	items, _ := c.Result["items"].([]any)
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}

		c.Items = append(c.Items, fields)

		if guid, ok := fields["guid"].(string); ok {
			c.GUIDs = append(c.GUIDs, guid)
		}
	}

	return c
}

// Adjustment is the envelope view for a single adjustment header resource.
type Adjustment struct {
	Response

	// AdjustmentStatus is the display name of the adjustment's status
	// reference, empty when the response does not carry one.
	AdjustmentStatus string
}

func newAdjustment(resp *resty.Response, logger RequestLogger) *Adjustment {
	a := &Adjustment{Response: *newResponse(resp, logger)}
	a.AdjustmentStatus = statusDisplayName(a.Result)

	return a
}

// Contract is the envelope view for a single contract resource.
type Contract struct {
	Response

	// ContractStatus is the display name of the contract's status
	// reference, empty when the response does not carry one.
	ContractStatus string
}

func newContract(resp *resty.Response, logger RequestLogger) *Contract {
	c := &Contract{Response: *newResponse(resp, logger)}
	c.ContractStatus = statusDisplayName(c.Result)

	return c
}

func statusDisplayName(result map[string]any) string {
	if result == nil {
		return ""
	}

	ref, ok := result["statusReference"].(map[string]any)
	if !ok {
		return ""
	}

	name, _ := ref["displayName"].(string)

	return name
}

func resultString(result map[string]any, key string) string {
	s, _ := result[key].(string)

	return s
}

func resultInt(result map[string]any, key string) int {
	// JSON numbers decode as float64 in a map[string]any.
	f, _ := result[key].(float64)

	return int(f)
}
