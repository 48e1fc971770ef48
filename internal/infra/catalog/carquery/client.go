// Package carquery implements the VehicleCatalog contract against the
// CarQuery-style catalog API.
package carquery

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"drivematch/config"
	"drivematch/internal/domain/entity"
	"drivematch/internal/domain/service"

	"github.com/pkg/errors"
)

// client queries the external catalog endpoint with a bounded timeout and
// normalizes its historically quirky response format.
type client struct {
	baseURL    string
	maxModels  int
	httpClient *http.Client
	logger     *slog.Logger
}

// New is the constructor for the catalog client.
func New(cfg *config.Config, logger *slog.Logger) service.VehicleCatalog {
	return &client{
		baseURL:   cfg.Catalog.BaseURL,
		maxModels: cfg.Catalog.MaxModels,
		httpClient: &http.Client{
			Timeout: cfg.Catalog.Timeout,
		},
		logger: logger,
	}
}

// catalogModel mirrors the catalog's wire format. Year and seat fields arrive
// as strings or numbers depending on the entry, hence the flexible types.
type catalogModel struct {
	Name  string     `json:"model_name"`
	Body  string     `json:"model_body"`
	Year  flexString `json:"model_year"`
	Seats flexInt    `json:"model_seats"`
}

type catalogPayload struct {
	Models []catalogModel `json:"Models"`
}

// Models fetches the catalog's model list for the given make. Unparseable
// bodies soft-fail to an empty slice; transport failures return an error so
// the caller can decide how to degrade.
func (c *client) Models(ctx context.Context, carMake string) ([]entity.CatalogModel, error) {
	query := url.Values{}
	query.Set("cmd", "getModels")
	query.Set("make", carMake)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("catalog returned non-success status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	payload, err := parsePayload(body)
	if err != nil {
		// Soft-fail: a garbled catalog body degrades to an empty candidate
		// set instead of failing the request.
		c.logger.Warn("Failed to parse catalog response, returning empty model list",
			slog.String("make", carMake),
			slog.Any("error", err),
		)

		return []entity.CatalogModel{}, nil
	}

	models := payload.Models
	if len(models) > c.maxModels {
		models = models[:c.maxModels]
	}

	out := make([]entity.CatalogModel, 0, len(models))
	for _, m := range models {
		out = append(out, entity.CatalogModel{
			Name:  m.Name,
			Body:  m.Body,
			Year:  string(m.Year),
			Seats: int(m.Seats),
		})
	}

	return out, nil
}

// parsePayload handles both plain JSON and the JSONP variant the catalog
// sometimes emits ("callbackName({...});").
func parsePayload(body []byte) (*catalogPayload, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("empty catalog response")
	}

	if trimmed[0] != '{' {
		stripped, ok := stripJSONP(trimmed)
		if !ok {
			return nil, errors.New("catalog response is neither JSON nor JSONP")
		}
		trimmed = stripped
	}

	payload := new(catalogPayload)
	if err := json.Unmarshal(trimmed, payload); err != nil {
		return nil, errors.Wrap(err, "unmarshal catalog payload")
	}

	return payload, nil
}

// stripJSONP removes the leading "callbackName(" and the trailing ")" or ");".
func stripJSONP(body []byte) ([]byte, bool) {
	open := bytes.IndexByte(body, '(')
	if open < 0 {
		return nil, false
	}

	inner := body[open+1:]
	inner = bytes.TrimRight(inner, " \t\r\n")
	inner = bytes.TrimSuffix(inner, []byte(";"))
	if !bytes.HasSuffix(inner, []byte(")")) {
		return nil, false
	}

	return inner[:len(inner)-1], true
}

// flexString unmarshals from either a JSON string or a JSON number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""

		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.WithStack(err)
		}
		*f = flexString(s)

		return nil
	}

	*f = flexString(strings.TrimSpace(string(data)))

	return nil
}

// flexInt unmarshals from either a JSON string or a JSON number; anything
// unparseable decodes to zero so one odd entry cannot poison the whole list.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}

	v, err := strconv.Atoi(string(s))
	if err != nil {
		*f = 0

		return nil
	}
	*f = flexInt(v)

	return nil
}
