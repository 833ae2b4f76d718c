// Package client is the HTTP adapter between the calendar session and the
// scheduling API. It satisfies calendar.Collaborator so the calendar
// package never touches net/http directly.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dentalcare/clinic-scheduler/internal/calendar"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// apiError mirrors the error body of the scheduling API.
type apiError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

// listEnvelope mirrors the list response of the scheduling API.
type listEnvelope[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

type patientDTO struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

type staffDTO struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Specialty string `json:"specialty"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			return fmt.Errorf("%s", apiErr.Message)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// FetchAppointmentsByRange lists the appointments whose start time falls
// in [start, end], both ends inclusive. The API takes date-only bounds.
func (c *Client) FetchAppointmentsByRange(ctx context.Context, start, end time.Time) ([]calendar.Appointment, error) {
	q := url.Values{}
	q.Set("startDate", start.Format("2006-01-02"))
	q.Set("endDate", end.Format("2006-01-02"))

	var envelope listEnvelope[calendar.Appointment]
	if err := c.do(ctx, http.MethodGet, "/api/appointments?"+q.Encode(), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (c *Client) CreateAppointment(ctx context.Context, draft calendar.Draft) (*calendar.Appointment, error) {
	var ap calendar.Appointment
	if err := c.do(ctx, http.MethodPost, "/api/appointments", draft, &ap); err != nil {
		return nil, err
	}
	return &ap, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id string, draft calendar.Draft) (*calendar.Appointment, error) {
	var ap calendar.Appointment
	if err := c.do(ctx, http.MethodPut, "/api/appointments/"+url.PathEscape(id), draft, &ap); err != nil {
		return nil, err
	}
	return &ap, nil
}

func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/appointments/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListPatients(ctx context.Context) ([]calendar.Patient, error) {
	var envelope listEnvelope[patientDTO]
	if err := c.do(ctx, http.MethodGet, "/api/patients", nil, &envelope); err != nil {
		return nil, err
	}
	patients := make([]calendar.Patient, 0, len(envelope.Data))
	for _, p := range envelope.Data {
		patients = append(patients, calendar.Patient{ID: p.ID, FullName: p.FullName})
	}
	return patients, nil
}

func (c *Client) ListDentists(ctx context.Context) ([]calendar.Dentist, error) {
	var envelope listEnvelope[staffDTO]
	if err := c.do(ctx, http.MethodGet, "/api/dentists", nil, &envelope); err != nil {
		return nil, err
	}
	dentists := make([]calendar.Dentist, 0, len(envelope.Data))
	for _, s := range envelope.Data {
		dentists = append(dentists, calendar.Dentist{ID: s.ID, FullName: s.FullName, Specialty: s.Specialty})
	}
	return dentists, nil
}

var _ calendar.Collaborator = (*Client)(nil)
