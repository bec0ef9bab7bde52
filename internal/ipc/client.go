package ipc

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"resty.dev/v3"
)

// Client talks to a running daemon over its unix socket.
type Client struct {
	rc *resty.Client
}

func NewClient(socket string) *Client {
	client := resty.NewWithClient(&http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", socket)
			},
		},
	})

	client.SetBaseURL("http://shadercache")
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", "shadercache")

	return &Client{rc: client}
}

func (c *Client) Close() error {
	return c.rc.Close()
}

func (c *Client) request() *resty.Request {
	return c.rc.R().SetError(&ErrorResponse{})
}

func checkResponse(res *resty.Response) error {
	if res.StatusCode() == http.StatusOK {
		return nil
	}
	apiErr := &APIError{StatusCode: res.StatusCode(), Message: res.Status()}
	if e, ok := res.Error().(*ErrorResponse); ok && e.Error != "" {
		apiErr.Message = e.Error
		apiErr.Stage = e.Stage
		apiErr.Log = e.Log
	}
	return apiErr
}

func (c *Client) Status() (*StatusResponse, error) {
	result := StatusResponse{}
	res, err := c.request().SetResult(&result).Get("/status")
	if err != nil {
		return nil, fmt.Errorf("error pinging socket: %w", err)
	}
	if err := checkResponse(res); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Compile(req CompileRequest) (*ProgramResponse, error) {
	result := ProgramResponse{}
	res, err := c.request().SetBody(req).SetResult(&result).Post("/programs")
	if err != nil {
		return nil, fmt.Errorf("error sending compile request: %w", err)
	}
	if err := checkResponse(res); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Programs() ([]RecordResponse, error) {
	var result []RecordResponse
	res, err := c.request().SetResult(&result).Get("/programs")
	if err != nil {
		return nil, fmt.Errorf("error listing programs: %w", err)
	}
	if err := checkResponse(res); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Report() (string, error) {
	res, err := c.request().SetHeader("Accept", "text/plain").Get("/report")
	if err != nil {
		return "", fmt.Errorf("error fetching report: %w", err)
	}
	if err := checkResponse(res); err != nil {
		return "", err
	}
	return res.String(), nil
}

func (c *Client) Clear() (int, error) {
	result := ClearResponse{}
	res, err := c.request().SetResult(&result).Delete("/programs")
	if err != nil {
		return 0, fmt.Errorf("error clearing programs: %w", err)
	}
	if err := checkResponse(res); err != nil {
		return 0, err
	}
	return result.Destroyed, nil
}

func (c *Client) Stop() error {
	res, err := c.request().Post("/stop")
	if err != nil {
		return fmt.Errorf("error sending stop: %w", err)
	}
	return checkResponse(res)
}
