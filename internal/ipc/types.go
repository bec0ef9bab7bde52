package ipc

import (
	"context"
	"fmt"

	"github.com/matjam/shadercache/internal/shader"
)

type CommandType string

const (
	CommandStop     CommandType = "stop"
	CommandCompile  CommandType = "compile"
	CommandPrograms CommandType = "programs"
	CommandReport   CommandType = "report"
	CommandClear    CommandType = "clear"
	CommandStatus   CommandType = "status"
)

// Command is executed on the render thread. Requirements is only read by
// CommandCompile.
type Command struct {
	Type         CommandType         `json:"type"`
	Requirements shader.Requirements `json:"requirements"`
}

// Reply carries the result of a Command; which field is set depends on the
// command type.
type Reply struct {
	Program   *ProgramResponse
	Records   []RecordResponse
	Report    string
	Destroyed int
	Status    *StatusResponse
}

// ManagerInterface is what the socket handlers need from the Manager.
type ManagerInterface interface {
	Do(ctx context.Context, cmd Command) (Reply, error)
	EnqueueCommand(Command)
}

// CompileRequest is the body of POST /programs.
type CompileRequest struct {
	Variant   string `json:"variant"`
	GreenTint bool   `json:"green_tint"`
}

// Requirements parses the request into a cache key.
func (r CompileRequest) Requirements() (shader.Requirements, error) {
	v, err := shader.ParseVariant(r.Variant)
	if err != nil {
		return shader.Requirements{}, err
	}
	return shader.Requirements{Variant: v, GreenTint: r.GreenTint}, nil
}

type ProgramResponse struct {
	ID          uint32          `json:"id"`
	Description string          `json:"description"`
	Variant     string          `json:"variant"`
	GreenTint   bool            `json:"green_tint"`
	Cached      bool            `json:"cached"`
	Uniforms    shader.Uniforms `json:"uniforms"`
}

type RecordResponse struct {
	ID          uint32  `json:"id"`
	AgeSeconds  float64 `json:"age_seconds"`
	Description string  `json:"description"`
}

type StatusResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Version  string `json:"version"`
	PID      int    `json:"pid"`
	Socket   string `json:"socket"`
	Config   string `json:"config"`
	Renderer string `json:"renderer"`
	Programs int    `json:"programs"`
}

type ClearResponse struct {
	Status    string `json:"status"`
	Destroyed int    `json:"destroyed"`
}

// ErrorResponse is returned with every non-2xx status. Stage and Log are
// set when a program failed to build.
type ErrorResponse struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
	Log   string `json:"log,omitempty"`
}

// APIError is what the Client returns for an ErrorResponse.
type APIError struct {
	StatusCode int
	Message    string
	Stage      string
	Log        string
}

func (e *APIError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("%d: %s (%s stage)\n%s", e.StatusCode, e.Message, e.Stage, e.Log)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

func newProgramResponse(p *shader.Program, cached bool) *ProgramResponse {
	return &ProgramResponse{
		ID:          p.ID,
		Description: shader.Describe(p.Key),
		Variant:     p.Key.Variant.ShortName(),
		GreenTint:   p.Key.GreenTint,
		Cached:      cached,
		Uniforms:    p.Uniforms,
	}
}

func newRecordResponses(records []shader.Record) []RecordResponse {
	out := make([]RecordResponse, len(records))
	for i, r := range records {
		out[i] = RecordResponse{
			ID:          r.ProgramID,
			AgeSeconds:  r.Age.Seconds(),
			Description: r.Description,
		}
	}
	return out
}
