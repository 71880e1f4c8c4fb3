package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"BookCatalog/pkg/bookspb"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // the server rejected the call
	ExitCommandError = 2 // bad arguments or flags
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error

	// Reported is set when the formatter already printed the failure.
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// IsReported reports whether err was already written by an OutputFormatter.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
}

// CLIResponse is the JSON envelope of every non-streaming command.
type CLIResponse struct {
	Status string    `json:"status"` // "ok" or "error"
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

type CLIError struct {
	Op      string `json:"op"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type jsonBook struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

type jsonEvent struct {
	Seq  uint64   `json:"seq"`
	Kind string   `json:"kind"`
	Book jsonBook `json:"book"`
}

func toJSONBook(b *bookspb.Book) jsonBook {
	if b == nil {
		return jsonBook{}
	}
	return jsonBook{ID: b.Id, Title: b.Title, Author: b.Author}
}

func (f *OutputFormatter) json() bool { return f.Format == "json" }

func (f *OutputFormatter) ok(data any) error {
	return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
}

func (f *OutputFormatter) Books(books []*bookspb.Book) error {
	if f.json() {
		out := make([]jsonBook, 0, len(books))
		for _, b := range books {
			out = append(out, toJSONBook(b))
		}
		return f.ok(map[string]any{"books": out})
	}

	fmt.Fprintf(f.Writer, "Server sent %d book(s).\n", len(books))
	for _, b := range books {
		fmt.Fprintln(f.Writer, formatBook(b))
	}
	return nil
}

func (f *OutputFormatter) Book(b *bookspb.Book) error {
	if f.json() {
		return f.ok(toJSONBook(b))
	}
	fmt.Fprintln(f.Writer, formatBook(b))
	return nil
}

func (f *OutputFormatter) Inserted(b *bookspb.Book) error {
	if f.json() {
		return f.ok(toJSONBook(b))
	}
	fmt.Fprintf(f.Writer, "Inserted %s\n", formatBook(b))
	return nil
}

func (f *OutputFormatter) Deleted(id int64) error {
	if f.json() {
		return f.ok(map[string]int64{"id": id})
	}
	fmt.Fprintf(f.Writer, "Deleted book %d\n", id)
	return nil
}

// WatchStarted prints the stream banner in text mode. JSON streams carry one
// event object per line and nothing else.
func (f *OutputFormatter) WatchStarted() {
	if !f.json() {
		fmt.Fprintln(f.Writer, "Server stream data received:")
	}
}

func (f *OutputFormatter) Event(ev *bookspb.WatchEvent) error {
	if f.json() {
		return json.NewEncoder(f.Writer).Encode(jsonEvent{
			Seq:  ev.Seq,
			Kind: ev.Kind.String(),
			Book: toJSONBook(ev.Book),
		})
	}
	fmt.Fprintf(f.Writer, "%-8s %s (seq %d)\n", ev.Kind, formatBook(ev.Book), ev.Seq)
	return nil
}

// RPCError prints "<op> failed with <CODE>: <message>" and returns an
// ExitError carrying ExitFailure.
func (f *OutputFormatter) RPCError(op string, err error) error {
	st := status.Convert(err)
	code := CodeName(st.Code())

	if f.json() {
		_ = json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Op: op, Code: code, Message: st.Message()},
		})
	} else {
		w := f.ErrWriter
		if w == nil {
			w = f.Writer
		}
		fmt.Fprintf(w, "%s failed with %s: %s\n", op, code, st.Message())
	}

	return &ExitError{
		Code:     ExitFailure,
		Message:  fmt.Sprintf("%s failed with %s", op, code),
		Err:      err,
		Reported: true,
	}
}

func formatBook(b *bookspb.Book) string {
	if b == nil {
		return "<nil>"
	}
	return fmt.Sprintf("#%d %q by %s", b.Id, b.Title, b.Author)
}

var codeNames = map[codes.Code]string{
	codes.OK:                 "OK",
	codes.Canceled:           "CANCELLED",
	codes.Unknown:            "UNKNOWN",
	codes.InvalidArgument:    "INVALID_ARGUMENT",
	codes.DeadlineExceeded:   "DEADLINE_EXCEEDED",
	codes.NotFound:           "NOT_FOUND",
	codes.AlreadyExists:      "ALREADY_EXISTS",
	codes.PermissionDenied:   "PERMISSION_DENIED",
	codes.ResourceExhausted:  "RESOURCE_EXHAUSTED",
	codes.FailedPrecondition: "FAILED_PRECONDITION",
	codes.Aborted:            "ABORTED",
	codes.OutOfRange:         "OUT_OF_RANGE",
	codes.Unimplemented:      "UNIMPLEMENTED",
	codes.Internal:           "INTERNAL",
	codes.Unavailable:        "UNAVAILABLE",
	codes.DataLoss:           "DATA_LOSS",
	codes.Unauthenticated:    "UNAUTHENTICATED",
}

// CodeName renders c the way the gRPC status documentation spells it.
func CodeName(c codes.Code) string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return fmt.Sprintf("CODE(%d)", uint32(c))
}
