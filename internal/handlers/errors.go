package handlers

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse is the body of every 500 the service sends.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HandlerFunc is an http.HandlerFunc that can fail.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Wrap turns a failing handler into an http.HandlerFunc. A returned error
// becomes a 500 with the error message exposed in the body.
func Wrap(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			internalError(w, err)
		}
	}
}

// Recoverer converts a panic in a downstream handler into the same 500
// envelope Wrap uses. http.ErrAbortHandler is re-panicked so net/http can
// abort the connection. If the handler already started its response the
// status can no longer change, so the panic is only logged.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}
			log.Printf("panic: %v\n%s", rec, debug.Stack())
			if ww.Status() != 0 {
				return
			}
			internalError(ww, err)
		}()
		next.ServeHTTP(ww, r)
	})
}

func internalError(w http.ResponseWriter, err error) {
	log.Printf("Error: %v", err)
	jsonOK(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "Internal Server Error",
		Message: err.Error(),
	})
}
