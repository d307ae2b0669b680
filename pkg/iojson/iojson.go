// Package iojson holds utilities for writing JSON output from the
// command line.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is the shape written when a command fails in JSON mode.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func jsonError(msg string, jsonErr error) string {
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(jsonErr.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// MarshalError builds an Error document. If marshaling fails a hand built
// blob carrying the marshal error is returned instead, which indicates a bug.
func MarshalError(msg string, data map[string]any) string {
	bits, err := json.MarshalIndent(Error{Message: msg, Data: data}, "", "  ")
	if err != nil {
		return jsonError(msg, err)
	}
	return string(bits)
}

// WriteError writes an Error document to w.
func WriteError(w io.Writer, msg string, data map[string]any) error {
	_, err := fmt.Fprintln(w, MarshalError(msg, data))
	return err
}

// WriteWith writes obj as indented JSON to w. Marshal failures are reported
// on ew.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, err = fmt.Fprintln(ew, jsonError("error marshaling in iojson.WriteWith", err))
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteLine writes obj as a single compact JSON line, for streaming one
// record per line.
func WriteLine(w io.Writer, obj any) error {
	return json.NewEncoder(w).Encode(obj)
}
