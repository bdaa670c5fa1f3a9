package tools

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// maxRecordedErrors bounds SessionState.Errors for long-running REPL sessions.
const maxRecordedErrors = 50

// SessionState tracks tool usage for the lifetime of the process.
type SessionState struct {
	mu         sync.RWMutex
	StartTime  time.Time      `json:"start_time"`
	ToolCalls  map[string]int `json:"tool_calls"`
	Failures   map[string]int `json:"failures"`
	Errors     []string       `json:"errors"`
	LastResult string         `json:"last_result"`
}

var (
	globalSessionState *SessionState
	sessionOnce        sync.Once
)

// getSessionStateAsJSON returns the current session state as JSON
func getSessionStateAsJSON(args map[string]interface{}) (string, error) {
	state := getSessionState()

	state.mu.RLock()
	data, err := json.MarshalIndent(state, "", "  ")
	state.mu.RUnlock()
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal session state")
	}

	return string(data), nil
}

// resetSession resets the session state
func resetSession(args map[string]interface{}) (string, error) {
	getSessionState().Reset()
	return "Session state has been reset", nil
}

// GetSessionState returns the global session state instance
func GetSessionState() *SessionState {
	return getSessionState()
}

func getSessionState() *SessionState {
	sessionOnce.Do(func() {
		globalSessionState = &SessionState{
			StartTime: time.Now(),
			ToolCalls: make(map[string]int),
			Failures:  make(map[string]int),
			Errors:    []string{},
		}
	})

	return globalSessionState
}

// RecordToolUse records that a tool was used
func (s *SessionState) RecordToolUse(toolName string, success bool, result string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ToolCalls[toolName]++
	s.LastResult = result

	if !success {
		s.Failures[toolName]++
		s.Errors = append(s.Errors, fmt.Sprintf("%s failed: %s", toolName, result))
		if len(s.Errors) > maxRecordedErrors {
			s.Errors = s.Errors[len(s.Errors)-maxRecordedErrors:]
		}
	}
}

// Calls returns how many times toolName ran and how many of those failed.
func (s *SessionState) Calls(toolName string) (total, failed int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ToolCalls[toolName], s.Failures[toolName]
}

// Reset resets the session state
func (s *SessionState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.StartTime = time.Now()
	s.ToolCalls = make(map[string]int)
	s.Failures = make(map[string]int)
	s.Errors = []string{}
	s.LastResult = ""
}
