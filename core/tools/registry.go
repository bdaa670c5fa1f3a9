package tools

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

type ToolFunc func(args map[string]interface{}) (string, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]ToolFunc)
)

func Register(name string, fn ToolFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

func Execute(name string, args map[string]interface{}) (string, error) {
	registryMu.RLock()
	fn, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return "", errors.Errorf("tool %s not found", name)
	}

	if args == nil {
		args = map[string]interface{}{}
	}

	result, err := fn(args)

	// session tools are not counted, otherwise reading the stats would change them
	if name != "session_stats" && name != "reset_session" {
		msg := result
		if err != nil {
			msg = err.Error()
		}
		getSessionState().RecordToolUse(name, err == nil, msg)
	}

	return result, err
}

// List returns registered tool names in sorted order.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ClearRegistry removes every registered tool.
func ClearRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]ToolFunc)
}

// Registry adapts the package-level functions to an interface value.
type Registry struct{}

func (Registry) Execute(name string, args map[string]interface{}) (string, error) {
	return Execute(name, args)
}

func (Registry) List() []string {
	return List()
}
