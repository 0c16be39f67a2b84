// Package session keeps independent interpreter sessions for hosts that
// serve more than one caller at a time.
package session

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"alisp/eval"

	"github.com/google/uuid"
)

var ErrNoSession = errors.New("no such session")

// entry is one session. Evaluation inside a session is single threaded,
// so every use holds mu.
type entry struct {
	mu sync.Mutex
	ic *eval.InteractiveContext
}

type Manager struct {
	// MaxDepth is passed to the Context of every new session.
	MaxDepth int
	// Out receives print output of every new session.
	Out io.Writer

	mu        sync.Mutex
	sessions  map[string]*entry
	defaultID string
}

func NewManager() *Manager {
	return &Manager{
		MaxDepth: eval.DefaultMaxDepth,
		Out:      io.Discard,
		sessions: map[string]*entry{},
	}
}

func (m *Manager) newEntry() *entry {
	ic := eval.NewInteractiveContext()
	ic.Context().MaxDepth = m.MaxDepth
	ic.SetOutput(m.Out)
	return &entry{ic: ic}
}

// New creates a session with a fresh global environment and returns its id.
func (m *Manager) New() string {
	e := m.newEntry()
	id := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = e
	return id
}

// Default returns the id of the session used by callers that did not
// ask for one, creating it on first use.
func (m *Manager) Default() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[m.defaultID]; ok {
		return m.defaultID
	}
	m.defaultID = uuid.NewString()
	m.sessions[m.defaultID] = m.newEntry()
	return m.defaultID
}

func (m *Manager) get(id string) (*entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSession, id)
	}
	return e, nil
}

// Eval runs source as one line of input in session id and returns the
// printed result. Language errors are results, not Go errors: only a
// missing session or a lex/parse failure gives a non-nil error.
func (m *Manager) Eval(id, source string) (string, error) {
	e, err := m.get(id)
	if err != nil {
		return "", err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	v, errs := e.ic.Run(source)
	if errs != nil {
		return "", errors.Join(errs...)
	}
	return eval.Inspect(v), nil
}

// Names lists the globally bound names of session id.
func (m *Manager) Names(id string) ([]string, error) {
	e, err := m.get(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ic.Names(), nil
}

func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNoSession, id)
	}
	delete(m.sessions, id)
	if id == m.defaultID {
		m.defaultID = ""
	}
	return nil
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
