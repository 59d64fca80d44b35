package isp

import (
	"errors"
	"fmt"
	"time"
)

// recorder logs every open, line change, sleep and close in call order
type recorder struct {
	events   []string
	openErr  error
	failOn   string // event name whose call returns errInjected
	closeErr error
}

var errInjected = errors.New("injected failure")

func (r *recorder) Open(port string, baudRate int, readTimeout time.Duration) (Lines, error) {
	r.events = append(r.events, fmt.Sprintf("open %s %d %v", port, baudRate, readTimeout))
	if r.openErr != nil {
		return nil, r.openErr
	}
	return &mockLines{r: r}, nil
}

func (r *recorder) sleep(d time.Duration) {
	r.events = append(r.events, fmt.Sprintf("sleep %v", d))
}

type mockLines struct {
	r *recorder
}

func (m *mockLines) record(name string, state bool) error {
	event := fmt.Sprintf("%s=%v", name, state)
	m.r.events = append(m.r.events, event)
	if m.r.failOn == event {
		return errInjected
	}
	return nil
}

func (m *mockLines) SetDTR(state bool) error { return m.record("DTR", state) }
func (m *mockLines) SetRTS(state bool) error { return m.record("RTS", state) }

func (m *mockLines) Close() error {
	m.r.events = append(m.r.events, "close")
	return m.r.closeErr
}

// fakeEnv is a map-backed Environment
type fakeEnv map[string]string

func (e fakeEnv) Subst(s string) string { return e[s] }

func lister(ports []string, err error) PortLister {
	return func() ([]string, error) { return ports, err }
}
