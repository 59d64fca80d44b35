package isp

import (
	"bytes"
	"reflect"
	"testing"
)

func TestHooksUseConfiguredPort(t *testing.T) {
	r := &recorder{}
	var out bytes.Buffer
	hooks := NewHooks(
		NewResolver(lister([]string{"/dev/ttyS0"}, nil), &out),
		newTestSequencer(r, &out),
	)
	env := fakeEnv{UploadPortVar: "/dev/ttyUSB1"}

	if res := hooks.PreUpload(env); !res.OK() || res.Sequence != "boot" {
		t.Errorf("PreUpload() = %+v", res)
	}
	if res := hooks.PostUpload(env); !res.OK() || res.Sequence != "normal" {
		t.Errorf("PostUpload() = %+v", res)
	}

	if r.events[0] != "open /dev/ttyUSB1 115200 1s" {
		t.Errorf("Expected configured port to be opened, got %v", r.events)
	}
}

func TestHooksResolveOnEveryCall(t *testing.T) {
	calls := 0
	ports := [][]string{{"/dev/ttyUSB0"}, {"/dev/ttyUSB1"}}
	list := func() ([]string, error) {
		p := ports[calls]
		calls++
		return p, nil
	}

	r := &recorder{}
	var out bytes.Buffer
	hooks := NewHooks(NewResolver(list, &out), newTestSequencer(r, &out))

	hooks.PreUpload(fakeEnv{})
	hooks.PostUpload(fakeEnv{})

	if calls != 2 {
		t.Errorf("Expected 2 enumerations, got %d", calls)
	}

	var opened []string
	for _, e := range r.events {
		if len(e) > 4 && e[:4] == "open" {
			opened = append(opened, e)
		}
	}
	expected := []string{"open /dev/ttyUSB0 115200 1s", "open /dev/ttyUSB1 115200 1s"}
	if !reflect.DeepEqual(opened, expected) {
		t.Errorf("opened = %v, expected %v", opened, expected)
	}
}

func TestHooksSkipWithoutPort(t *testing.T) {
	r := &recorder{}
	var out bytes.Buffer
	hooks := NewHooks(NewResolver(lister(nil, nil), &out), newTestSequencer(r, &out))

	pre := hooks.PreUpload(fakeEnv{})
	post := hooks.PostUpload(fakeEnv{})

	if !pre.Skipped || !post.Skipped {
		t.Errorf("Expected skipped results, got %+v and %+v", pre, post)
	}
	if pre.Sequence != "boot" || post.Sequence != "normal" {
		t.Errorf("Unexpected sequence names %q, %q", pre.Sequence, post.Sequence)
	}
	if len(r.events) != 0 {
		t.Errorf("Expected no I/O, got %v", r.events)
	}
}
