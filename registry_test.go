// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"
)

func testFactory(p Presenter) PresenterFactory {
	return func(PresenterOptions) (Presenter, error) {
		return p, nil
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register("alpha", 10, testFactory(plainPresenter{}), nil)

	entry, ok := r.Get("alpha")
	if !ok {
		t.Fatal("Get(alpha) not found")
	}
	if entry.Name != "alpha" || entry.Priority != 10 {
		t.Errorf("entry = %+v, want name=alpha priority=10", entry)
	}
	if !entry.Available() {
		t.Error("nil available func should default to always available")
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) found an unregistered backend")
	}
}

func TestRegistryListSortedByPriority(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 1, testFactory(plainPresenter{}), nil)
	r.Register("high", 100, testFactory(plainPresenter{}), nil)
	r.Register("mid", 10, testFactory(plainPresenter{}), nil)

	got := r.List()
	want := []string{"high", "mid", "low"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistryAvailableFilters(t *testing.T) {
	r := NewRegistry()
	r.Register("on", 10, testFactory(plainPresenter{}), func() bool { return true })
	r.Register("off", 100, testFactory(plainPresenter{}), func() bool { return false })

	got := r.Available()
	if len(got) != 1 || got[0] != "on" {
		t.Errorf("Available() = %v, want [on]", got)
	}
}

func TestRegistryNewPresenterPicksHighestAvailable(t *testing.T) {
	r := NewRegistry()
	want := &mockPresenter{}
	r.Register("fallback", 1, testFactory(&mockPresenter{}), nil)
	r.Register("preferred", 100, testFactory(want), nil)

	p, err := r.NewPresenter(PresenterOptions{})
	if err != nil {
		t.Fatalf("NewPresenter() error = %v", err)
	}
	if p != want {
		t.Errorf("NewPresenter() = %v, want the preferred backend's presenter", p)
	}
}

func TestRegistryNewPresenterEmpty(t *testing.T) {
	r := NewRegistry()
	if _, err := r.NewPresenter(PresenterOptions{}); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("NewPresenter() error = %v, want ErrNoBackendAvailable", err)
	}
}

func TestRegistryNewPresenterByNameErrors(t *testing.T) {
	r := NewRegistry()
	r.Register("down", 10, testFactory(plainPresenter{}), func() bool { return false })

	_, err := r.NewPresenterByName("missing", PresenterOptions{})
	var notFound *BackendNotFoundError
	if !errors.As(err, &notFound) || notFound.Name != "missing" {
		t.Errorf("error = %v, want BackendNotFoundError{missing}", err)
	}

	_, err = r.NewPresenterByName("down", PresenterOptions{})
	var unavailable *BackendUnavailableError
	if !errors.As(err, &unavailable) || unavailable.Name != "down" {
		t.Errorf("error = %v, want BackendUnavailableError{down}", err)
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("gone", 10, testFactory(plainPresenter{}), nil)
	r.Unregister("gone")
	if _, ok := r.Get("gone"); ok {
		t.Error("Get found an unregistered backend")
	}
}

func TestRegistryFactoryErrorFallsThrough(t *testing.T) {
	r := NewRegistry()
	factoryErr := errors.New("no device")
	r.Register("broken", 100, func(PresenterOptions) (Presenter, error) {
		return nil, factoryErr
	}, nil)
	r.Register("working", 10, testFactory(plainPresenter{}), nil)

	p, err := r.NewPresenter(PresenterOptions{})
	if err != nil {
		t.Fatalf("NewPresenter() error = %v, want fallback to working backend", err)
	}
	if p == nil {
		t.Fatal("NewPresenter() = nil presenter")
	}
}
