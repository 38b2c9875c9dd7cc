package browser

import (
	"errors"
	"testing"
)

func TestOpen_PassesURLThrough(t *testing.T) {
	original := openURL
	defer func() { openURL = original }()

	var got string
	openURL = func(url string) error {
		got = url
		return nil
	}

	if err := Open("http://localhost:8080"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if got != "http://localhost:8080" {
		t.Errorf("expected URL %q, got %q", "http://localhost:8080", got)
	}
}

func TestOpen_PropagatesError(t *testing.T) {
	original := openURL
	defer func() { openURL = original }()

	wantErr := errors.New("no display available")
	openURL = func(url string) error {
		return wantErr
	}

	if err := Open("http://localhost:8080"); !errors.Is(err, wantErr) {
		t.Errorf("expected error %v, got %v", wantErr, err)
	}
}
