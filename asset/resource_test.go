package asset

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLocalResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	res, err := NewResource(thisFile, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if res.IsRemote() {
		t.Fatal("expected local resource not to report as remote")
	}

	expDir := filepath.Dir(thisFile)
	if res.Dir() != expDir {
		t.Fatalf("expected resource dir to be %s; got %s", expDir, res.Dir())
	}
}

func TestHttpResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	thisDir := filepath.Dir(thisFile)

	server := httptest.NewServer(http.FileServer(http.Dir(thisDir)))
	defer server.Close()

	fetchUrl := server.URL + "/" + filepath.Base(thisFile)
	res, err := NewResource(fetchUrl, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if !res.IsRemote() {
		t.Fatal("expected http resource to report as remote")
	}
	if res.Dir() != "" {
		t.Fatalf("expected remote resource dir to be empty; got %s", res.Dir())
	}

	fetchUrl = server.URL + "/file-not-found.foo"
	expError := fmt.Sprintf("resource: could not fetch '%s': status %d", fetchUrl, 404)
	_, err = NewResource(fetchUrl, nil)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestRelativeResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	parent, err := NewResource(thisFile, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer parent.Close()

	res, err := NewResource("resource.go", parent)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	expPath := filepath.Dir(thisFile) + "/resource.go"
	if res.Path() != expPath {
		t.Fatalf("expected resource path to be %s; got %s", expPath, res.Path())
	}
}
