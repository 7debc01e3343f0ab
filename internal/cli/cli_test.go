package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type envelope[T any] struct {
	Data T `json:"data"`
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runCLIWithStderr(t, args...)
	return out, err
}

func runCLIWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROSTER_CONFIG", "")
	t.Setenv("ROSTER_FORMAT", "")

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSnapshot_AddsInOrderAndIgnoresBlank(t *testing.T) {
	out, err := runCLI(t, "snapshot", "--add", "Budi", "--add", "   ", "--add", "Siti")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	var got envelope[snapshotResult]
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Data.Added != 2 || got.Data.Ignored != 1 {
		t.Fatalf("unexpected counts: %+v", got.Data)
	}
	var names []string
	for _, e := range got.Data.Entries {
		names = append(names, e.Name)
	}
	if strings.Join(names, ",") != "Tanu,Tina,Tono,Budi,Siti" {
		t.Fatalf("unexpected entries: %v", names)
	}
	want := "[Entry(name=Tanu), Entry(name=Tina), Entry(name=Tono), Entry(name=Budi), Entry(name=Siti)]"
	if got.Data.Payload != want {
		t.Fatalf("expected payload %q, got %q", want, got.Data.Payload)
	}
}

func TestSnapshot_SeedFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[seed]\nnames = [\"Ani\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := runCLI(t, "--config", path, "snapshot")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if !strings.Contains(out, `"payload":"[Entry(name=Ani)]"`) {
		t.Fatalf("expected seed from config, got %s", out)
	}
}

func TestSnapshot_EDN(t *testing.T) {
	out, err := runCLI(t, "--format", "edn", "snapshot")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if !strings.HasPrefix(out, "{:data {:added 0 :entries [{:name \"Tanu\"}") {
		t.Fatalf("unexpected edn output: %s", out)
	}
}

func TestRoute_PayloadRoundTrip(t *testing.T) {
	payload := "[Entry(name=Tanu), Entry(name=A&B)]"
	out, err := runCLI(t, "route", "--payload", payload)
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	var got envelope[routeResult]
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Data.Screen != "result" || got.Data.ListData != payload {
		t.Fatalf("unexpected result: %+v", got.Data)
	}
	if !strings.HasPrefix(got.Data.Route, "result/?listData=") {
		t.Fatalf("unexpected route: %q", got.Data.Route)
	}
}

func TestRoute_RawWithoutListData(t *testing.T) {
	out, err := runCLI(t, "route", "--raw", "result")
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	if !strings.Contains(out, `"listData":""`) {
		t.Fatalf("expected empty listData, got %s", out)
	}
}

func TestRoute_Errors(t *testing.T) {
	if _, err := runCLI(t, "route", "--raw", "nowhere"); err == nil {
		t.Fatalf("expected unknown route error")
	}
	if _, err := runCLI(t, "route"); err == nil {
		t.Fatalf("expected missing flag error")
	}
	if _, err := runCLI(t, "route", "--raw", "result", "--payload", "x"); err == nil {
		t.Fatalf("expected mutually exclusive flag error")
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := runCLI(t, "--format", "yaml", "snapshot"); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestRoute_UnknownRoutePrintedOnce(t *testing.T) {
	_, stderr, err := runCLIWithStderr(t, "route", "--raw", "nowhere")
	if err == nil {
		t.Fatalf("expected unknown route error")
	}
	if n := strings.Count(stderr, err.Error()); n != 1 {
		t.Fatalf("expected error printed once, got %d times in %q", n, stderr)
	}
}
