package integration

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/sir_venger/questionnaire/internal/app/versionhttp"
	"github.com/sir_venger/questionnaire/internal/repo/versions"
	"github.com/sir_venger/questionnaire/internal/usecase/versionsvc"
	"github.com/sir_venger/questionnaire/pkg/versionclient"
)

func newServer(t *testing.T, exporter versionsvc.Exporter) (versionclient.Client, string) {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "versions")

	store, err := versions.Open(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	svc := versionsvc.New(versionsvc.Deps{Store: store, Exporter: exporter, GCTTL: time.Hour})
	srv := httptest.NewServer(versionhttp.New(svc, versionhttp.Options{FrontendDir: filepath.Join(root, "frontend")}))
	t.Cleanup(srv.Close)

	return versionclient.New(srv.URL), dir
}

func TestSubmitFlow_VersionsAreSequential(t *testing.T) {
	ctx := context.Background()
	cli, dir := newServer(t, nil)

	for i := 1; i <= 3; i++ {
		payload := []byte(`{"round":` + strconv.Itoa(i) + `}`)
		if _, err := cli.SaveDraft(ctx, payload); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		res, err := cli.Submit(ctx, payload)
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if res.Status != "success" || res.Version != i {
			t.Fatalf("submit %d: got %+v", i, res)
		}
	}

	latest, err := cli.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if !latest.Exists || latest.VersionFile != "v3.json" {
		t.Fatalf("unexpected latest: %+v", latest)
	}

	var data map[string]int
	if err := json.Unmarshal(latest.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data["round"] != 3 {
		t.Fatalf("latest data = %v", data)
	}

	if _, err := os.Stat(filepath.Join(dir, "v0.json")); !os.IsNotExist(err) {
		t.Fatalf("draft must be removed after submit")
	}
}

func TestSubmitFlow_NoDraft(t *testing.T) {
	ctx := context.Background()
	cli, dir := newServer(t, nil)

	_, err := cli.Submit(ctx, []byte(`{"q1":"a"}`))
	var se *versionclient.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected status error, got %v", err)
	}
	if se.Code != http.StatusBadRequest || se.Detail != "No draft to submit" {
		t.Fatalf("unexpected error: %+v", se)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("no files expected, got %d", len(entries))
	}
}

func TestSubmitFlow_ExportsCopy(t *testing.T) {
	ctx := context.Background()
	downloads := t.TempDir()
	cli, _ := newServer(t, versionsvc.NewDirExporter(downloads, ""))

	if _, err := cli.SaveDraft(ctx, []byte(`{"q1":"a"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := cli.Submit(ctx, []byte(`{"q1":"a"}`)); err != nil {
		t.Fatalf("submit: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(downloads, "questionnaire_response_*.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected one exported file, got %v", matches)
	}
}

func TestHealthAndReset(t *testing.T) {
	ctx := context.Background()
	cli, _ := newServer(t, nil)

	h, err := cli.Health(ctx)
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if h.Status != "ok" || h.FrontendExists || !h.VersionsWritable {
		t.Fatalf("unexpected health: %+v", h)
	}

	r, err := cli.Reset(ctx)
	if err != nil || !r.Reset {
		t.Fatalf("reset: %+v %v", r, err)
	}
}
