package versionsvc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sir_venger/questionnaire/internal/metrics"
	"github.com/sir_venger/questionnaire/internal/models"
	"github.com/sir_venger/questionnaire/internal/repo/versions"
)

type failingExporter struct{ calls int }

func (f *failingExporter) Export(context.Context, []byte, time.Time) (string, error) {
	f.calls++
	return "", errors.New("disk full")
}

func newService(t *testing.T, exp Exporter) (*Versions, *metrics.Metrics, *observer.ObservedLogs) {
	t.Helper()
	store, err := versions.Open(filepath.Join(t.TempDir(), "versions"))
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	m := metrics.New(prometheus.NewRegistry())
	svc := New(Deps{
		Store:    store,
		Exporter: exp,
		Metrics:  m,
		Logger:   zap.New(core),
		GCTTL:    time.Hour,
		Now:      func() time.Time { return time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local) },
	})

	return svc, m, logs
}

func TestSubmit_CountsOutcomes(t *testing.T) {
	ctx := context.Background()
	svc, m, _ := newService(t, nil)

	_, err := svc.Submit(ctx, []byte(`{"a":1}`))
	require.ErrorIs(t, err, models.ErrNoDraft)

	_, err = svc.SaveDraft(ctx, []byte(`{"a":1}`))
	require.NoError(t, err)
	res, err := svc.Submit(ctx, []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Version)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues(opSubmit, "no_draft")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues(opSubmit, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LatestVersion))
}

func TestSubmit_ExportFailureDoesNotFailSubmit(t *testing.T) {
	ctx := context.Background()
	exp := &failingExporter{}
	svc, _, logs := newService(t, exp)

	_, err := svc.SaveDraft(ctx, []byte(`{"a":1}`))
	require.NoError(t, err)

	res, err := svc.Submit(ctx, []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Version)
	assert.Equal(t, 1, exp.calls)
	assert.Equal(t, 1, logs.FilterMessage("export failed").Len())
}

func TestSubmit_ExportsToDir(t *testing.T) {
	ctx := context.Background()
	dl := t.TempDir()
	svc, _, _ := newService(t, NewDirExporter(dl, ""))

	_, err := svc.SaveDraft(ctx, []byte(`{"a":1}`))
	require.NoError(t, err)
	_, err = svc.Submit(ctx, []byte(`{"a":1}`))
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dl, "questionnaire_response_20240305_140709.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(b))
}

func TestLatest_EmptyAndInvalidPayload(t *testing.T) {
	ctx := context.Background()
	svc, m, _ := newService(t, nil)

	_, err := svc.Latest(ctx)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues(opLatest, "empty")))

	_, err = svc.SaveDraft(ctx, []byte(`[1,2]`))
	assert.ErrorIs(t, err, models.ErrInvalidPayload)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues(opSave, "invalid")))
}

func TestReset_AndStoreReady(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t, nil)

	require.NoError(t, svc.Reset(ctx))
	assert.True(t, svc.StoreReady())

	n, err := svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
