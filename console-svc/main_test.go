package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"overcooked-console/console-svc/internal/transport"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportLocation(t *testing.T) {
	log := logrus.NewEntry(logrus.New())

	assert.Equal(t, time.UTC, exportLocation("UTC", log))
	assert.Equal(t, time.UTC, exportLocation("Mars/Olympus_Mons", log))
}

func TestBackendFactorySendsToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	factory := backendFactory(transport.NewClient(srv.URL, srv.Client(), nil))

	_, err := factory("tok").ListOrders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", gotAuth)
}
