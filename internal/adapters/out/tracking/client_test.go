package tracking_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"freight/internal/adapters/out/tracking"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Lookup(t *testing.T) {
	t.Run("maps the provider payload onto a snapshot", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/tracking/MSCU1234567", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"code": "MSCU1234567",
				"vessel_name": "MSC Amara",
				"origin_port": "Guangzhou",
				"destination_port": "Lagos",
				"eta": "2024-12-01T08:00:00Z",
				"status": "In Transit"
			}`))
		}))
		defer server.Close()

		client := tracking.NewClient(server.URL, "test-key")
		snapshot, err := client.Lookup(t.Context(), "MSCU1234567")

		require.NoError(t, err)
		assert.Equal(t, "MSC Amara", snapshot.Name)
		assert.Equal(t, "Lagos", snapshot.Destination)
		assert.Equal(t, "In Transit", snapshot.Status)
		require.NotNil(t, snapshot.ETA)
	})

	t.Run("unknown carrier code surfaces as object not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := tracking.NewClient(server.URL, "test-key")
		_, err := client.Lookup(t.Context(), "UNKNOWN0000")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("provider errors are reported with the status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := tracking.NewClient(server.URL, "test-key")
		_, err := client.Lookup(t.Context(), "MSCU1234567")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}
