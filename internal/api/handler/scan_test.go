package handler_test

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"encoding/pem"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkitools/keyscan/internal/api/dto"
	"github.com/pkitools/keyscan/internal/api/router"
	"github.com/pkitools/keyscan/internal/scan"
)

func newTestRouter() http.Handler {
	return router.New(&router.Config{Version: "test", Scan: scan.DefaultConfig()})
}

func postScan(t *testing.T, h http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func writePKITree(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	keyPath := filepath.Join(dir, "root.key")
	keyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	require.NoError(t, os.WriteFile(keyPath, keyPEM, 0600))

	template := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "Root"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "root.crt"), certPEM, 0644))

	return dir, keyPath
}

func TestScanEndpoint(t *testing.T) {
	dir, keyPath := writePKITree(t)

	rec := postScan(t, newTestRouter(), dto.ScanRequest{Paths: []string{dir}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp dto.ScanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 2)
	require.Empty(t, resp.Warnings)

	// Entries are sorted by description: certificate first, key second.
	require.Contains(t, resp.Entries[0].Description, "Certificate for CN=Root")
	require.Equal(t, keyPath, resp.Entries[1].Path)
	require.Equal(t, "Private key for key<CN=Root>", resp.Entries[1].Description)
}

func TestScanEndpointReportsWarnings(t *testing.T) {
	dir := t.TempDir()
	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("plain text\n"), 0644))

	rec := postScan(t, newTestRouter(), dto.ScanRequest{Paths: []string{dir}})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ScanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Empty(t, resp.Entries)
	require.Equal(t, []string{"WARNING: file " + notes + " could not be interpreted"}, resp.Warnings)
}

func TestScanEndpointRejectsInvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "invalid request body", resp.Error)
}

func TestScanEndpointRejectsEmptyPaths(t *testing.T) {
	rec := postScan(t, newTestRouter(), dto.ScanRequest{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "paths is required", resp.Error)
}

func TestScanEndpointMissingPath(t *testing.T) {
	rec := postScan(t, newTestRouter(), dto.ScanRequest{
		Paths: []string{filepath.Join(t.TempDir(), "nope")},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)
	require.Equal(t, "test", resp.Version)
}
