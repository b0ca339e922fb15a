package main

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllViolations(t *testing.T) {
	r, mock := newTestRouter(t)

	now := time.Now().Truncate(time.Second)
	rows := sqlmock.NewRows([]string{"id", "camera_location", "detected_gear", "missing_gear", "timestamp"}).
		AddRow(2, "Machine Area", "Hardhat, Safety Vest", "Mask", now).
		AddRow(1, "Gate Entry", "Mask", "Hardhat, Safety Vest", now.Add(-1*time.Hour))
	mock.ExpectQuery("SELECT id, camera_location, detected_gear, missing_gear, timestamp FROM safety_violations ORDER BY timestamp DESC").
		WillReturnRows(rows)

	w := doRequest(r, http.MethodGet, "/api/violations", nil, tokenFor(t, 1, "admin"))
	require.Equal(t, http.StatusOK, w.Code)

	var violations []SafetyViolation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &violations))
	require.Len(t, violations, 2)

	// Newest first, as the query orders them.
	assert.Equal(t, 2, violations[0].ID)
	assert.Equal(t, "Machine Area", violations[0].CameraLocation)
	assert.Equal(t, "Mask", violations[0].MissingGear)
	assert.Equal(t, 1, violations[1].ID)
	assert.True(t, violations[0].Timestamp.After(violations[1].Timestamp))
}

func TestGetAllViolationsEmpty(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT id, camera_location, detected_gear, missing_gear, timestamp FROM safety_violations").
		WillReturnRows(sqlmock.NewRows([]string{"id", "camera_location", "detected_gear", "missing_gear", "timestamp"}))

	w := doRequest(r, http.MethodGet, "/api/violations", nil, tokenFor(t, 1, "manager"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestViolationsForbiddenForWorker(t *testing.T) {
	r, mock := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/violations", nil, tokenFor(t, 3, "worker"))

	require.Equal(t, http.StatusForbidden, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Access denied", body["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestViolationsNoToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/violations", nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// Full worker-role scenario: register, log in, then hit a route outside
// the worker allow-list.
func TestWorkerLoginCannotListViolations(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT id, email, password, role FROM users WHERE email = ?").
		WithArgs("a@b.com").
		WillReturnRows(userRow(5, "a@b.com", hashFor(t, "x"), "worker"))

	w := doRequest(r, http.MethodPost, "/login", map[string]string{"email": "a@b.com", "password": "x"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token := decodeBody(t, w)["token"].(string)

	w = doRequest(r, http.MethodGet, "/api/violations", nil, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
