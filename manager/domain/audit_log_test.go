package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuditLogRejectsMismatchedDetails(t *testing.T) {
	now := time.Now().UTC()
	_, err := NewAuditLog("r1", AuditActionCreate, "u1", ReviewDetails{Notes: "ok"}, now)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewAuditLog("r1", AuditActionApprove, "u1", CreateDetails{}, now)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewAuditLog("r1", AuditActionReject, "u1", nil, now)
	assert.ErrorIs(t, err, ErrValidation)

	entry, err := NewAuditLog("r1", AuditActionReject, "u1", ReviewDetails{Notes: "no"}, now)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, AuditActionReject, entry.Action)
}

func TestDecodeAuditDetails(t *testing.T) {
	details, err := DecodeAuditDetails(AuditActionApprove, []byte(`{"notes":"ok"}`))
	require.NoError(t, err)
	assert.Equal(t, ReviewDetails{Notes: "ok"}, details)

	details, err = DecodeAuditDetails(AuditActionCreate, []byte(`{"request":{"id":"r1","status":"PENDING"}}`))
	require.NoError(t, err)
	create, ok := details.(CreateDetails)
	require.True(t, ok)
	assert.Equal(t, "r1", create.Request.ID)
	assert.Equal(t, StatusPending, create.Request.Status)

	_, err = DecodeAuditDetails(AuditAction("DELETE"), []byte(`{}`))
	assert.Error(t, err)

	_, err = DecodeAuditDetails(AuditActionReject, []byte(`not json`))
	assert.Error(t, err)
}

func TestAuditLogJSON(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	req := NewRequest("u1", CreateRequestInput{Application: "app", Environment: "dev", GroupRole: "admin"}, now)
	entry, err := NewAuditLog(req.ID, AuditActionCreate, "u1", CreateDetails{Request: *req}, now)
	require.NoError(t, err)

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	details, ok := raw["details"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details, "request")

	var decoded AuditLog
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, entry.ID, decoded.ID)
	assert.Equal(t, AuditActionCreate, decoded.Action)
	create, ok := decoded.Details.(CreateDetails)
	require.True(t, ok)
	assert.Equal(t, req.ID, create.Request.ID)
}
