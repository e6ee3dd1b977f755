// file: internals/features/billing/subscriptions/service/webhook_test.go
package service

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub_backend/internals/features/billing/subscriptions/model"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_Valid(t *testing.T) {
	body := []byte(`{"event":"charge.success"}`)
	assert.True(t, VerifySignature("sk_test_abc", body, sign("sk_test_abc", body)))
}

func TestVerifySignature_TamperedBody(t *testing.T) {
	body := []byte(`{"event":"charge.success"}`)
	sig := sign("sk_test_abc", body)
	tampered := []byte(`{"event":"charge.success","amount":1}`)
	assert.False(t, VerifySignature("sk_test_abc", tampered, sig))
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	body := []byte(`{"event":"charge.success"}`)
	assert.False(t, VerifySignature("sk_test_abc", body, sign("sk_other", body)))
}

// Secret kosong = tolak semua, jangan pernah fail-open di sini.
func TestVerifySignature_EmptySecretOrSignature(t *testing.T) {
	body := []byte(`{}`)
	assert.False(t, VerifySignature("", body, sign("", body)))
	assert.False(t, VerifySignature("sk_test_abc", body, ""))
}

func TestParseWebhook(t *testing.T) {
	ev, err := ParseWebhook([]byte(`{"event":"charge.success","data":{"reference":"SUB-123","status":"success","amount":500000}}`))
	require.NoError(t, err)
	assert.Equal(t, "charge.success", ev.Event)
	assert.Equal(t, "SUB-123", ev.Data.Reference)
	assert.Equal(t, int64(500000), ev.Data.AmountKobo)
}

func TestParseWebhook_Malformed(t *testing.T) {
	_, err := ParseWebhook([]byte(`not-json`))
	assert.Error(t, err)
}

func TestPlanMonths(t *testing.T) {
	// termly = 3 bulan, yearly = 12 — dipakai saat memperpanjang jendela
	assert.Equal(t, 3, model.PlanMonths(model.PlanTermly))
	assert.Equal(t, 12, model.PlanMonths(model.PlanYearly))
	assert.Equal(t, 0, model.PlanMonths("weekly"))
}
