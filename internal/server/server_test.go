package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/customer-account-ledger/internal/ledger"
	"github.com/sheikh-saqib/customer-account-ledger/internal/models"
	"github.com/sheikh-saqib/customer-account-ledger/internal/server"
	"github.com/sheikh-saqib/customer-account-ledger/internal/storage/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := ledger.NewService(memory.NewMemoryAccountStore(), nil, nil, nil)
	ts := httptest.NewServer(server.New(svc, nil).Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func createAccount(t *testing.T, ts *httptest.Server, id string) models.Account {
	t.Helper()
	resp := postJSON(t, ts.URL+"/createCustomerAccount",
		`{"customerAccountId":"`+id+`","firstName":"Jane","lastName":"Doe"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var account models.Account
	decodeBody(t, resp, &account)
	return account
}

func TestCreateAndFetchAccount(t *testing.T) {
	ts := newTestServer(t)

	account := createAccount(t, ts, "A1")
	assert.Equal(t, "A1", account.CustomerAccountID)
	assert.Len(t, account.Ledgers, 6)

	resp, err := http.Get(ts.URL + "/getCustomerAccountData?customerAccountId=A1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.Account
	decodeBody(t, resp, &fetched)
	assert.Equal(t, "Jane", fetched.FirstName)
	assert.Equal(t, "Doe", fetched.LastName)
}

func TestCreateAccountErrors(t *testing.T) {
	ts := newTestServer(t)
	createAccount(t, ts, "A1")

	t.Run("missing firstName", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/createCustomerAccount",
			`{"customerAccountId":"A2","lastName":"Doe"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate id", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/createCustomerAccount",
			`{"customerAccountId":"A1","firstName":"Jane","lastName":"Doe"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/createCustomerAccount", `{`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListAccountIDs(t *testing.T) {
	ts := newTestServer(t)
	createAccount(t, ts, "A1")
	createAccount(t, ts, "A2")

	resp, err := http.Get(ts.URL + "/getCustomerAccountIds")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ids []map[string]string
	decodeBody(t, resp, &ids)
	assert.Equal(t, []map[string]string{
		{"customerAccountId": "A1"},
		{"customerAccountId": "A2"},
	}, ids)
}

func TestBalanceLifecycle(t *testing.T) {
	ts := newTestServer(t)
	createAccount(t, ts, "A1")

	// Append with newBalance as a JSON number.
	resp := postJSON(t, ts.URL+"/updateLedgerBalance",
		`{"customerAccountId":"A1","ledgerName":"principal","newBalance":500}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var appended struct {
		Entry models.Entry `json:"entry"`
	}
	decodeBody(t, resp, &appended)
	assert.Equal(t, int64(500), appended.Entry.Balance)

	// Append with newBalance as a numeric string.
	resp = postJSON(t, ts.URL+"/updateLedgerBalance",
		`{"customerAccountId":"A1","ledgerName":"principal","newBalance":"300"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(ts.URL + "/getCurrentLedgerBalances?customerAccountId=A1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var balances map[string]int64
	decodeBody(t, resp, &balances)
	assert.Equal(t, int64(300), balances["principal"])
	assert.Equal(t, int64(0), balances["lateFees"])

	resp, err = http.Get(ts.URL + "/getPreviousLedgerBalance?customerAccountId=A1&ledgerName=principal")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var previous map[string]int64
	decodeBody(t, resp, &previous)
	assert.Equal(t, int64(500), previous["principal"])

	// As of the first append's timestamp, its balance is in effect.
	target := appended.Entry.Timestamp.Format(time.RFC3339Nano)
	resp, err = http.Get(ts.URL + "/getLedgerBalanceByDate?customerAccountId=A1&ledgerName=principal&timestamp=" + target)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var asOf map[string]any
	decodeBody(t, resp, &asOf)
	assert.Equal(t, float64(500), asOf["principal"])
	assert.NotEmpty(t, asOf["timestamp"])
}

func TestQueryErrors(t *testing.T) {
	ts := newTestServer(t)
	createAccount(t, ts, "A1")

	for _, tc := range []struct {
		description string
		path        string
		wantStatus  int
	}{
		{
			description: "unknown account",
			path:        "/getCurrentLedgerBalances?customerAccountId=nope",
			wantStatus:  http.StatusNotFound,
		},
		{
			description: "missing account id",
			path:        "/getCurrentLedgerBalances",
			wantStatus:  http.StatusBadRequest,
		},
		{
			description: "unknown ledger",
			path:        "/getPreviousLedgerBalance?customerAccountId=A1&ledgerName=nonexistent",
			wantStatus:  http.StatusNotFound,
		},
		{
			description: "missing ledger name",
			path:        "/getPreviousLedgerBalance?customerAccountId=A1",
			wantStatus:  http.StatusBadRequest,
		},
		{
			description: "unparsable timestamp",
			path:        "/getLedgerBalanceByDate?customerAccountId=A1&ledgerName=principal&timestamp=garbage",
			wantStatus:  http.StatusBadRequest,
		},
		{
			description: "target predates history",
			path:        "/getLedgerBalanceByDate?customerAccountId=A1&ledgerName=principal&timestamp=2000-01-01",
			wantStatus:  http.StatusNotFound,
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tc.path)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestUpdateLedgerBalanceErrors(t *testing.T) {
	ts := newTestServer(t)
	createAccount(t, ts, "A1")

	for _, tc := range []struct {
		description string
		body        string
		wantStatus  int
	}{
		{
			description: "non-numeric balance",
			body:        `{"customerAccountId":"A1","ledgerName":"principal","newBalance":"abc"}`,
			wantStatus:  http.StatusBadRequest,
		},
		{
			description: "missing balance",
			body:        `{"customerAccountId":"A1","ledgerName":"principal"}`,
			wantStatus:  http.StatusBadRequest,
		},
		{
			description: "unknown ledger",
			body:        `{"customerAccountId":"A1","ledgerName":"nonexistent","newBalance":1}`,
			wantStatus:  http.StatusNotFound,
		},
		{
			description: "unknown account",
			body:        `{"customerAccountId":"nope","ledgerName":"principal","newBalance":1}`,
			wantStatus:  http.StatusNotFound,
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/updateLedgerBalance", tc.body)
			defer resp.Body.Close()
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
