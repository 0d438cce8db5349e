package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KoshakFSB/WCWD/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestClient_NotifyAdmins_UsesCurrentRoster(t *testing.T) {
	var delivered []int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg message
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		delivered = append(delivered, msg.UserID)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	admins := config.NewAdminState([]int64{200}, []int64{100})
	c := NewClient(srv.URL, admins)

	c.NotifyAdmins(context.Background(), "новая заявка")
	assert.ElementsMatch(t, []int64{100, 200}, delivered)

	// a broadcast after a roster change reaches the new admin too
	admins.Add(5)
	delivered = nil
	c.NotifyAdmins(context.Background(), "ещё одна")
	assert.ElementsMatch(t, []int64{5, 100, 200}, delivered)
}

func TestClient_NotifyUser_RelayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, config.NewAdminState(nil, nil))
	assert.Error(t, c.NotifyUser(context.Background(), 1, "текст"))
}
