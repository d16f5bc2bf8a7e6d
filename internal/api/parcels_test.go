package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createRecipient makes a recipient through the API and returns its id
func createRecipient(t *testing.T, r http.Handler, cookie *http.Cookie) uint {
	t.Helper()
	w := performRequest(r, http.MethodPost, "/recipients",
		`{"recipient_full_name":"Grace Hopper","phone_number":"0700000000"}`, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created.ID
}

func TestCreateParcelForcesSessionOwner(t *testing.T) {
	r, _ := newTestServer(t)
	cookie, userID := signupUser(t, r, "sender@b.com")
	recipientID := createRecipient(t, r, cookie)

	// A client-supplied user_id must be ignored outright
	body := fmt.Sprintf(`{"user_id":9999,"recipient_id":%d,"length":10,"width":5,"height":4,"weight":1200,"status":"pending"}`, recipientID)
	w := performRequest(r, http.MethodPost, "/parcels", body, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var parcel struct {
		UserID         uint   `json:"user_id"`
		TrackingNumber string `json:"tracking_number"`
		Status         string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parcel))
	assert.Equal(t, userID, parcel.UserID)
	assert.Len(t, parcel.TrackingNumber, 32)
	assert.Equal(t, "pending", parcel.Status)
}

func TestCreateParcelUnknownRecipient(t *testing.T) {
	r, _ := newTestServer(t)
	cookie, _ := signupUser(t, r, "sender@b.com")

	w := performRequest(r, http.MethodPost, "/parcels", `{"recipient_id":424242}`, cookie)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Recipient not found"}`, w.Body.String())
}

func TestParcelTrackingNumbersDiffer(t *testing.T) {
	r, _ := newTestServer(t)
	cookie, _ := signupUser(t, r, "sender@b.com")
	recipientID := createRecipient(t, r, cookie)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		body := fmt.Sprintf(`{"recipient_id":%d,"weight":100}`, recipientID)
		w := performRequest(r, http.MethodPost, "/parcels", body, cookie)
		require.Equal(t, http.StatusCreated, w.Code)
		var parcel struct {
			TrackingNumber string `json:"tracking_number"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parcel))
		assert.False(t, seen[parcel.TrackingNumber], "tracking number reused")
		seen[parcel.TrackingNumber] = true
	}
}

func TestUpdateParcelCannotMoveOwnerOrToken(t *testing.T) {
	r, _ := newTestServer(t)
	cookie, userID := signupUser(t, r, "sender@b.com")
	recipientID := createRecipient(t, r, cookie)

	w := performRequest(r, http.MethodPost, "/parcels",
		fmt.Sprintf(`{"recipient_id":%d,"weight":100}`, recipientID), cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID             uint   `json:"id"`
		TrackingNumber string `json:"tracking_number"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// user_id and tracking_number are not patchable columns
	patch := `{"user_id":9999,"tracking_number":"hacked","status":"in transit"}`
	w = performRequest(r, http.MethodPatch, fmt.Sprintf("/parcels/%d", created.ID), patch, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodGet, fmt.Sprintf("/parcels/%d", created.ID), "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		UserID         uint   `json:"user_id"`
		TrackingNumber string `json:"tracking_number"`
		Status         string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, created.TrackingNumber, got.TrackingNumber)
	assert.Equal(t, "in transit", got.Status)
}

func TestDeleteParcelTwice(t *testing.T) {
	r, _ := newTestServer(t)
	cookie, _ := signupUser(t, r, "sender@b.com")
	recipientID := createRecipient(t, r, cookie)

	w := performRequest(r, http.MethodPost, "/parcels",
		fmt.Sprintf(`{"recipient_id":%d}`, recipientID), cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/parcels/%d", created.ID)
	w = performRequest(r, http.MethodDelete, path, "", cookie)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Second delete: the row is gone
	w = performRequest(r, http.MethodDelete, path, "", cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Parcel not found"}`, w.Body.String())
}
