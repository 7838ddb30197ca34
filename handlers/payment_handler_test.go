package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/centraladventures/trips_backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const callbackPath = "/api/v1/payments/mpesa/callback"

func newCallbackApp() *fiber.App {
	app := fiber.New()
	app.Post(callbackPath, HandleMpesaCallback)
	return app
}

func successCallbackBody(checkoutRequestID string) string {
	return fmt.Sprintf(`{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "mr-1001",
				"CheckoutRequestID": %q,
				"ResultCode": 0,
				"ResultDesc": "The service request is processed successfully.",
				"CallbackMetadata": {
					"Item": [
						{"Name": "Amount", "Value": 5000},
						{"Name": "MpesaReceiptNumber", "Value": "ABC123"},
						{"Name": "PhoneNumber", "Value": 254712345678}
					]
				}
			}
		}
	}`, checkoutRequestID)
}

func postCallback(t *testing.T, app *fiber.App, body string, token string) *http.Response {
	t.Helper()

	target := callbackPath
	if token != "" {
		target += "?token=" + token
	}
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestHandleMpesaCallback_SuccessMarksBookingPaid(t *testing.T) {
	t.Setenv("MPESA_CALLBACK_SECRET", "cb-secret")
	mock := newMockDB(t)

	// The transition is conditional on the stored CheckoutRequestID and the
	// booking still being pending.
	mock.ExpectExec(`UPDATE "bookings" SET .+ WHERE checkout_request_id = \$\d+ AND status = \$\d+`).
		WithArgs("ABC123", models.BookingStatusPaid, sqlmock.AnyArg(), "ws_CO_12345", models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	app := newCallbackApp()
	resp := postCallback(t, app, successCallbackBody("ws_CO_12345"), "cb-secret")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"ResultCode":0`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleMpesaCallback_DuplicateDeliveryIsNoOp(t *testing.T) {
	t.Setenv("MPESA_CALLBACK_SECRET", "cb-secret")
	mock := newMockDB(t)

	// The conditional update matches nothing the second time around.
	mock.ExpectExec(`UPDATE "bookings" SET .+ WHERE checkout_request_id = \$\d+ AND status = \$\d+`).
		WithArgs("ABC123", models.BookingStatusPaid, sqlmock.AnyArg(), "ws_CO_12345", models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	app := newCallbackApp()
	resp := postCallback(t, app, successCallbackBody("ws_CO_12345"), "cb-secret")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleMpesaCallback_FailureCodeMarksBookingFailed(t *testing.T) {
	t.Setenv("MPESA_CALLBACK_SECRET", "cb-secret")
	mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "bookings" SET .+ WHERE checkout_request_id = \$\d+ AND status = \$\d+`).
		WithArgs(models.BookingStatusFailed, sqlmock.AnyArg(), "ws_CO_12345", models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body := `{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "mr-1001",
				"CheckoutRequestID": "ws_CO_12345",
				"ResultCode": 1032,
				"ResultDesc": "Request cancelled by user"
			}
		}
	}`

	app := newCallbackApp()
	resp := postCallback(t, app, body, "cb-secret")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleMpesaCallback_RejectsBadToken(t *testing.T) {
	t.Setenv("MPESA_CALLBACK_SECRET", "cb-secret")
	mock := newMockDB(t)

	app := newCallbackApp()
	resp := postCallback(t, app, successCallbackBody("ws_CO_12345"), "wrong-secret")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleMpesaCallback_RejectsMalformedPayload(t *testing.T) {
	t.Setenv("MPESA_CALLBACK_SECRET", "cb-secret")
	mock := newMockDB(t)

	app := newCallbackApp()
	resp := postCallback(t, app, `{"Body": "not a callback"`, "cb-secret")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleMpesaCallback_RejectsMissingReceipt(t *testing.T) {
	t.Setenv("MPESA_CALLBACK_SECRET", "cb-secret")
	mock := newMockDB(t)

	body := `{
		"Body": {
			"stkCallback": {
				"CheckoutRequestID": "ws_CO_12345",
				"ResultCode": 0,
				"ResultDesc": "ok",
				"CallbackMetadata": {"Item": [{"Name": "Amount", "Value": 5000}]}
			}
		}
	}`

	app := newCallbackApp()
	resp := postCallback(t, app, body, "cb-secret")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExtractCallbackMetadata(t *testing.T) {
	var payload MpesaCallbackPayload
	require.NoError(t, json.Unmarshal([]byte(successCallbackBody("ws_CO_1")), &payload))

	receipt, amount, phone := extractCallbackMetadata(payload.Body.StkCallback.CallbackMetadata.Item)
	assert.Equal(t, "ABC123", receipt)
	assert.Equal(t, int64(5000), amount)
	assert.Equal(t, "254712345678", phone)
}
