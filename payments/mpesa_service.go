package payments

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	config "github.com/centraladventures/trips_backend/configs"
)

type StkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type StkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

const timestampLayout = "20060102150405"

func countryCode() string {
	if code := config.Config("MPESA_COUNTRY_CODE"); code != "" {
		return code
	}
	return "254"
}

// NormalizePhone converts a phone number to MSISDN format: a leading 0 is
// replaced with the configured country code and a leading + is stripped.
// Anything else passes through unchanged.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if strings.HasPrefix(phone, "+") {
		return phone[1:]
	}
	if strings.HasPrefix(phone, "0") {
		return countryCode() + phone[1:]
	}
	return phone
}

// stkPassword is the Daraja request password: base64(shortcode+passkey+timestamp).
func stkPassword(shortCode, passKey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortCode + passKey + timestamp))
}

// InitiateSTKPush asks the gateway to prompt the payer's phone for the given
// amount. The booking reference travels in AccountReference and the returned
// CheckoutRequestID is the correlation key the callback is reconciled on.
func InitiateSTKPush(amount int64, phoneNumber string, reference string) (*StkPushResponse, error) {
	accessToken, err := GetAccessToken()
	if err != nil {
		return nil, fmt.Errorf("failed to get M-Pesa access token: %v", err)
	}

	shortCode := config.Config("MPESA_SHORTCODE")
	passKey := config.Config("MPESA_PASSKEY")
	if shortCode == "" || passKey == "" {
		return nil, fmt.Errorf("MPESA_SHORTCODE or MPESA_PASSKEY is not set in .env")
	}

	callbackURL := fmt.Sprintf("%s/api/v1/payments/mpesa/callback?token=%s",
		config.Config("WEBHOOK_BASE_URL"), config.Config("MPESA_CALLBACK_SECRET"))

	timestamp := time.Now().Format(timestampLayout)
	payload := StkPushRequest{
		BusinessShortCode: shortCode,
		Password:          stkPassword(shortCode, passKey, timestamp),
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            amount,
		PartyA:            phoneNumber,
		PartyB:            shortCode,
		PhoneNumber:       phoneNumber,
		CallBackURL:       callbackURL,
		AccountReference:  reference,
		TransactionDesc:   config.Config("MPESA_TRANSACTION_DESC"),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal STK payload: %v", err)
	}

	req, err := http.NewRequest("POST", baseURL()+"/mpesa/stkpush/v1/processrequest", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create STK request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send STK request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read STK response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("M-Pesa API Error: %s", string(respBody))
		return nil, fmt.Errorf("M-Pesa API returned non-200 status: %d", resp.StatusCode)
	}

	var stkResponse StkPushResponse
	if err := json.Unmarshal(respBody, &stkResponse); err != nil {
		return nil, fmt.Errorf("failed to unmarshal STK response: %v", err)
	}

	if stkResponse.ResponseCode != "0" {
		log.Printf("STK Push initiation failed: %s", stkResponse.ResponseDescription)
		return nil, fmt.Errorf("STK Push failed: %s", stkResponse.ResponseDescription)
	}

	log.Println("✅ STK Push initiated successfully for booking:", reference)
	return &stkResponse, nil
}
