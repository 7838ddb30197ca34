package payments

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	config "github.com/centraladventures/trips_backend/configs"
)

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

var (
	darajaToken       string
	darajaTokenExpiry time.Time
	tokenMutex        sync.RWMutex
)

const defaultBaseURL = "https://api.safaricom.co.ke"

func baseURL() string {
	if url := config.Config("MPESA_BASE_URL"); url != "" {
		return url
	}
	return defaultBaseURL
}

// GetAccessToken returns a cached Daraja bearer token, fetching a fresh one
// from the client-credentials endpoint when the cached token has expired.
func GetAccessToken() (string, error) {
	tokenMutex.RLock()
	if darajaToken != "" && time.Now().Before(darajaTokenExpiry) {
		token := darajaToken
		tokenMutex.RUnlock()
		return token, nil
	}
	tokenMutex.RUnlock()

	tokenMutex.Lock()
	defer tokenMutex.Unlock()

	if darajaToken != "" && time.Now().Before(darajaTokenExpiry) {
		return darajaToken, nil
	}

	log.Println("Fetching new M-Pesa access token...")
	consumerKey := config.Config("MPESA_CONSUMER_KEY")
	consumerSecret := config.Config("MPESA_CONSUMER_SECRET")

	req, err := http.NewRequest("GET", baseURL()+"/oauth/v1/generate?grant_type=client_credentials", nil)
	if err != nil {
		return "", err
	}

	req.SetBasicAuth(consumerKey, consumerSecret)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("M-Pesa token API returned non-200 status: %s", resp.Status)
	}

	var tokenResp TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", err
	}

	expiresIn, err := strconv.Atoi(tokenResp.ExpiresIn)
	if err != nil || expiresIn <= 0 {
		expiresIn = 3600
	}

	darajaToken = tokenResp.AccessToken
	darajaTokenExpiry = time.Now().Add(time.Duration(expiresIn-300) * time.Second)
	log.Println("Successfully fetched and cached M-Pesa access token.")

	return darajaToken, nil
}
