package rewards

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

type CreditRequest struct {
	UserID       string  `json:"user_id"`
	ActivationID string  `json:"activation_id"`
	Amount       float64 `json:"amount"`
	Reason       string  `json:"reason"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPRewardsClient talks to the platform points service. Redemption
// crediting goes through here, always best-effort from the caller's side.
type HTTPRewardsClient struct {
	Address string
}

func NewHTTPRewardsClient(address string) (*HTTPRewardsClient, error) {
	return &HTTPRewardsClient{
		Address: address,
	}, nil
}

func (c *HTTPRewardsClient) Credit(userID, activationID string, amount float64) error {
	requestBodyBytes, err := json.Marshal(CreditRequest{
		UserID:       userID,
		ActivationID: activationID,
		Amount:       amount,
		Reason:       "sampling_redemption",
	})
	if err != nil {
		return err
	}

	response, err := http.Post(fmt.Sprintf("%s/wallets/credit", c.Address), "application/json", bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}
	var errorResponse ErrorResponse
	if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
		return err
	}
	return errors.New(errorResponse.Error)
}
