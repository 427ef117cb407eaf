package submission

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	apperrors "submitr/internal/pkg/errors"
)

const (
	headerSignature = "X-Signature-256"
	headerDelivery  = "X-Submitr-Delivery"
)

// Receipt is the endpoint's confirmation of a submission.
type Receipt struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	DeliveryID string
	Signature  string
}

// Client delivers one signed payload to the submission endpoint.
type Client struct {
	endpoint string
	secret   string
	http     *http.Client
}

func NewClient(endpoint, secret string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		secret:   secret,
		http:     &http.Client{Timeout: timeout},
	}
}

// Submit signs the canonical payload bytes and delivers them in a single
// POST. The request body is built from the same slice the signature was
// computed over; the payload is never re-marshaled. No retries.
func (c *Client) Submit(ctx context.Context, payload []byte) (*Receipt, error) {
	signature, err := Sign(c.secret, payload)
	if err != nil {
		return nil, apperrors.Config("signing payload: " + err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.Config("building request: " + err.Error())
	}

	deliveryID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerSignature, SignatureHeader(signature))
	req.Header.Set(headerDelivery, deliveryID)

	log.Debug().
		Str("signature", signature).
		Str("delivery_id", deliveryID).
		Str("endpoint", c.endpoint).
		Msg("delivering signed payload")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.Network("submitting payload", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Network("reading response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.Submission(fmt.Sprintf("endpoint returned HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(body)))
	}

	return &Receipt{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
		DeliveryID: deliveryID,
		Signature:  signature,
	}, nil
}
