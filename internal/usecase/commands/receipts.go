package commands

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"stash-backend/internal/catalog"
	"stash-backend/internal/infra/userstore"
	"stash-backend/internal/pkg/clock"
	"stash-backend/internal/pkg/errs"
	"stash-backend/internal/simnet"
)

// maxUploadSize is the simulated storage ceiling.
const maxUploadSize = 10 * 1024 * 1024 // 10MB

var acceptedTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

var (
	uploadPolicy = simnet.Policy{
		MinDelay:       1000 * time.Millisecond,
		MaxDelay:       3000 * time.Millisecond,
		FailureRate:    0.01,
		FailureCode:    "SERVICE_UNAVAILABLE",
		FailureMessage: "Upload service temporarily unavailable",
		RetryAfter:     5 * time.Second,
	}
	processPolicy = simnet.Policy{
		MinDelay:       2000 * time.Millisecond,
		MaxDelay:       5000 * time.Millisecond,
		FailureRate:    0.02,
		FailureCode:    "PROCESSING_FAILED",
		FailureMessage: "Receipt processing failed - could not extract text from image",
		RetryAfter:     5 * time.Second,
	}
)

// UploadInput describes the incoming file; the payload itself never leaves
// the caller because the storage round-trip is simulated.
type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
}

type UploadResult struct {
	ImageURL string `json:"imageUrl"`
	UserID   string `json:"userId"`
}

type ProcessedReceipt struct {
	ID       string             `json:"id"`
	Merchant string             `json:"merchant"`
	Amount   float64            `json:"amount"`
	Date     string             `json:"date"`
	Category string             `json:"category"`
	Items    []catalog.LineItem `json:"items,omitempty"`
}

type CodeGenerator interface {
	Suffix(n int) string
}

type ReceiptCommands interface {
	UploadFile(ctx context.Context, in UploadInput, userID string) (*UploadResult, error)
	ProcessReceipt(ctx context.Context, imageURL, userID string) (*ProcessedReceipt, error)
	UploadAndProcess(ctx context.Context, in UploadInput, userID string) (*ProcessedReceipt, error)
}

type receiptCommandsImpl struct {
	sim   simnet.Simulator
	clock clock.Clock
	store userstore.Store
	codes CodeGenerator
}

func NewReceiptCommands(sim simnet.Simulator, clk clock.Clock, store userstore.Store, codes CodeGenerator) ReceiptCommands {
	return &receiptCommandsImpl{sim: sim, clock: clk, store: store, codes: codes}
}

// UploadFile validates the file and simulates pushing it to storage.
// Validation runs before the simulated round-trip so a bad file costs the
// caller no artificial latency.
func (c *receiptCommandsImpl) UploadFile(ctx context.Context, in UploadInput, userID string) (*UploadResult, error) {
	if !slices.Contains(acceptedTypes, in.ContentType) {
		return nil, errs.Validation(
			"INVALID_FILE_TYPE",
			"Invalid file type. Please upload a JPEG, PNG, or WebP image.",
			map[string]any{"acceptedTypes": acceptedTypes},
		)
	}
	if in.Size > maxUploadSize {
		return nil, errs.Validation(
			"FILE_TOO_LARGE",
			"File too large. Maximum size is 10MB.",
			map[string]any{"maxSize": maxUploadSize, "currentSize": in.Size},
		)
	}

	if err := c.sim.Call(ctx, uploadPolicy); err != nil {
		return nil, err
	}

	if userID == "" {
		userID = "anonymous"
	}
	return &UploadResult{
		ImageURL: fmt.Sprintf("https://mock-storage.example.com/uploads/%d-%s", c.clock.Now().UnixMilli(), in.FileName),
		UserID:   userID,
	}, nil
}

// ProcessReceipt simulates OCR extraction: after the round-trip it picks one
// canned bundle uniformly at random (variety across calls is intended here,
// unlike the per-user seeded lists) and appends the result to the user's
// stored record.
func (c *receiptCommandsImpl) ProcessReceipt(ctx context.Context, imageURL, userID string) (*ProcessedReceipt, error) {
	if imageURL == "" {
		return nil, errs.Validation("MALFORMED_IMAGE_URL", "An image reference is required.", nil)
	}

	if err := c.sim.Call(ctx, processPolicy); err != nil {
		return nil, err
	}

	bundle := catalog.ExtractionBundleByIndex(rand.IntN(catalog.ExtractionBundleCount()))
	now := c.clock.Now()

	receipt := &ProcessedReceipt{
		ID:       fmt.Sprintf("receipt_%d_%s", now.UnixMilli(), c.codes.Suffix(9)),
		Merchant: bundle.Merchant,
		Amount:   bundle.Amount,
		Date:     now.Format("2006-01-02"),
		Category: bundle.Category,
		Items:    bundle.Items,
	}

	c.persist(ctx, userID, receipt)
	return receipt, nil
}

func (c *receiptCommandsImpl) UploadAndProcess(ctx context.Context, in UploadInput, userID string) (*ProcessedReceipt, error) {
	upload, err := c.UploadFile(ctx, in, userID)
	if err != nil {
		return nil, err
	}
	return c.ProcessReceipt(ctx, upload.ImageURL, userID)
}

// persist is best-effort: the accumulated record is an independent side
// store, and a storage hiccup must not fail an already-processed receipt.
func (c *receiptCommandsImpl) persist(ctx context.Context, userID string, receipt *ProcessedReceipt) {
	if userID == "" || userID == "anonymous" {
		return
	}

	record, err := c.store.Load(ctx, userID)
	if err != nil {
		slog.Warn("failed to load user record, skipping receipt persist", "user_id", userID, "error", err)
		return
	}
	record.AddReceipt(userstore.StoredReceipt{
		ID:       receipt.ID,
		Merchant: receipt.Merchant,
		Amount:   receipt.Amount,
		Date:     receipt.Date,
		Category: receipt.Category,
	})
	if err := c.store.Save(ctx, userID, record); err != nil {
		slog.Warn("failed to save user record", "user_id", userID, "error", err)
	}
}
