package client

import (
	"context"
	"fmt"
	"sync"

	"stash-backend/internal/usecase/commands"
)

type FlowState string

const (
	FlowIdle       FlowState = "idle"
	FlowUploading  FlowState = "uploading"
	FlowProcessing FlowState = "processing"
	FlowAnalyzing  FlowState = "analyzing"
	FlowComplete   FlowState = "complete"
	FlowError      FlowState = "error"
)

// ScanOutcome is the terminal payload of a successful upload flow.
type ScanOutcome struct {
	Receipt *commands.ProcessedReceipt `json:"receipt"`
	Anomaly *commands.AnomalyReport    `json:"anomaly"`
}

// UploadFlow drives the multi-phase scan pipeline:
// idle → uploading → processing → analyzing → complete, or → error from any
// in-flight state. Terminal states are complete and error; calling Run again
// resets to idle first. The optional observer sees every transition.
type UploadFlow struct {
	mu       sync.Mutex
	state    FlowState
	session  *Session
	observer func(FlowState)
}

func NewUploadFlow(session *Session, observer func(FlowState)) *UploadFlow {
	return &UploadFlow{
		state:    FlowIdle,
		session:  session,
		observer: observer,
	}
}

func (f *UploadFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *UploadFlow) transition(state FlowState) {
	f.mu.Lock()
	f.state = state
	observer := f.observer
	f.mu.Unlock()

	if observer != nil {
		observer(state)
	}
}

func (f *UploadFlow) Run(ctx context.Context, in commands.UploadInput) Result[*ScanOutcome] {
	f.transition(FlowIdle)

	if err := f.session.authed(); err != nil {
		f.transition(FlowError)
		return fail[*ScanOutcome](err)
	}

	f.transition(FlowUploading)
	upload, err := f.session.services.Receipts.UploadFile(ctx, in, f.session.userID)
	if err != nil {
		f.transition(FlowError)
		return fail[*ScanOutcome](err)
	}

	f.transition(FlowProcessing)
	receipt, err := f.session.services.Receipts.ProcessReceipt(ctx, upload.ImageURL, f.session.userID)
	if err != nil {
		f.transition(FlowError)
		return fail[*ScanOutcome](err)
	}

	f.transition(FlowAnalyzing)
	receiptData := fmt.Sprintf("Merchant: %s, Date: %s, Amount: %.2f, Category: %s",
		receipt.Merchant, receipt.Date, receipt.Amount, receipt.Category)
	anomaly, err := f.session.services.Insights.DetectAnomaly(ctx, receiptData, "")
	if err != nil {
		f.transition(FlowError)
		return fail[*ScanOutcome](err)
	}

	f.transition(FlowComplete)
	return ok(&ScanOutcome{Receipt: receipt, Anomaly: anomaly})
}
