package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
)

func TestAdjustmentAction_UnknownActionFailsBeforeSending(t *testing.T) {
	t.Parallel()

	f := newFakeAlliant(t, nil)
	c := newTestClient(f.URL)
	_, _ = c.Login(context.Background())

	_, err := c.AdjustmentAction(context.Background(), "guid-1", "bogus", "")

	if !errors.Is(err, ErrActionNotImplemented) {
		t.Fatalf("expected ErrActionNotImplemented, got %v", err)
	}

	if _, _, dataHits := f.counts(); dataHits != 0 {
		t.Errorf("expected no network call, got %d", dataHits)
	}
}

func TestAdjustmentAction_MissingCommentFailsBeforeSending(t *testing.T) {
	t.Parallel()

	f := newFakeAlliant(t, nil)
	c := newTestClient(f.URL)
	_, _ = c.Login(context.Background())

	for _, action := range []string{"approve", "clearRequest"} {
		_, err := c.AdjustmentAction(context.Background(), "guid-1", action, "")

		if !errors.Is(err, ErrCommentRequired) {
			t.Errorf("%s: expected ErrCommentRequired, got %v", action, err)
		}
	}

	if _, _, dataHits := f.counts(); dataHits != 0 {
		t.Errorf("expected no network call, got %d", dataHits)
	}
}

func TestAdjustmentAction_SendsCommentBody(t *testing.T) {
	t.Parallel()

	var capturedPath, capturedMethod string
	var capturedBody []byte

	f := newFakeAlliant(t, func(_ int, r *http.Request) (int, string) {
		capturedPath = r.URL.Path
		capturedMethod = r.Method
		capturedBody, _ = io.ReadAll(r.Body)

		return http.StatusOK, okEnvelope
	})

	c := newTestClient(f.URL)
	_, _ = c.Login(context.Background())

	_, err := c.AdjustmentAction(context.Background(), "guid-1", "approve", "looks good")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if capturedMethod != http.MethodPut {
		t.Errorf("expected PUT, got %s", capturedMethod)
	}

	if capturedPath != "/api/data/adjustmentHeaders/approve/guid-1" {
		t.Errorf("unexpected path %s", capturedPath)
	}

	var body map[string]string
	if err := json.Unmarshal(capturedBody, &body); err != nil {
		t.Fatalf("failed to parse body: %v", err)
	}

	if body["comment"] != "looks good" {
		t.Errorf("expected comment in body, got %v", body)
	}
}

func TestAdjustmentAction_NoCommentActionSendsEmptyBody(t *testing.T) {
	t.Parallel()

	var capturedPath string
	var capturedBody []byte

	f := newFakeAlliant(t, func(_ int, r *http.Request) (int, string) {
		capturedPath = r.URL.Path
		capturedBody, _ = io.ReadAll(r.Body)

		return http.StatusOK, okEnvelope
	})

	c := newTestClient(f.URL)
	_, _ = c.Login(context.Background())

	_, err := c.AdjustmentAction(context.Background(), "guid-1", "post", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if capturedPath != "/api/data/adjustmentHeaders/post/guid-1" {
		t.Errorf("unexpected path %s", capturedPath)
	}

	if len(capturedBody) != 0 {
		t.Errorf("expected empty body, got %q", capturedBody)
	}
}

func TestContractAction_Validation(t *testing.T) {
	t.Parallel()

	f := newFakeAlliant(t, nil)
	c := newTestClient(f.URL)
	_, _ = c.Login(context.Background())

	_, err := c.ContractAction(context.Background(), "guid-1", "clear", "")
	if !errors.Is(err, ErrActionNotImplemented) {
		t.Errorf("clear is not a contract action, expected ErrActionNotImplemented, got %v", err)
	}

	_, err = c.ContractAction(context.Background(), "guid-1", "approve", "")
	if !errors.Is(err, ErrCommentRequired) {
		t.Errorf("expected ErrCommentRequired for approve without comment, got %v", err)
	}

	if _, _, dataHits := f.counts(); dataHits != 0 {
		t.Errorf("expected no network call, got %d", dataHits)
	}
}

func TestContractAction_AllowedActionSent(t *testing.T) {
	t.Parallel()

	var capturedPath string

	f := newFakeAlliant(t, func(_ int, r *http.Request) (int, string) {
		capturedPath = r.URL.Path

		return http.StatusOK, okEnvelope
	})

	c := newTestClient(f.URL)
	_, _ = c.Login(context.Background())

	_, err := c.ContractAction(context.Background(), "guid-7", "revise", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if capturedPath != "/api/data/contracts/revise/guid-7" {
		t.Errorf("unexpected path %s", capturedPath)
	}
}
