package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	err := NewDomainError(ErrorCodeWebhookInvalidPayload, "notificationItems is missing")
	if !strings.Contains(err.Error(), "WEBHOOK_INVALID_PAYLOAD") {
		t.Errorf("error message %q does not contain the code", err.Error())
	}
	if !strings.Contains(err.Error(), "notificationItems is missing") {
		t.Errorf("error message %q does not contain the message", err.Error())
	}
}

func TestDomainError_Wrapping(t *testing.T) {
	inner := fmt.Errorf("read failed")
	err := WrapError(ErrorCodeGatewayError, "request to checkout API failed", inner)

	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to find the wrapped error")
	}

	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		t.Fatal("expected errors.As to extract DomainError")
	}
	if domainErr.Code != ErrorCodeGatewayError {
		t.Errorf("expected code GATEWAY_ERROR, got %s", domainErr.Code)
	}
}

func TestDomainError_WithDetail(t *testing.T) {
	err := NewDomainError(ErrorCodeWebhookInvalidSignature, "signature mismatch").
		WithDetail("pspReference", "7914073381342284")

	if err.Details["pspReference"] != "7914073381342284" {
		t.Errorf("expected detail to be stored, got %v", err.Details)
	}
}

func TestIsDomainError(t *testing.T) {
	err := NewDomainError(ErrorCodeWebhookInvalidSignature, "signature mismatch")

	if !IsDomainError(err, ErrorCodeWebhookInvalidSignature) {
		t.Error("expected IsDomainError to match the code")
	}
	if IsDomainError(err, ErrorCodeWebhookInvalidPayload) {
		t.Error("expected IsDomainError to reject a different code")
	}
	if IsDomainError(errors.New("plain"), ErrorCodeWebhookInvalidSignature) {
		t.Error("expected IsDomainError to reject a plain error")
	}
}

func TestErrorClassifiers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		webhook    bool
		validation bool
		gateway    bool
	}{
		{
			name:    "invalid payload is a webhook error",
			err:     NewDomainError(ErrorCodeWebhookInvalidPayload, "bad shape"),
			webhook: true,
		},
		{
			name:    "invalid signature is a webhook error",
			err:     NewDomainError(ErrorCodeWebhookInvalidSignature, "mismatch"),
			webhook: true,
		},
		{
			name:       "missing field is a validation error",
			err:        NewDomainError(ErrorCodeValidationMissingField, "reference required"),
			validation: true,
		},
		{
			name:    "gateway timeout is a gateway error",
			err:     NewDomainError(ErrorCodeGatewayTimeout, "checkout API timed out"),
			gateway: true,
		},
		{
			name: "plain error matches nothing",
			err:  errors.New("plain"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWebhookError(tt.err); got != tt.webhook {
				t.Errorf("IsWebhookError = %v, want %v", got, tt.webhook)
			}
			if got := IsValidationError(tt.err); got != tt.validation {
				t.Errorf("IsValidationError = %v, want %v", got, tt.validation)
			}
			if got := IsGatewayError(tt.err); got != tt.gateway {
				t.Errorf("IsGatewayError = %v, want %v", got, tt.gateway)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := GetErrorCode(NewDomainError(ErrorCodeConfigInvalid, "bad env")); code != ErrorCodeConfigInvalid {
		t.Errorf("expected CONFIG_INVALID, got %s", code)
	}
	if code := GetErrorCode(errors.New("plain")); code != "" {
		t.Errorf("expected empty code for plain error, got %s", code)
	}
}
