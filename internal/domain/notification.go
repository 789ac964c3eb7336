package domain

// Standard webhook event codes sent by Adyen.
const (
	EventAuthorisation            = "AUTHORISATION"
	EventCancellation             = "CANCELLATION"
	EventCapture                  = "CAPTURE"
	EventCaptureFailed            = "CAPTURE_FAILED"
	EventChargeback               = "CHARGEBACK"
	EventChargebackReversed       = "CHARGEBACK_REVERSED"
	EventNotificationOfChargeback = "NOTIFICATION_OF_CHARGEBACK"
	EventNotificationOfFraud      = "NOTIFICATION_OF_FRAUD"
	EventPayoutDecline            = "PAYOUT_DECLINE"
	EventPayoutExpire             = "PAYOUT_EXPIRE"
	EventRecurringContract        = "RECURRING_CONTRACT"
	EventRefund                   = "REFUND"
	EventRefundFailed             = "REFUND_FAILED"
	EventReportAvailable          = "REPORT_AVAILABLE"
	EventRequestForInformation    = "REQUEST_FOR_INFORMATION"
	EventSecondChargeback         = "SECOND_CHARGEBACK"
)

// HMACSignatureKey is the additionalData key Adyen uses to attach the
// signature of a notification item.
const HMACSignatureKey = "hmacSignature"

// NotificationItem is one asynchronous event from the payment processor.
// Items are read-only: they are either accepted and emitted downstream or
// dropped, never mutated or persisted here.
type NotificationItem struct {
	EventCode           string            `json:"eventCode"`
	Success             string            `json:"success"`
	PSPReference        string            `json:"pspReference"`
	OriginalReference   string            `json:"originalReference,omitempty"`
	MerchantAccountCode string            `json:"merchantAccountCode"`
	MerchantReference   string            `json:"merchantReference,omitempty"`
	Amount              *Amount           `json:"amount,omitempty"`
	EventDate           string            `json:"eventDate"`
	PaymentMethod       string            `json:"paymentMethod,omitempty"`
	Reason              string            `json:"reason,omitempty"`
	AdditionalData      map[string]string `json:"additionalData,omitempty"`
}

// HMACSignature returns the signature attached to the item, or "" when the
// payload never carried one.
func (n *NotificationItem) HMACSignature() string {
	if n.AdditionalData == nil {
		return ""
	}
	return n.AdditionalData[HMACSignatureKey]
}

// NotificationItemContainer matches the envelope Adyen wraps each item in.
type NotificationItemContainer struct {
	NotificationRequestItem *NotificationItem `json:"NotificationRequestItem"`
}

// Webhook is the inbound batch shape. Item order is preserved end to end;
// consumers reconstruct event sequences from it.
type Webhook struct {
	Live              string                      `json:"live"`
	NotificationItems []NotificationItemContainer `json:"notificationItems"`
}

// NotificationRecord is the normalized output shape handed to downstream
// consumers, one per accepted item.
type NotificationRecord struct {
	EventCode           string            `json:"eventCode"`
	Success             bool              `json:"success"`
	PSPReference        string            `json:"pspReference"`
	OriginalReference   string            `json:"originalReference"`
	MerchantAccountCode string            `json:"merchantAccountCode"`
	MerchantReference   string            `json:"merchantReference"`
	Amount              *Amount           `json:"amount"`
	EventDate           string            `json:"eventDate"`
	PaymentMethod       string            `json:"paymentMethod"`
	Reason              string            `json:"reason"`
	AdditionalData      map[string]string `json:"additionalData"`
	Live                bool              `json:"live"`
}
