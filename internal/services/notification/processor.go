package notification

import (
	"context"
	"time"

	"github.com/velobpa/adyen-connector/internal/adapters/adyen"
	"github.com/velobpa/adyen-connector/internal/adapters/ports"
	"github.com/velobpa/adyen-connector/internal/domain"
	"github.com/velobpa/adyen-connector/pkg/observability"
)

// Options configures how inbound notification batches are verified and
// filtered. It is request-scoped configuration: nothing here is persisted.
type Options struct {
	// MerchantAccount scopes accepted items when EnforceMerchantScope is set
	MerchantAccount string
	// HMACKey is the hex-encoded shared secret used to verify signatures.
	// Verification only runs when ValidateHMAC is set and a key is present.
	HMACKey      string
	ValidateHMAC bool
	// EnforceMerchantScope drops items addressed to other merchant accounts
	EnforceMerchantScope bool
	// AcceptAllEvents bypasses the event-code filter entirely
	AcceptAllEvents bool
	// AcceptedEvents lists the event codes to keep when AcceptAllEvents is off
	AcceptedEvents []string
}

// Processor turns a raw, untrusted webhook batch into a trusted, filtered,
// ordered sequence of notification records.
type Processor struct {
	opts           Options
	acceptedEvents map[string]struct{}
	logger         ports.Logger
}

// NewProcessor creates a batch processor with the given policy
func NewProcessor(opts Options, logger ports.Logger) *Processor {
	accepted := make(map[string]struct{}, len(opts.AcceptedEvents))
	for _, code := range opts.AcceptedEvents {
		accepted[code] = struct{}{}
	}
	return &Processor{
		opts:           opts,
		acceptedEvents: accepted,
		logger:         logger,
	}
}

// Process validates, verifies and filters one webhook batch. Item order is
// preserved in the output. A malformed batch shape or a signature mismatch
// on any item fails the whole batch; individually malformed items and items
// removed by the scope or event filters are dropped without error.
func (p *Processor) Process(ctx context.Context, webhook *domain.Webhook) ([]domain.NotificationRecord, error) {
	start := time.Now()

	if webhook == nil || webhook.NotificationItems == nil {
		observability.ObserveWebhookBatch(observability.BatchRejected, time.Since(start))
		return nil, domain.NewDomainError(domain.ErrorCodeWebhookInvalidPayload,
			"webhook payload is missing its notification items")
	}

	live := webhook.Live == "true"
	records := make([]domain.NotificationRecord, 0, len(webhook.NotificationItems))

	for _, container := range webhook.NotificationItems {
		item := container.NotificationRequestItem
		if item == nil {
			observability.CountNotification("", observability.NotificationSkipped)
			continue
		}

		if p.opts.ValidateHMAC && p.opts.HMACKey != "" {
			if err := p.verifyItem(item); err != nil {
				observability.ObserveWebhookBatch(observability.BatchRejected, time.Since(start))
				return nil, err
			}
		}

		if p.opts.EnforceMerchantScope && item.MerchantAccountCode != p.opts.MerchantAccount {
			p.logger.Debug("Dropping notification outside merchant scope",
				ports.String("psp_reference", item.PSPReference),
				ports.String("merchant_account", item.MerchantAccountCode),
			)
			observability.CountNotification(item.EventCode, observability.NotificationFiltered)
			continue
		}

		if !p.opts.AcceptAllEvents {
			if _, ok := p.acceptedEvents[item.EventCode]; !ok {
				p.logger.Debug("Dropping notification with unaccepted event code",
					ports.String("psp_reference", item.PSPReference),
					ports.String("event_code", item.EventCode),
				)
				observability.CountNotification(item.EventCode, observability.NotificationFiltered)
				continue
			}
		}

		observability.CountNotification(item.EventCode, observability.NotificationAccepted)
		records = append(records, domain.NotificationRecord{
			EventCode:           item.EventCode,
			Success:             item.Success == "true",
			PSPReference:        item.PSPReference,
			OriginalReference:   item.OriginalReference,
			MerchantAccountCode: item.MerchantAccountCode,
			MerchantReference:   item.MerchantReference,
			Amount:              item.Amount,
			EventDate:           item.EventDate,
			PaymentMethod:       item.PaymentMethod,
			Reason:              item.Reason,
			AdditionalData:      item.AdditionalData,
			Live:                live,
		})
	}

	p.logger.Info("Processed webhook batch",
		ports.Int("received", len(webhook.NotificationItems)),
		ports.Int("accepted", len(records)),
		ports.Bool("live", live),
	)
	observability.ObserveWebhookBatch(observability.BatchAccepted, time.Since(start))

	return records, nil
}

// verifyItem checks one item's signature. An item without a signature
// passes through; a present signature that fails to match is fatal for
// the whole batch since forgery implies the channel may be compromised.
func (p *Processor) verifyItem(item *domain.NotificationItem) error {
	provided := item.HMACSignature()
	if provided == "" {
		return nil
	}

	valid, err := adyen.VerifySignature(item, p.opts.HMACKey, provided)
	if err != nil {
		return err
	}
	if !valid {
		p.logger.Warn("Rejecting webhook batch on signature mismatch",
			ports.String("psp_reference", item.PSPReference),
			ports.String("event_code", item.EventCode),
		)
		return domain.NewDomainError(domain.ErrorCodeWebhookInvalidSignature,
			"notification signature does not match the computed digest").
			WithDetail("psp_reference", item.PSPReference)
	}
	return nil
}
