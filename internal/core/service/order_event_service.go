package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, orderNumber, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, orderNumber, status string, ts time.Time) error
}

type orderEventService struct {
	orderRepo ports.OrderRepository
	eventRepo ports.OrderEventRepository
	dedup     DedupChecker
	log       zerolog.Logger
}

// NewOrderEventService returns an OrderEventService implementation.
func NewOrderEventService(
	orderRepo ports.OrderRepository,
	eventRepo ports.OrderEventRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.OrderEventService {
	return &orderEventService{
		orderRepo: orderRepo,
		eventRepo: eventRepo,
		dedup:     dedup,
		log:       log,
	}
}

// Process validates, deduplicates, and persists a single order status event.
func (s *orderEventService) Process(ctx context.Context, in ports.OrderEventInput) error {
	newStatus := domain.OrderStatus(in.Status)

	// 1. Idempotency check — silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.OrderNumber, in.Status, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("order", in.OrderNumber).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("order", in.OrderNumber).Str("status", in.Status).Msg("duplicate event skipped")
		return nil
	}

	// 2. Find the order (no user filter — events come from the back office).
	order, err := s.orderRepo.FindByNumber(ctx, in.OrderNumber, "")
	if err != nil {
		return fmt.Errorf("process event: %w", err)
	}

	// 3. Validate state machine transition.
	if !order.Status.CanTransitionTo(newStatus) {
		return fmt.Errorf("process event: %w (from %s to %s)", domain.ErrInvalidTransition, order.Status, newStatus)
	}

	// 4. Mark as processed before writing (prevents duplicate processing on retry).
	if markErr := s.dedup.Mark(ctx, in.OrderNumber, in.Status, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("order", in.OrderNumber).Msg("failed to set dedup key")
	}

	// 5. Atomically update order status + history.
	notes := in.Notes
	if notes == "" {
		notes = in.Source
	}
	if err := s.eventRepo.UpdateOrderStatus(ctx, in.OrderNumber, newStatus, in.Timestamp, notes); err != nil {
		return fmt.Errorf("process event: update status: %w", err)
	}

	// 6. Insert into audit trail (non-fatal on failure).
	auditEvent := &domain.OrderEvent{
		OrderNumber: in.OrderNumber,
		Status:      newStatus,
		Timestamp:   in.Timestamp,
		Source:      in.Source,
		Notes:       in.Notes,
	}
	if err := s.eventRepo.InsertEvent(ctx, auditEvent); err != nil {
		s.log.Warn().Err(err).Str("order", in.OrderNumber).Msg("failed to insert audit event")
	}

	s.log.Info().
		Str("order", in.OrderNumber).
		Str("status", in.Status).
		Str("source", in.Source).
		Msg("event processed")

	return nil
}
