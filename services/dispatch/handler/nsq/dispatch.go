package nsq

import (
	"context"
	"fmt"

	"github.com/openride/openride/internal/pkg/logger"
	"github.com/openride/openride/internal/pkg/models"
	"github.com/openride/openride/internal/pkg/nsq"
	"github.com/openride/openride/services/dispatch"
)

// DispatchHandler consumes dispatch jobs from the ride dispatch topic
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch message handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{dispatchUC: dispatchUC}
}

// HandleMessage processes one dispatch job. Malformed messages are dropped;
// returning an error requeues the job.
func (h *DispatchHandler) HandleMessage(message []byte) error {
	var req models.DispatchRequest
	if err := nsq.UnmarshalMessage(message, &req); err != nil {
		logger.Error("Dropping malformed dispatch message", logger.Err(err))
		return nil
	}

	if err := h.dispatchUC.DispatchRide(context.Background(), req.RideID); err != nil {
		return fmt.Errorf("failed to dispatch ride %s: %w", req.RideID, err)
	}
	return nil
}
