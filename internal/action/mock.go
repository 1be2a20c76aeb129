package action

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/balasus1/chain-guard-tambo/pkg/types"
)

// run performs the action's side effect. The implementations are demo
// mocks: a production deployment would call the ticketing, messaging and
// carrier APIs here.
func (e *Executor) run(action types.ActionType, auditResult types.AuditResult) {
	switch action {
	case types.ActionCreateTicket:
		ticketID := fmt.Sprintf("TKT-%s", uuid.NewString())
		e.logger.Info("create_ticket executed",
			zap.String("ticket_id", ticketID),
			zap.String("tracking_number", auditResult.TrackingNumber),
			zap.String("courier_code", auditResult.CourierCode))
	case types.ActionNotifyCustomer:
		e.logger.Info("notify_customer executed",
			zap.String("tracking_number", auditResult.TrackingNumber))
	case types.ActionNotifyVendor:
		e.logger.Info("notify_vendor executed",
			zap.String("courier_code", auditResult.CourierCode),
			zap.String("tracking_number", auditResult.TrackingNumber))
	default:
		panic(fmt.Sprintf("action: unknown action %q", action))
	}
}
