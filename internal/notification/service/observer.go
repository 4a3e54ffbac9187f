package service

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rosterd/internal/config"
	"github.com/smallbiznis/rosterd/internal/notification/domain"
	rosterdomain "github.com/smallbiznis/rosterd/internal/roster/domain"
	slotdomain "github.com/smallbiznis/rosterd/internal/slot/domain"
	"go.uber.org/zap"
)

// ApprovalNotifier writes an in-app notification for the assigned
// employee when a schedule entry is approved. Fire-and-forget: a failed
// write is logged and dropped, the approval itself already committed.
type ApprovalNotifier struct {
	enabled  bool
	svc      domain.Service
	slotRepo slotdomain.Repository
	genID    *snowflake.Node
	log      *zap.Logger
}

func NewApprovalNotifier(
	cfg config.Config,
	svc domain.Service,
	slotRepo slotdomain.Repository,
	genID *snowflake.Node,
	log *zap.Logger,
) *ApprovalNotifier {
	return &ApprovalNotifier{
		enabled:  cfg.NotifyOnApproval,
		svc:      svc,
		slotRepo: slotRepo,
		genID:    genID,
		log:      log.Named("notification.approval"),
	}
}

func (n *ApprovalNotifier) ScheduleApproved(ctx context.Context, entry rosterdomain.ScheduleEntry) {
	if !n.enabled || entry.EmployeeID == nil {
		return
	}

	message := fmt.Sprintf("Your shift for the week of %s has been approved.",
		entry.WeekStartDate.Format("2006-01-02"))
	if slot, err := n.slotRepo.Get(ctx, entry.ShiftID); err == nil {
		message = fmt.Sprintf("Your %s shift on %s (%s) has been approved.",
			slot.ShiftType, slot.DayOfWeek, slot.Date.Format("2006-01-02"))
	}

	if _, err := n.svc.Create(ctx, domain.CreateRequest{
		EmployeeID: *entry.EmployeeID,
		Message:    message,
	}); err != nil {
		n.log.Warn("failed to create approval notification",
			zap.Int64("entry_id", entry.ID.Int64()),
			zap.Int64("employee_id", entry.EmployeeID.Int64()),
			zap.Error(err))
	}
}
