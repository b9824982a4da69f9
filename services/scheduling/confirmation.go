package scheduling

import (
	"context"
	"fmt"
	"strings"

	roomRepo "roomly/database/repository/room"
	"roomly/models"
	ai "roomly/services/intelligence"
	"roomly/utils"

	"go.uber.org/zap"
)

// ConfirmationService produces the post-booking confirmation message. The
// oracle call is a cosmetic enrichment: any failure is swallowed and the
// generic fallback returned, because a booked reservation must never be
// lost over a message that failed to generate.
type ConfirmationService struct {
	Oracle   ai.Oracle
	RoomRepo roomRepo.RoomRepository
}

// Message returns the confirmation text for a freshly created reservation.
func (c *ConfirmationService) Message(ctx context.Context, res models.Reservation) string {
	fallback := fmt.Sprintf("Room %s is booked for %s from %s.",
		res.RoomNumber, res.Window.Start.Format("2006-01-02"), res.Window.ClockLabel())

	if c == nil || c.Oracle == nil {
		return fallback
	}

	room, err := c.RoomRepo.GetByNumber(ctx, res.RoomNumber)
	if err != nil || room == nil {
		return fallback
	}

	msg, err := c.Oracle.ConfirmationMessage(ctx, res, *room)
	if err != nil {
		utils.GetLogger().Warn("confirmation message generation failed",
			zap.String("reservationID", res.ID), zap.Error(err))
		return fallback
	}
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return fallback
	}
	return msg
}
