package database

import (
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"gorm.io/gorm"
)

var (
	defaultAccountStatuses = []string{models.AccountStatusActive, models.AccountStatusSuspended, models.AccountStatusBanned}
	defaultRoomStatuses    = []string{models.RoomStatusWaiting, models.RoomStatusInProgress, models.RoomStatusFinished}
	defaultPlayerStatuses  = []string{models.PlayerStatusJoined, models.PlayerStatusReady, models.PlayerStatusLeft}
)

// SeedStatuses inserts the default status tags. Safe to run on every start.
func SeedStatuses(conn *gorm.DB) error {
	err := conn.Transaction(func(tx *gorm.DB) error {
		for _, tag := range defaultAccountStatuses {
			if err := tx.Where(models.AccountStatus{Tag: tag}).FirstOrCreate(&models.AccountStatus{}).Error; err != nil {
				return fmt.Errorf("seed account status %q: %w", tag, err)
			}
		}
		for _, tag := range defaultRoomStatuses {
			if err := tx.Where(models.RoomStatus{Tag: tag}).FirstOrCreate(&models.RoomStatus{}).Error; err != nil {
				return fmt.Errorf("seed room status %q: %w", tag, err)
			}
		}
		for _, tag := range defaultPlayerStatuses {
			if err := tx.Where(models.PlayerStatus{Tag: tag}).FirstOrCreate(&models.PlayerStatus{}).Error; err != nil {
				return fmt.Errorf("seed player status %q: %w", tag, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	slog.Info("status tags seeded")
	return nil
}
