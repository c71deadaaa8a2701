package repository_test

import (
	"errors"
	"testing"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/repository"
)

func TestUniqueFieldsConflict(t *testing.T) {
	f := newFixture(t)
	author := f.account()
	setting := f.setting(author.ID)
	action := f.action()

	cases := []struct {
		name   string
		insert func() error
	}{
		{"account username", func() error {
			return f.store.CreateAccount(f.ctx, &models.Account{
				Username: author.Username, Email: next("other") + "@example.com", Password: "x",
				AccountStatusID: author.AccountStatusID,
			})
		}},
		{"account email", func() error {
			return f.store.CreateAccount(f.ctx, &models.Account{
				Username: next("other"), Email: author.Email, Password: "x",
				AccountStatusID: author.AccountStatusID,
			})
		}},
		{"image file path", func() error {
			img := f.image()
			return f.store.CreateImage(f.ctx, &models.Image{FilePath: img.FilePath})
		}},
		{"action name", func() error {
			return f.store.CreateAction(f.ctx, &models.Action{Name: action.Name})
		}},
		{"role name", func() error {
			r := f.role(author.ID)
			return f.store.CreateRole(f.ctx, &models.Role{Name: r.Name, AuthorID: author.ID})
		}},
		{"game setting name", func() error {
			return f.store.CreateGameSetting(f.ctx, &models.GameSetting{Name: setting.Name, AuthorID: author.ID})
		}},
		{"room name", func() error {
			r := f.room(setting.ID)
			return f.store.CreateRoom(f.ctx, &models.Room{Name: r.Name, StatusID: r.StatusID, GameSettingID: setting.ID})
		}},
		{"game event name", func() error {
			e := f.event(action.ID)
			return f.store.CreateGameEvent(f.ctx, &models.GameEvent{Name: e.Name, ActionID: action.ID})
		}},
		{"account status tag", func() error {
			_, err := f.store.CreateStatus(f.ctx, repository.StatusKindAccount, models.AccountStatusActive)
			return err
		}},
		{"room status tag", func() error {
			_, err := f.store.CreateStatus(f.ctx, repository.StatusKindRoom, models.RoomStatusWaiting)
			return err
		}},
		{"player status tag", func() error {
			_, err := f.store.CreateStatus(f.ctx, repository.StatusKindPlayer, models.PlayerStatusJoined)
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.insert()
			if !errors.Is(err, repository.ErrConflict) {
				t.Fatalf("expected ErrConflict, got %v", err)
			}
		})
	}
}

func TestRoomAccessCodeUniqueness(t *testing.T) {
	f := newFixture(t)
	setting := f.setting(f.account().ID)
	waiting := f.status(repository.StatusKindRoom, models.RoomStatusWaiting)

	first := &models.Room{Name: "first", AccessCode: "ABC123", StatusID: waiting, GameSettingID: setting.ID}
	if err := f.store.CreateRoom(f.ctx, first); err != nil {
		t.Fatalf("create first room: %v", err)
	}

	dup := &models.Room{Name: "second", AccessCode: "ABC123", StatusID: waiting, GameSettingID: setting.ID}
	if err := f.store.CreateRoom(f.ctx, dup); !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate code, got %v", err)
	}

	other := &models.Room{Name: "third", AccessCode: "XYZ789", StatusID: waiting, GameSettingID: setting.ID}
	if err := f.store.CreateRoom(f.ctx, other); err != nil {
		t.Fatalf("expected XYZ789 to succeed, got %v", err)
	}

	got, err := f.store.GetRoomByAccessCode(f.ctx, " abc123 ")
	if err != nil {
		t.Fatalf("lookup by code: %v", err)
	}
	if got.ID != first.ID {
		t.Fatalf("expected room %s, got %s", first.ID, got.ID)
	}
}

func TestJoinTablesRejectDuplicatePairs(t *testing.T) {
	f := newFixture(t)
	author := f.account()
	role := f.role(author.ID)
	setting := f.setting(author.ID)
	action := f.action()
	event := f.event(action.ID)
	player := f.player(author.ID, nil, nil)

	cases := []struct {
		name string
		add  func() error
	}{
		{"game setting roles", func() error {
			_, err := f.store.AddGameSettingRole(f.ctx, setting.ID, role.ID, 2)
			return err
		}},
		{"role actions", func() error {
			_, err := f.store.AddRoleAction(f.ctx, role.ID, action.ID)
			return err
		}},
		{"player action overrides", func() error {
			_, err := f.store.AddPlayerActionOverride(f.ctx, player.ID, action.ID, false)
			return err
		}},
		{"player trigger events", func() error {
			_, err := f.store.AddPlayerTriggerEvent(f.ctx, player.ID, event.ID)
			return err
		}},
		{"player influence events", func() error {
			_, err := f.store.AddPlayerInfluenceEvent(f.ctx, player.ID, event.ID)
			return err
		}},
		{"event influence players", func() error {
			_, err := f.store.AddEventInfluencePlayer(f.ctx, player.ID, event.ID, true)
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.add(); err != nil {
				t.Fatalf("first insert: %v", err)
			}
			if err := tc.add(); !errors.Is(err, repository.ErrConflict) {
				t.Fatalf("expected ErrConflict on duplicate pair, got %v", err)
			}
		})
	}
}

func TestUpdateIntoExistingValueConflicts(t *testing.T) {
	f := newFixture(t)
	a := f.action()
	b := f.action()

	b.Name = a.Name
	if err := f.store.UpdateAction(f.ctx, b); !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
