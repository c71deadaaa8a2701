package models

// All returns every persisted model in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&AccountStatus{},
		&RoomStatus{},
		&PlayerStatus{},
		&Image{},
		&Action{},
		&Account{},
		&RefreshToken{},
		&Role{},
		&GameSetting{},
		&GameSettingRole{},
		&Room{},
		&GameEvent{},
		&Player{},
		&Chat{},
		&Reply{},
		&PlayerActionOverride{},
		&PlayerTriggerEvent{},
		&PlayerInfluenceEvent{},
		&EventInfluencePlayer{},
		&RoleAction{},
		&SystemLog{},
	}
}
