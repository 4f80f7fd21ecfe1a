package repository

import "errors"

var (
	ErrFailedToGetSetting = errors.New("failed to get setting")
	ErrFailedToSetSetting = errors.New("failed to set setting")
)
