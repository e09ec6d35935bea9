package config

import (
	"github.com/ezrec/xeasm/translate"
)

var f = translate.From

// ErrUnknownSetting is a global the configuration does not define.
type ErrUnknownSetting string

func (err ErrUnknownSetting) Error() string {
	return f("unknown setting %v", string(err))
}

func (err ErrUnknownSetting) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownSetting)
	return
}

// ErrSettingType is a setting assigned a value of the wrong type.
type ErrSettingType string

func (err ErrSettingType) Error() string {
	return f("wrong type for setting %v", string(err))
}

func (err ErrSettingType) Is(target error) (ok bool) {
	_, ok = target.(ErrSettingType)
	return
}

// ErrSettingRange is a setting assigned a value out of its range.
type ErrSettingRange string

func (err ErrSettingRange) Error() string {
	return f("setting %v out of range", string(err))
}

func (err ErrSettingRange) Is(target error) (ok bool) {
	_, ok = target.(ErrSettingRange)
	return
}

// ErrConfig indicates the configuration file that failed.
type ErrConfig struct {
	Filename string
	Err      error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
