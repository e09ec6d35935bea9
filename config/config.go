// Package config loads assembler settings from Starlark files.
//
// A configuration file assigns any of the globals below. Globals starting
// with '_', and functions, are helpers and are ignored.
//
//	record_limit     = 30      # Text record payload, in bytes (1 to 255).
//	strict_registers = False   # Unknown register names are errors.
//	workers          = 4       # Concurrent pass 2 encoders.
//	load_address     = 0x4000  # Default address for the loader.
//
// MAX_TEXT_BYTES and MEMORY_SIZE are predeclared.
package config

import (
	"maps"
	"slices"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/charmbracelet/log"

	"github.com/ezrec/xeasm/loader"
	"github.com/ezrec/xeasm/object"
	"github.com/ezrec/xeasm/sicxe"
)

const (
	RECORD_LIMIT_MAX = object.TEXT_LIMIT_MAX
	WORKERS_MAX      = 1024
)

// Config holds the assembler and loader settings.
type Config struct {
	RecordLimit     int
	StrictRegisters bool
	Workers         int
	LoadAddress     uint32
}

// Default returns the settings used without a configuration file.
func Default() Config {
	return Config{
		RecordLimit: object.MAX_TEXT_BYTES,
		Workers:     1,
	}
}

// Assembler returns an assembler with these settings.
func (cfg Config) Assembler(logger *log.Logger) *sicxe.Assembler {
	return &sicxe.Assembler{
		Logger:          logger,
		Workers:         cfg.Workers,
		RecordLimit:     cfg.RecordLimit,
		StrictRegisters: cfg.StrictRegisters,
	}
}

// Validate checks the ranges of settings changed outside of a configuration
// file.
func (cfg Config) Validate() (err error) {
	switch {
	case cfg.RecordLimit < 1 || cfg.RecordLimit > RECORD_LIMIT_MAX:
		err = ErrSettingRange("record_limit")
	case cfg.Workers < 0 || cfg.Workers > WORKERS_MAX:
		err = ErrSettingRange("workers")
	case cfg.LoadAddress >= loader.MEMORY_SIZE:
		err = ErrSettingRange("load_address")
	}
	return
}

var predeclared = starlark.StringDict{
	"MAX_TEXT_BYTES": starlark.MakeInt(object.MAX_TEXT_BYTES),
	"MEMORY_SIZE":    starlark.MakeInt(loader.MEMORY_SIZE),
}

// Load reads a configuration file over the defaults.
func Load(filename string) (cfg Config, err error) {
	return Parse(filename, nil)
}

// Parse executes a configuration over the defaults. src may be a string,
// []byte or io.Reader; if nil, filename is read.
func Parse(filename string, src any) (cfg Config, err error) {
	cfg = Default()

	defer func() {
		if err != nil {
			err = &ErrConfig{Filename: filename, Err: err}
		}
	}()

	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, &thread, filename, src, predeclared)
	if err != nil {
		return
	}

	// Sorted, so the first error reported is stable.
	for _, name := range slices.Sorted(maps.Keys(globals)) {
		value := globals[name]
		if strings.HasPrefix(name, "_") {
			continue
		}
		if _, ok := value.(starlark.Callable); ok {
			continue
		}

		switch name {
		case "record_limit":
			cfg.RecordLimit, err = toInt(name, value, 1, RECORD_LIMIT_MAX)
		case "strict_registers":
			cfg.StrictRegisters, err = toBool(name, value)
		case "workers":
			cfg.Workers, err = toInt(name, value, 0, WORKERS_MAX)
		case "load_address":
			var address int
			address, err = toInt(name, value, 0, loader.MEMORY_SIZE-1)
			cfg.LoadAddress = uint32(address)
		default:
			err = ErrUnknownSetting(name)
		}
		if err != nil {
			return
		}
	}

	return
}

func toInt(name string, value starlark.Value, low, high int) (out int, err error) {
	st_int, ok := value.(starlark.Int)
	if !ok {
		err = ErrSettingType(name)
		return
	}
	v64, ok := st_int.Int64()
	if !ok || v64 < int64(low) || v64 > int64(high) {
		err = ErrSettingRange(name)
		return
	}
	out = int(v64)
	return
}

func toBool(name string, value starlark.Value) (out bool, err error) {
	st_bool, ok := value.(starlark.Bool)
	if !ok {
		err = ErrSettingType(name)
		return
	}
	out = bool(st_bool)
	return
}
