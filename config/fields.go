package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tikload-cli/tikload/constant"
	"github.com/tikload-cli/tikload/filesystem"
	"github.com/tikload-cli/tikload/where"
	"golang.org/x/exp/slices"
)

// ErrUnknownKey is returned for keys that are not registered.
var ErrUnknownKey = errors.New("unknown key")

// UnknownKeyError names an unregistered key and the closest registered one.
type UnknownKeyError struct {
	Key        string
	Suggestion string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %s, did you mean %s?", e.Key, e.Suggestion)
}

func (e *UnknownKeyError) Unwrap() error {
	return ErrUnknownKey
}

// Keys returns every registered key in lexical order.
func Keys() []string {
	keys := lo.Keys(Default)
	slices.Sort(keys)
	return keys
}

// Lookup returns the field registered under k.
func Lookup(k string) (Field, error) {
	if f, ok := Default[k]; ok {
		return f, nil
	}

	return Field{}, &UnknownKeyError{Key: k, Suggestion: closest(k)}
}

func closest(k string) string {
	return lo.MinBy(Keys(), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
}

// Parse converts raw command line values into the type of the field's default.
func (f *Field) Parse(values []string) (any, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%s: value is required", f.Key)
	}

	switch f.Value.(type) {
	case string:
		return values[0], nil
	case int:
		n, err := strconv.Atoi(values[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer value: %s", f.Key, values[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(values[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid boolean value: %s", f.Key, values[0])
		}
		return b, nil
	case []string:
		return values, nil
	default:
		return nil, fmt.Errorf("%s: unsupported type %T", f.Key, f.Value)
	}
}

// Path returns the location of the configuration file.
func Path() string {
	return filepath.Join(where.Config(), constant.Tikload+".toml")
}

// Write persists the active configuration, creating the file when it is missing.
func Write() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}

	return err
}

// ResetKey restores k to its default value in the active configuration.
func ResetKey(k string) error {
	f, err := Lookup(k)
	if err != nil {
		return err
	}

	viper.Set(k, f.Value)
	return nil
}

// Remove deletes the configuration file.
func Remove() error {
	return filesystem.API().Remove(Path())
}
