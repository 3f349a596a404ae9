package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pfa/internal/models"
)

// Kind names the record collection a command targets.
type Kind string

const (
	KindAsset   Kind = "asset"
	KindIncome  Kind = "income"
	KindDebt    Kind = "debt"
	KindAccount Kind = "account"
)

// Op is what a command does.
type Op string

const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
	OpSet    Op = "set"
)

// Command is one textual edit, in one of the forms
//
//	<kind>.add[=<arg>]
//	<kind>.<index>.remove
//	<kind>.<index>.<field>=<value>
//
// The add argument is an account ID for assets, a year for incomes, and an
// account type for accounts.
type Command struct {
	Kind  Kind
	Op    Op
	Index int
	Field string
	Value string
}

// ErrBadCommand is returned by ParseCommand for malformed input.
var ErrBadCommand = errors.New("session: malformed edit command")

// ParseCommand parses one edit command.
func ParseCommand(text string) (Command, error) {
	path, value, hasValue := strings.Cut(strings.TrimSpace(text), "=")
	parts := strings.Split(strings.TrimSpace(path), ".")

	var cmd Command
	switch Kind(parts[0]) {
	case KindAsset, KindIncome, KindDebt, KindAccount:
		cmd.Kind = Kind(parts[0])
	default:
		return Command{}, fmt.Errorf("%w: unknown record kind %q", ErrBadCommand, parts[0])
	}

	switch {
	case len(parts) == 2 && parts[1] == string(OpAdd):
		cmd.Op, cmd.Value = OpAdd, strings.TrimSpace(value)
		return cmd, nil
	case len(parts) != 3:
		return Command{}, fmt.Errorf("%w: %q", ErrBadCommand, text)
	}

	idx, err := strconv.Atoi(parts[1])
	if err != nil || idx < 0 {
		return Command{}, fmt.Errorf("%w: bad index %q", ErrBadCommand, parts[1])
	}
	cmd.Index = idx

	if parts[2] == string(OpRemove) && !hasValue {
		cmd.Op = OpRemove
		return cmd, nil
	}
	if !hasValue {
		return Command{}, fmt.Errorf("%w: missing value for %s", ErrBadCommand, path)
	}
	cmd.Op, cmd.Field, cmd.Value = OpSet, parts[2], value
	return cmd, nil
}

// Apply runs cmd against the session.
func (s *Session) Apply(cmd Command) error {
	switch cmd.Op {
	case OpAdd:
		return s.applyAdd(cmd)
	case OpRemove:
		switch cmd.Kind {
		case KindAsset:
			return s.RemoveAsset(cmd.Index)
		case KindIncome:
			return s.RemoveIncome(cmd.Index)
		case KindDebt:
			return s.RemoveDebt(cmd.Index)
		case KindAccount:
			return s.RemoveAccount(cmd.Index)
		}
	case OpSet:
		switch cmd.Kind {
		case KindAsset:
			return s.EditAsset(cmd.Index, cmd.Field, cmd.Value)
		case KindIncome:
			return s.EditIncome(cmd.Index, cmd.Field, cmd.Value)
		case KindDebt:
			return s.EditDebt(cmd.Index, cmd.Field, cmd.Value)
		case KindAccount:
			return s.EditAccount(cmd.Index, cmd.Field, cmd.Value)
		}
	}
	return fmt.Errorf("%w: %s %s", ErrBadCommand, cmd.Kind, cmd.Op)
}

func (s *Session) applyAdd(cmd Command) error {
	var err error
	switch cmd.Kind {
	case KindAsset:
		_, err = s.AddAsset(cmd.Value)
	case KindIncome:
		y := 0
		if cmd.Value != "" {
			if y, err = strconv.Atoi(cmd.Value); err != nil {
				return fmt.Errorf("%w: bad year %q", ErrBadCommand, cmd.Value)
			}
		}
		_, err = s.AddIncome(y)
	case KindDebt:
		_, err = s.AddDebt()
	case KindAccount:
		_, err = s.AddAccount(models.RetirementAccountType(strings.ToUpper(cmd.Value)))
	}
	return err
}

// ApplyAll parses and applies each command in order, stopping at the first
// failure. Commands applied before the failure stay applied.
func (s *Session) ApplyAll(commands []string) error {
	for _, text := range commands {
		cmd, err := ParseCommand(text)
		if err != nil {
			return err
		}
		if err := s.Apply(cmd); err != nil {
			return fmt.Errorf("%s: %w", text, err)
		}
	}
	return nil
}
