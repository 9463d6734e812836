package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ChizhovVadim/reversi/pkg/common"
)

// CommandArgs holds a command name followed by "-name value" pairs.
type CommandArgs struct {
	commandName string
	params      map[string]string
}

// ParseCommandArgs parses args without the program name.
func ParseCommandArgs(args []string) (*CommandArgs, error) {
	var result = &CommandArgs{params: make(map[string]string)}
	for i := 0; i < len(args); i++ {
		var arg = args[i]
		if !strings.HasPrefix(arg, "-") {
			if result.commandName != "" {
				return nil, fmt.Errorf("unexpected argument %v", arg)
			}
			result.commandName = arg
			continue
		}
		if i+1 == len(args) {
			return nil, fmt.Errorf("missing value for %v", arg)
		}
		result.params[strings.TrimPrefix(arg, "-")] = args[i+1]
		i++
	}
	return result, nil
}

func (ca *CommandArgs) CommandName() string {
	return ca.commandName
}

func (ca *CommandArgs) GetString(name string, defaultVal string) string {
	if val, ok := ca.params[name]; ok {
		return val
	}
	return defaultVal
}

// GetInt returns defaultVal when name is absent and an error when its value is not a positive number.
func (ca *CommandArgs) GetInt(name string, defaultVal int) (int, error) {
	var val, ok = ca.params[name]
	if !ok {
		return defaultVal, nil
	}
	var v, err = strconv.Atoi(val)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("bad -%v %q", name, val)
	}
	return v, nil
}

func (ca *CommandArgs) GetBool(name string, defaultVal bool) (bool, error) {
	var val, ok = ca.params[name]
	if !ok {
		return defaultVal, nil
	}
	var v, err = strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("bad -%v %q", name, val)
	}
	return v, nil
}

// GetPosition parses -pos, or returns the initial position when it is absent.
func (ca *CommandArgs) GetPosition() (common.Position, error) {
	var val, ok = ca.params["pos"]
	if !ok {
		return common.InitialPosition(), nil
	}
	return common.NewPositionFromString(val)
}

type CommandHandler struct {
	items map[string]func(*CommandArgs) error
}

func NewCommandHandler() *CommandHandler {
	return &CommandHandler{
		items: make(map[string]func(*CommandArgs) error),
	}
}

func (ch *CommandHandler) Add(name string, handler func(*CommandArgs) error) {
	ch.items[name] = handler
}

// Execute runs the handler for args' command, play when none is given.
func (ch *CommandHandler) Execute(args *CommandArgs) error {
	var commandName = args.CommandName()
	if commandName == "" {
		commandName = "play"
	}
	handler, found := ch.items[commandName]
	if !found {
		return fmt.Errorf("command not found %v", commandName)
	}
	return handler(args)
}
