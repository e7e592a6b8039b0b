package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/mediaconvert/internal/ui"
	"github.com/alfredjeanlab/mediaconvert/types"
)

var enumsCmd = &cobra.Command{
	Use:   "enums [name [value]]",
	Short: "List enumerations, their members, or check a value",
	Long: `With no arguments, list every enumeration in the model.
With a name, list that enumeration's members in declaration order.
With a name and a value, check whether the value is a member.`,
	GroupID: "model",
	Args:    cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		switch len(args) {
		case 0:
			return listEnums(w)
		case 1:
			return listEnumValues(w, args[0])
		default:
			return checkEnumValue(w, args[0], args[1])
		}
	},
}

func listEnums(w io.Writer) error {
	names := types.EnumNames()
	if jsonOutput {
		return writeJSON(w, names)
	}
	for _, name := range names {
		values, _ := types.EnumValues(name)
		fmt.Fprintf(w, "%s %s\n", name, ui.RenderMuted(fmt.Sprintf("(%d)", len(values))))
	}
	return nil
}

func listEnumValues(w io.Writer, name string) error {
	values, ok := types.EnumValues(name)
	if !ok {
		return fmt.Errorf("unknown enumeration %q", name)
	}
	if jsonOutput {
		return writeJSON(w, values)
	}
	for _, v := range values {
		fmt.Fprintln(w, v)
	}
	return nil
}

// enumCheck is the outcome of parsing one value. Reason is "empty" or
// "no-member" on failure.
type enumCheck struct {
	Enum   string `json:"enum"`
	Value  string `json:"value"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
	Error  string `json:"error,omitempty"`
}

func checkEnum(name, raw string) (enumCheck, error) {
	c := enumCheck{Enum: name, Value: raw}
	_, err := types.ParseEnumValue(name, raw)
	switch {
	case err == nil:
		c.Valid = true
	case errors.Is(err, types.ErrEmptyEnumValue):
		c.Reason, c.Error = "empty", err.Error()
	case errors.Is(err, types.ErrNoSuchEnumMember):
		c.Reason, c.Error = "no-member", err.Error()
	default:
		return c, err
	}
	return c, nil
}

func checkEnumValue(w io.Writer, name, raw string) error {
	c, err := checkEnum(name, raw)
	if err != nil {
		return err
	}
	if jsonOutput {
		if err := writeJSON(w, c); err != nil {
			return err
		}
	} else if c.Valid {
		fmt.Fprintf(w, "%s %s is a member of %s\n", ui.RenderPass("✓"), raw, name)
	} else {
		fmt.Fprintf(w, "%s %s\n", ui.RenderFail("✗"), c.Error)
	}
	if !c.Valid {
		return fmt.Errorf("%s: not a member", name)
	}
	return nil
}
