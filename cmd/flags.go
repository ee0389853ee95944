package cmd

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/vipcxj/numeral/internal/literal"
	"github.com/vipcxj/numeral/internal/shell"
)

// shellFlag accepts the ShellType names auto, sh, powershell and cmd.
type shellFlag struct {
	value shell.ShellType
}

var _ pflag.Value = (*shellFlag)(nil)

func (f *shellFlag) String() string {
	return f.value.String()
}

func (f *shellFlag) Set(s string) error {
	st, err := shell.ShellTypeString(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	f.value = st
	return nil
}

func (f *shellFlag) Type() string {
	return "shell"
}

// literalFlag holds a numeric literal checked by literal.Parse.
type literalFlag struct {
	value literal.Value
	set   bool
}

var _ pflag.Value = (*literalFlag)(nil)

func (f *literalFlag) String() string {
	if !f.set {
		return ""
	}
	return literal.Format(f.value)
}

func (f *literalFlag) Set(s string) error {
	v, err := literal.Parse(s)
	if err != nil {
		return err
	}
	f.value, f.set = v, true
	return nil
}

func (f *literalFlag) Type() string {
	return "literal"
}
