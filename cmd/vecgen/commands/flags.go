package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// decimalInt is an int flag that only accepts base-10 input. pflag's own int
// flag also takes "0x10" and "0o17". Surrounding spaces and digit separators
// ("1_000") are rejected too.
type decimalInt int

var _ pflag.Value = (*decimalInt)(nil)

func (d *decimalInt) String() string { return strconv.Itoa(int(*d)) }

func (d *decimalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%q is not a base-10 integer", s)
	}
	*d = decimalInt(v)
	return nil
}

func (d *decimalInt) Type() string { return "int" }
