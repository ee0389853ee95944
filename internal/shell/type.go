//go:generate go run github.com/dmarkham/enumer -type=ShellType -trimprefix=ShellType -transform=kebab
package shell

// ShellType selects the syntax of emitted assignments.
type ShellType int

const (
	ShellTypeAuto ShellType = iota
	ShellTypeSh
	ShellTypePowershell
	ShellTypeCmd
)

// Var is one environment variable to assign.
type Var struct {
	Name  string
	Value string
}
