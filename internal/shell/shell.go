package shell

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/vipcxj/numeral/internal/logging"
)

// EnvName derives an environment variable name from key: dashes and dots
// become underscores, letters are upper-cased and prefix is prepended as is.
func EnvName(key, prefix string) string {
	name := strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(key))
	return prefix + name
}

// splitPreserveNewlines splits s around line breaks and keeps each break
// ("\r\n", "\r" or "\n") as its own element, e.g.
// "a\r\nb\nc" -> ["a", "\r\n", "b", "\n", "c"].
func splitPreserveNewlines(s string) []string {
	if s == "" {
		return []string{""}
	}
	var parts []string
	var buf strings.Builder
	for i := 0; i < len(s); {
		ch := s[i]
		if ch != '\r' && ch != '\n' {
			buf.WriteByte(ch)
			i++
			continue
		}
		if buf.Len() > 0 {
			parts = append(parts, buf.String())
			buf.Reset()
		}
		if ch == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			parts = append(parts, "\r\n")
			i += 2
		} else {
			parts = append(parts, string(ch))
			i++
		}
	}
	if buf.Len() > 0 {
		parts = append(parts, buf.String())
	}
	return parts
}

// quotePosix wraps s in single quotes. Embedded quotes become '\''.
func quotePosix(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// quotePowershell builds a single expression: single-quoted pieces joined
// with + and line breaks spelled with backtick escapes.
func quotePowershell(s string) string {
	if s == "" {
		return "''"
	}
	var out []string
	for _, p := range splitPreserveNewlines(s) {
		switch p {
		case "\n":
			out = append(out, "\"`n\"")
		case "\r":
			out = append(out, "\"`r\"")
		case "\r\n":
			out = append(out, "\"`r`n\"")
		default:
			out = append(out, "'"+strings.ReplaceAll(p, "'", "''")+"'")
		}
	}
	return strings.Join(out, " + ")
}

// quoteCmd returns the body of a double-quoted cmd string without the
// outer quotes. Line breaks are written as literal \r and \n.
func quoteCmd(s string) string {
	var sb strings.Builder
	for _, p := range splitPreserveNewlines(s) {
		switch p {
		case "\n":
			sb.WriteString(`\n`)
		case "\r":
			sb.WriteString(`\r`)
		case "\r\n":
			sb.WriteString(`\r\n`)
		default:
			sb.WriteString(strings.ReplaceAll(p, `"`, `\"`))
		}
	}
	return sb.String()
}

// Assignment renders one variable assignment for shell. A persistent
// assignment survives the session: export for POSIX shells, the User
// environment for PowerShell and setx for cmd.
func Assignment(shell ShellType, v Var, persistent bool) (string, error) {
	switch shell {
	case ShellTypeSh:
		if persistent {
			return fmt.Sprintf("export %s=%s", v.Name, quotePosix(v.Value)), nil
		}
		return fmt.Sprintf("%s=%s", v.Name, quotePosix(v.Value)), nil
	case ShellTypePowershell:
		if persistent {
			return fmt.Sprintf("[System.Environment]::SetEnvironmentVariable(%s,%s,'User')",
				quotePowershell(v.Name), quotePowershell(v.Value)), nil
		}
		return fmt.Sprintf("$Env:%s = %s", v.Name, quotePowershell(v.Value)), nil
	case ShellTypeCmd:
		if persistent {
			return fmt.Sprintf(`setx %s "%s"`, v.Name, quoteCmd(v.Value)), nil
		}
		return fmt.Sprintf(`set "%s=%s"`, v.Name, quoteCmd(v.Value)), nil
	}
	return "", fmt.Errorf("unsupported shell type: %v", shell)
}

// Script renders one assignment per line, in the order given.
func Script(shell ShellType, vars []Var, persistent bool) (string, error) {
	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		line, err := Assignment(shell, v, persistent)
		if err != nil {
			return "", fmt.Errorf("variable %s: %w", v.Name, err)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// Resolve returns shell unchanged unless it is ShellTypeAuto, in which case
// the user's shell is detected. Detection is logged at debug level to
// logger, which may be nil.
func Resolve(ctx context.Context, logger *slog.Logger, shell ShellType) (ShellType, error) {
	if shell != ShellTypeAuto {
		if !shell.IsAShellType() {
			return ShellTypeAuto, fmt.Errorf("unsupported shell type: %v", shell)
		}
		return shell, nil
	}
	logger = logging.OrDiscard(logger)
	name, err := detectUserShell(ctx, logger)
	if err != nil {
		return ShellTypeAuto, fmt.Errorf("cannot detect user shell: %w", err)
	}
	detected := classify(name)
	logger.DebugContext(ctx, "detected shell", slog.String("name", name), slog.String("type", detected.String()))
	return detected, nil
}

// classify maps a process or executable name to a ShellType. Anything that
// is not PowerShell or cmd is treated as a POSIX shell.
func classify(name string) ShellType {
	name = strings.TrimSuffix(strings.ToLower(baseName(name)), ".exe")
	switch name {
	case "powershell", "pwsh":
		return ShellTypePowershell
	case "cmd":
		return ShellTypeCmd
	}
	return ShellTypeSh
}

// baseName returns the last element of a Unix or Windows path. %COMSPEC%
// keeps its backslashes when read from WSL or MSYS.
func baseName(p string) string {
	return path.Base(strings.ReplaceAll(p, `\`, "/"))
}

var knownShells = []string{
	"bash", "zsh", "fish", "ksh", "dash", "tcsh", "csh", "sh",
	"powershell", "pwsh", "cmd",
}

// detectUserShell walks the parent process chain looking for a known shell.
// $SHELL and %COMSPEC% only name the login default, so they are consulted
// last.
func detectUserShell(ctx context.Context, logger *slog.Logger) (string, error) {
	p, err := process.NewProcessWithContext(ctx, int32(os.Getppid()))
	if err == nil {
		seen := map[int32]struct{}{}
		for p != nil {
			if _, ok := seen[p.Pid]; ok {
				break
			}
			seen[p.Pid] = struct{}{}

			name, _ := p.NameWithContext(ctx)
			if name == "" {
				if exe, _ := p.ExeWithContext(ctx); exe != "" {
					name = baseName(exe)
				}
			}
			if isKnownShell(name) {
				return name, nil
			}

			parent, perr := p.ParentWithContext(ctx)
			if perr != nil {
				break
			}
			p = parent
		}
	} else {
		logger.DebugContext(ctx, "cannot inspect parent process", slog.Any("error", err))
	}

	if sh := os.Getenv("SHELL"); sh != "" {
		return baseName(sh), nil
	}
	if com := os.Getenv("COMSPEC"); com != "" {
		return baseName(com), nil
	}
	return "", fmt.Errorf("user shell not detected")
}

func isKnownShell(name string) bool {
	n := strings.TrimSuffix(strings.ToLower(name), ".exe")
	for _, k := range knownShells {
		if n == k {
			return true
		}
	}
	return false
}
