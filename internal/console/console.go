package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Console 是面向用户的终端输出与提示。数据写 Out，错误写 Err；
// 日志不走这里（见 internal/log）。
type Console struct {
	in  *bufio.Reader
	out io.Writer
	err io.Writer

	// stdinFD >= 0 时 ReadPassword 走终端隐藏输入
	stdinFD int
}

// New 构造 Console。in 为 os.Stdin 时密码提示使用终端隐藏输入，
// 否则按行读取（测试注入）。
func New(in io.Reader, out, errw io.Writer) *Console {
	c := &Console{in: bufio.NewReader(in), out: out, err: errw, stdinFD: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.stdinFD = int(f.Fd())
	}
	return c
}

func (c *Console) Println(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Console) Bold(msg string) {
	fmt.Fprintln(c.out, boldStyle.Render(msg))
}

func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out, successStyle.Render(msg))
}

func (c *Console) Error(msg string) {
	fmt.Fprintln(c.err, errorStyle.Render(msg))
}

// Prompt 打印提示并读取一行输入（去掉首尾空白）。
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprintf(c.out, "%s: ", label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptPassword 隐藏回显读取密码；非终端输入时退化为按行读取。
func (c *Console) PromptPassword(label string) (string, error) {
	fmt.Fprintf(c.out, "%s: ", label)
	if c.stdinFD >= 0 {
		b, err := term.ReadPassword(c.stdinFD)
		fmt.Fprintln(c.out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
