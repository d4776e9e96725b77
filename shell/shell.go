package shell

import (
	"fmt"
	"github.com/chzyer/readline"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"io"
	ownIo "sqlfront/io"
	"sqlfront/parser"
	"strings"
)

const (
	promptBegin = "sql> "
	promptMid   = "  -> "
)

var exitCommands = []string{"exit", "quit", `\q`}

type Config struct {
	HistoryFile string
	ShowTokens  bool

	Stdin  io.ReadCloser
	Stdout io.Writer
	Stderr io.Writer
}

// Shell reads statements line by line. A statement is complete, once its text lexes to a token sequence ending in a
// ";", so that a ";" within quotes or after an escape character doesn't end the statement.
type Shell struct {
	config Config
	out    io.Writer
	errOut io.Writer

	// partialStatement holds all input prior to receiving the terminating ";".
	partialStatement string
}

func New(config Config) *Shell {
	shell := &Shell{
		config: config,
		out:    config.Stdout,
		errOut: config.Stderr,
	}
	if shell.out == nil {
		shell.out = readline.Stdout
	}
	if shell.errOut == nil {
		shell.errOut = readline.Stderr
	}
	return shell
}

func (s *Shell) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      promptBegin,
		HistoryFile: s.config.HistoryFile,

		Stdin:  s.config.Stdin,
		Stdout: s.config.Stdout,
		Stderr: s.config.Stderr,
	})
	if err != nil {
		return errors.Wrap(err, "Unable to create readline instance")
	}
	defer rl.Close()

	sigolo.Infof("Shell started, terminate statements with ';' and leave with 'exit'")

	for {
		if s.inMidStatement() {
			rl.SetPrompt(promptMid)
		} else {
			rl.SetPrompt(promptBegin)
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			s.partialStatement = ""
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrap(err, "Error reading line")
		}

		if !s.inMidStatement() && isExitCommand(line) {
			return nil
		}

		s.HandleLine(line)
	}
}

func (s *Shell) inMidStatement() bool {
	return s.partialStatement != ""
}

// HandleLine adds the line to the current statement and processes the statement once it's complete.
func (s *Shell) HandleLine(line string) {
	if !s.inMidStatement() && strings.TrimSpace(line) == "" {
		return
	}

	// Keep the line break, it may be part of quoted text.
	s.partialStatement += line + "\n"

	if !IsStatementComplete(s.partialStatement) {
		return
	}

	statementString := s.partialStatement
	s.partialStatement = ""
	s.processStatement(statementString)
}

func (s *Shell) processStatement(statementString string) {
	tokens, err := parser.Lex(statementString)
	if err != nil {
		s.printError(err)
		return
	}

	if s.config.ShowTokens {
		err = ownIo.WriteTokensAsTable(tokens, s.out)
		if err != nil {
			s.printError(err)
			return
		}
	}

	for _, statementTokens := range SplitStatements(tokens) {
		stmt, err := parser.Parse(statementTokens)
		if err != nil {
			s.printError(err)
			continue
		}

		err = ownIo.WriteStatementAsTable(stmt, s.out)
		if err != nil {
			s.printError(err)
		}
	}
}

// SplitStatements splits the tokens behind every ";" token. Each part keeps its terminating ";".
func SplitStatements(tokens []*parser.Token) [][]*parser.Token {
	var statements [][]*parser.Token

	start := 0
	for i, token := range tokens {
		if token.Kind() == parser.TokenKindSemicolon {
			statements = append(statements, tokens[start:i+1])
			start = i + 1
		}
	}
	if start < len(tokens) {
		statements = append(statements, tokens[start:])
	}

	return statements
}

func (s *Shell) printError(err error) {
	sigolo.Debugf("%+v", err)
	_, writeErr := fmt.Fprintf(s.errOut, "Error: %s\n", err.Error())
	if writeErr != nil {
		sigolo.Errorf("Error writing error message: %+v", writeErr)
	}
}

// IsStatementComplete is true when the text lexes to tokens ending with a ";". Unclosed quotes and dangling escape
// characters mean that more input is expected.
func IsStatementComplete(statementString string) bool {
	tokens, err := parser.Lex(statementString)
	if err != nil {
		return false
	}
	return len(tokens) > 0 && tokens[len(tokens)-1].Kind() == parser.TokenKindSemicolon
}

func isExitCommand(line string) bool {
	trimmedLine := strings.TrimSuffix(strings.TrimSpace(line), ";")
	for _, exitCommand := range exitCommands {
		if strings.EqualFold(trimmedLine, exitCommand) {
			return true
		}
	}
	return false
}
