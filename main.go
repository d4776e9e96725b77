package main

import (
	"fmt"
	"github.com/alecthomas/kong"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"os"
	ownIo "sqlfront/io"
	"sqlfront/parser"
	"sqlfront/shell"
	"sqlfront/web"
	"strings"
)

const VERSION = "v0.1.0"

var cli struct {
	Logging string      `help:"Logging verbosity." enum:"info,debug,trace" short:"l" default:"info"`
	Version VersionFlag `help:"Print version information and quit" name:"version" short:"v"`
	Lex     struct {
		Statement string `help:"The statement to split into tokens." placeholder:"<statement>" arg:""`
	} `cmd:"" help:"Prints the tokens of the given statement."`
	Parse struct {
		Statement string `help:"The statement to parse." placeholder:"<statement>" arg:""`
		Format    string `help:"Output format." enum:"table,json,sql" short:"f" default:"table"`
	} `cmd:"" help:"Parses the given statement and prints its clauses."`
	Shell struct {
		History    string `help:"File to store the shell history in." env:"SQLFRONT_HISTORY" placeholder:"<history-file>"`
		ShowTokens bool   `help:"Print the tokens of each statement before the parsed statement." short:"t"`
	} `cmd:"" help:"Starts an interactive shell parsing every entered statement."`
	Server struct {
		Port    string `help:"The port this server should listen on." env:"SQLFRONT_PORT" short:"p" default:"8080"`
		TlsCert string `help:"The certificate file for TLS connections. Requires --tls-key as well." type:"existingfile"`
		TlsKey  string `help:"The key file for TLS connections. Requires --tls-cert as well." type:"existingfile"`
	} `cmd:"" help:"Starts a server offering the /lex and /parse endpoints."`
}

type VersionFlag string

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("sqlfront"),
		kong.Description("Lexer and parser for SQL statements."),
		kong.Vars{
			"version": VERSION,
		},
	)

	if strings.ToLower(cli.Logging) == "debug" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_DEBUG)
	} else if strings.ToLower(cli.Logging) == "trace" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	} else if strings.ToLower(cli.Logging) == "info" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_INFO)
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
	} else {
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
		sigolo.Fatalf("Unknown logging level '%s'", cli.Logging)
	}

	switch ctx.Command() {
	case "lex <statement>":
		tokens, err := parser.Lex(cli.Lex.Statement)
		sigolo.FatalCheck(err)

		err = ownIo.WriteTokensAsTable(tokens, os.Stdout)
		sigolo.FatalCheck(err)
	case "parse <statement>":
		err := parseAndPrint(cli.Parse.Statement, cli.Parse.Format)
		sigolo.FatalCheck(err)
	case "shell":
		err := shell.New(shell.Config{
			HistoryFile: cli.Shell.History,
			ShowTokens:  cli.Shell.ShowTokens,
		}).Run()
		sigolo.FatalCheck(err)
	case "server":
		if cli.Server.TlsCert != "" && cli.Server.TlsKey != "" {
			web.StartServerTls(cli.Server.Port, cli.Server.TlsCert, cli.Server.TlsKey)
		} else if cli.Server.TlsCert != "" || cli.Server.TlsKey != "" {
			sigolo.Fatalf("TLS requires both, --tls-cert and --tls-key")
		} else {
			web.StartServer(cli.Server.Port)
		}
	default:
		sigolo.Errorf("Unknown command '%s'", ctx.Command())
	}
}

func parseAndPrint(statementString string, format string) error {
	stmt, err := parser.ParseStatementString(statementString)
	if err != nil {
		return errors.Wrapf(err, "Unable to parse statement")
	}

	switch format {
	case "json":
		err = ownIo.WriteStatementAsJson(stmt, os.Stdout)
		fmt.Println()
	case "sql":
		_, err = fmt.Println(stmt.String())
	default:
		err = ownIo.WriteStatementAsTable(stmt, os.Stdout)
	}

	return err
}
