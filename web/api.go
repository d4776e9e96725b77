package web

import (
	"encoding/json"
	"fmt"
	"github.com/gorilla/mux"
	"github.com/hauke96/sigolo/v2"
	"io"
	"net/http"
	ownIo "sqlfront/io"
	"sqlfront/parser"
)

const maxLengthOfPrintedStatement = 10000

type ErrorResponse struct {
	Error   string `json:"error"`
	Details error  `json:"details"`
}

func NewErrorResponse(message string, err error) ErrorResponse {
	return ErrorResponse{
		Error:   message,
		Details: err,
	}
}

func StartServer(port string) {
	r := initRouter()
	sigolo.Infof("Start server without TLS support on port %s", port)
	err := http.ListenAndServe(":"+port, r)
	sigolo.FatalCheck(err)
}

func StartServerTls(port string, certFile string, keyFile string) {
	r := initRouter()
	sigolo.Infof("Start server with TLS support on port %s", port)
	err := http.ListenAndServeTLS(":"+port, certFile, keyFile, r)
	sigolo.FatalCheck(err)
}

func initRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/lex", handleLex).Methods(http.MethodPost)
	r.HandleFunc("/parse", handleParse).Methods(http.MethodPost)
	return r
}

func handleLex(writer http.ResponseWriter, request *http.Request) {
	statementString, ok := readStatement(writer, request)
	if !ok {
		return
	}

	tokens, err := parser.Lex(statementString)
	if err != nil {
		sigolo.Errorf("Error lexing statement: %+v", err)
		writeErrorResponse(writer, http.StatusBadRequest, fmt.Sprintf("Error lexing statement: %s", err.Error()), err)
		return
	}

	sigolo.Debugf("Found %d token", len(tokens))

	err = ownIo.WriteTokensAsJson(tokens, writer)
	if err != nil {
		sigolo.Errorf("Error writing tokens: %+v", err)
	}
}

func handleParse(writer http.ResponseWriter, request *http.Request) {
	statementString, ok := readStatement(writer, request)
	if !ok {
		return
	}

	stmt, err := parser.ParseStatementString(statementString)
	if err != nil {
		sigolo.Errorf("Error parsing statement: %+v", err)
		writeErrorResponse(writer, http.StatusBadRequest, fmt.Sprintf("Error parsing statement: %s", err.Error()), err)
		return
	}

	err = ownIo.WriteStatementAsJson(stmt, writer)
	if err != nil {
		sigolo.Errorf("Error writing statement: %+v", err)
	}
}

// readStatement sets the common response headers and reads the statement from the request body. When false is
// returned, an error response has already been written.
func readStatement(writer http.ResponseWriter, request *http.Request) (string, bool) {
	writer.Header().Set("Access-Control-Allow-Origin", "*")
	writer.Header().Set("Content-Type", "application/json")

	statementBytes, err := io.ReadAll(request.Body)
	if err != nil {
		sigolo.Errorf("Error reading HTTP body of request to '%s': %+v", request.URL.Path, err)
		writeErrorResponse(writer, http.StatusInternalServerError, "Error reading HTTP body.", nil)
		return "", false
	}

	statementString := string(statementBytes)

	trimmedStatementString := statementString
	statementRunes := []rune(statementString)
	if len(statementRunes) > maxLengthOfPrintedStatement {
		trimmedStatementString = string(statementRunes[:maxLengthOfPrintedStatement]) + "... [truncated]"
	}
	sigolo.Infof("Statement:\n%s", trimmedStatementString)

	return statementString, true
}

func writeErrorResponse(writer http.ResponseWriter, status int, message string, err error) {
	writer.WriteHeader(status)

	errorResponseBytes, err := json.Marshal(NewErrorResponse(message, err))
	if err != nil {
		sigolo.Errorf("Error creating and marshalling error response object: %+v", err)
	}

	_, err = writer.Write(errorResponseBytes)
	if err != nil {
		sigolo.Errorf("Error writing error response: %+v", err)
	}
}
