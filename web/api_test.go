package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sqlfront/util"
	"strings"
	"testing"
)

func post(t *testing.T, path string, body string) *httptest.ResponseRecorder {
	router := initRouter()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestApi_parse(t *testing.T) {
	// Act
	response := post(t, "/parse", "select a from t1 left join t2 using(x);")

	// Assert
	util.AssertEqual(t, http.StatusOK, response.Code)
	util.AssertEqual(t, "application/json", response.Header().Get("Content-Type"))

	var body map[string]any
	err := json.Unmarshal(response.Body.Bytes(), &body)
	util.AssertNil(t, err)
	util.AssertEqual(t, "select", body["command"])
	util.AssertEqual(t, 3, len(body["tables"].([]any)))
	util.AssertEqual(t, 1, len(body["join-keys"].([]any)))
}

func TestApi_parseError(t *testing.T) {
	// Act
	response := post(t, "/parse", "update t set x=1;")

	// Assert
	util.AssertEqual(t, http.StatusBadRequest, response.Code)

	var body map[string]any
	err := json.Unmarshal(response.Body.Bytes(), &body)
	util.AssertNil(t, err)
	util.AssertEqual(t, "Error parsing statement: Parsing error: Command 'update' at position 0 is not implemented.", body["error"])

	details := body["details"].(map[string]any)
	util.AssertEqual(t, "NotImplemented", details["kind"])
	util.AssertEqual(t, "update", details["command"])
	util.AssertEqual(t, "Command", details["state"])
	util.AssertEqual(t, "update", details["found"])
}

func TestApi_parseLexError(t *testing.T) {
	// Act
	response := post(t, "/parse", "select 'a from t;")

	// Assert
	util.AssertEqual(t, http.StatusBadRequest, response.Code)

	var body map[string]any
	err := json.Unmarshal(response.Body.Bytes(), &body)
	util.AssertNil(t, err)
	details := body["details"].(map[string]any)
	util.AssertEqual(t, "UnmatchedQuote", details["kind"])
	util.AssertEqual(t, float64(7), details["position"])
}

func TestApi_lex(t *testing.T) {
	// Act
	response := post(t, "/lex", "a, 'b'")

	// Assert
	util.AssertEqual(t, http.StatusOK, response.Code)
	util.AssertEqual(t, `[{"kind":"word","lexeme":"a","position":0},{"kind":",","lexeme":",","position":1},{"kind":"quoted text","lexeme":"b","quote":"'","position":3}]`, response.Body.String())
}

func TestApi_wrongMethod(t *testing.T) {
	// Arrange
	router := initRouter()
	request := httptest.NewRequest(http.MethodGet, "/parse", nil)
	recorder := httptest.NewRecorder()

	// Act
	router.ServeHTTP(recorder, request)

	// Assert
	util.AssertEqual(t, http.StatusMethodNotAllowed, recorder.Code)
}
