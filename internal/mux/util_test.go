package mux

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/d-becker/schnapsen/internal/jwt"
	"github.com/stretchr/testify/assert"
)

func setupJWT() {
	jwt.SetSecret([]byte("test-secret"))
}

func Test_writeJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	writeJSONError(w, http.StatusBadRequest, errors.New("bad payload"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"bad payload","statusCode":400}`, w.Body.String())

	w = httptest.NewRecorder()
	writeJSONError(w, http.StatusInternalServerError, errors.New("secret detail"))
	assert.JSONEq(t, `{"message":"Internal Server Error","statusCode":500}`, w.Body.String())
}

func Test_decodeRequest(t *testing.T) {
	var payload postMatchPayload

	r := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(`{"player1":"Alice"}`))
	w := httptest.NewRecorder()
	assert.False(t, decodeRequest(w, r, &payload))
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	r = httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(`{"player1":`))
	r.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	assert.False(t, decodeRequest(w, r, &payload))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	r = httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(`{"player1":"Alice"}`))
	r.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	assert.True(t, decodeRequest(w, r, &payload))
	assert.Equal(t, "Alice", payload.Player1)
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int, signedJWT ...string) *http.Response {
	t.Helper()

	if len(signedJWT) > 0 {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", signedJWT[0]))
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := ioutil.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int, signedJWT ...string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode, signedJWT...)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int, signedJWT ...string) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case nil:
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	assertDo(t, req, respObj, statusCode, signedJWT...)
}
