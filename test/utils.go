package test

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// JWTSecret signs every token built by this package; servers under test verify with it.
const JWTSecret = "test-secret"

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

// NewJSONRequest sends no body when param is nil.
func NewJSONRequest(method string, target string, param interface{}) *http.Request {
	var body io.Reader
	if param != nil {
		body = strings.NewReader(JsonString(param))
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func signUserToken(userPk string, issuedAt time.Time, ttl time.Duration) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userPk,
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	})
	t, err := token.SignedString([]byte(JWTSecret))
	if err != nil {
		log.Fatalf("Error when signing user token for %s. Error %s ", userPk, err)
	}
	return t
}

func GenerateUserToken(userPk string) string {
	return signUserToken(userPk, time.Now(), 72*time.Hour)
}

func GenerateExpiredUserToken(userPk string) string {
	return signUserToken(userPk, time.Now().Add(-73*time.Hour), 72*time.Hour)
}

func withBearer(req *http.Request, token string) *http.Request {
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	return req
}

func NewJSONAuthRequest(method string, target string, userPk string, param interface{}) *http.Request {
	return withBearer(NewJSONRequest(method, target, param), GenerateUserToken(userPk))
}

func NewJSONAuthRequestRaw(method string, target string, userPk string, json string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(json))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return withBearer(req, GenerateUserToken(userPk))
}

func NewExpiredAuthRequest(method string, target string, userPk string) *http.Request {
	return withBearer(NewJSONRequest(method, target, nil), GenerateExpiredUserToken(userPk))
}

func NewRefString(data string) *string {
	return &data
}
