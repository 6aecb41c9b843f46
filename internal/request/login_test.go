package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequest(t *testing.T) {
	expected := `{"username":"admin","password":"***"}`
	loginReq := Login{Username: "admin", Password: "admin123"}

	actual, _ := json.Marshal(loginReq)

	assert.EqualValues(t, expected, string(actual))
	assert.EqualValues(t, "admin123", loginReq.Password)
}
