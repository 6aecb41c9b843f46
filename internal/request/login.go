package request

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

type Login struct {
	Username string `validate:"required" json:"username"`
	Password string `validate:"required" json:"password"`
}

func (l Login) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", l.Username).Str("password", "***")
}

func (l Login) MarshalJSON() ([]byte, error) {
	l.Password = "***"
	type L Login
	return json.Marshal(L(l))
}
